package submit_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TrialBooking/internal/domain"
)

// FormatRecord проверяет обязательные поля и собирает запись для хранилища.
//
// Некорректная дата не считается ошибкой: в DisplayDate попадает исходная строка.
// Пустой email заменяется на domain.EmailNotProvided.
func FormatRecord(
	req *Request,
	now time.Time,
	weekdays domain.WeekdayNames,
	displayLayout string,
) (*domain.BookingRecord, error) {
	normalized := normalizeRequest(req)

	if err := validateRequired(normalized); err != nil {
		return nil, err
	}

	email := normalized.Email
	if email == "" {
		email = domain.EmailNotProvided
	}

	return &domain.BookingRecord{
		SubmittedAt: now.Format(domain.TimestampFormat),
		StudentName: normalized.StudentName,
		Grade:       normalized.Grade,
		Phone:       normalized.Phone,
		Email:       email,
		BookingDate: normalized.BookingDate,
		DisplayDate: formatDisplayDate(normalized.BookingDate, weekdays, displayLayout),
		TimeSlot:    normalized.TimeSlot,
		Status:      domain.StatusPendingConfirmation,
	}, nil
}

// formatDisplayDate превращает "2024-01-15" в "<дата> (<день недели>)"
func formatDisplayDate(raw string, weekdays domain.WeekdayNames, layout string) string {
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return raw
	}

	return fmt.Sprintf("%s (%s)", date.Format(layout), weekdays.Name(date.Weekday()))
}
