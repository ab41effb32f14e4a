package submit_booking

import (
	"fmt"
	"slices"
	"strings"
)

// normalizeRequest обрезает пробелы по краям всех полей
func normalizeRequest(req *Request) Request {
	return Request{
		StudentName: strings.TrimSpace(req.StudentName),
		Grade:       strings.TrimSpace(req.Grade),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
		BookingDate: strings.TrimSpace(req.BookingDate),
		TimeSlot:    strings.TrimSpace(req.TimeSlot),
	}
}

// validateRequired проверяет, что все обязательные поля заполнены (email необязателен)
func validateRequired(req Request) error {
	required := []struct {
		name  string
		value string
	}{
		{"student_name", req.StudentName},
		{"grade", req.Grade},
		{"phone", req.Phone},
		{"booking_date", req.BookingDate},
		{"time_slot", req.TimeSlot},
	}

	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, field.name)
		}
	}

	return nil
}

// validateOptions проверяет класс и время по настроенным спискам.
// Пустой список означает, что допустимо любое значение.
func validateOptions(grade, timeSlot string, grades, timeSlots []string) error {
	if len(grades) > 0 && !slices.Contains(grades, grade) {
		return fmt.Errorf("%w: grade %q", ErrUnknownOption, grade)
	}

	if len(timeSlots) > 0 && !slices.Contains(timeSlots, timeSlot) {
		return fmt.Errorf("%w: time slot %q", ErrUnknownOption, timeSlot)
	}

	return nil
}
