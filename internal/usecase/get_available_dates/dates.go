package get_available_dates

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TrialBooking/internal/domain"
)

// GenerateAvailableDates возвращает до domain.MaxAvailableDates ближайших рабочих дней,
// начиная с даты reference включительно.
// Просматривается не более domain.AvailabilityScanDays календарных дней, поэтому при
// маленьком наборе рабочих дней результат может быть короче.
func GenerateAvailableDates(reference time.Time, weekdays domain.WeekdayNames, labelLayout string) []domain.AvailableDate {
	dates := make([]domain.AvailableDate, 0, domain.MaxAvailableDates)

	// Обнуляем время, чтобы AddDate не зависел от часа запроса
	start := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())

	for i := 0; i < domain.AvailabilityScanDays && len(dates) < domain.MaxAvailableDates; i++ {
		day := start.AddDate(0, 0, i)

		if !weekdays.IsBookable(day.Weekday()) {
			continue
		}

		weekdayName := weekdays.Name(day.Weekday())
		label := day.Format(labelLayout)

		dates = append(dates, domain.AvailableDate{
			Date:        day.Format(domain.DateFormat),
			Label:       label,
			Weekday:     weekdayName,
			FullDisplay: fmt.Sprintf("%s (%s)", label, weekdayName),
		})
	}

	return dates
}
