package submit_booking

import (
	"github.com/m04kA/SMC-TrialBooking/internal/domain"
)

// Request модель заявки на пробное занятие (сырые значения формы)
type Request struct {
	StudentName string // Имя ученика (обязательно)
	Grade       string // Класс, один из настроенных (обязательно)
	Phone       string // Телефон для связи (обязательно)
	Email       string // Email (опционально)
	BookingDate string // Желаемая дата, YYYY-MM-DD (обязательно)
	TimeSlot    string // Желаемое время, один из настроенных слотов (обязательно)
}

// Options справочники формы и формат даты
type Options struct {
	Grades            []string
	TimeSlots         []string
	Weekdays          domain.WeekdayNames
	DisplayDateLayout string
}

// Response результат обработки заявки
type Response struct {
	Record   *domain.BookingRecord // Записанная заявка
	Notified bool                  // Было ли сформировано подтверждение
}
