package appsscript

import "github.com/m04kA/SMC-TrialBooking/internal/domain"

// BookingPayload тело запроса к web-app скрипту (поля совпадают с колонками листа)
type BookingPayload struct {
	Timestamp   string `json:"timestamp"`
	StudentName string `json:"studentName"`
	Grade       string `json:"grade"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BookingDate string `json:"bookingDate"`
	TimeSlot    string `json:"timeSlot"`
	Status      string `json:"status"`
}

// ScriptResponse ответ скрипта на doPost/doGet
type ScriptResponse struct {
	Status  string `json:"status"` // success | error
	Message string `json:"message"`
}

// FromRecord конвертирует запись в тело запроса
func FromRecord(record *domain.BookingRecord) *BookingPayload {
	return &BookingPayload{
		Timestamp:   record.SubmittedAt,
		StudentName: record.StudentName,
		Grade:       record.Grade,
		Phone:       record.Phone,
		Email:       record.Email,
		BookingDate: record.DisplayDate,
		TimeSlot:    record.TimeSlot,
		Status:      string(record.Status),
	}
}
