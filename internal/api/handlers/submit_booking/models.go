package submit_booking

import (
	"github.com/m04kA/SMC-TrialBooking/internal/api/views"
	"github.com/m04kA/SMC-TrialBooking/internal/domain"
	submitBooking "github.com/m04kA/SMC-TrialBooking/internal/usecase/submit_booking"
)

// BookingForm поля формы POST /submit
type BookingForm struct {
	StudentName string `schema:"student_name"`
	Grade       string `schema:"grade"`
	Phone       string `schema:"phone"`
	Email       string `schema:"email"`
	BookingDate string `schema:"booking_date"`
	TimeSlot    string `schema:"time_slot"`
}

// ToUseCaseRequest конвертирует форму в запрос use case
func (f *BookingForm) ToUseCaseRequest() *submitBooking.Request {
	return &submitBooking.Request{
		StudentName: f.StudentName,
		Grade:       f.Grade,
		Phone:       f.Phone,
		Email:       f.Email,
		BookingDate: f.BookingDate,
		TimeSlot:    f.TimeSlot,
	}
}

// FromUseCaseResponse собирает данные страницы подтверждения
func FromUseCaseResponse(center domain.Center, resp *submitBooking.Response) *views.ConfirmationPage {
	page := &views.ConfirmationPage{
		Center:      center,
		StudentName: resp.Record.StudentName,
		Grade:       resp.Record.Grade,
		BookingDate: resp.Record.DisplayDate,
		TimeSlot:    resp.Record.TimeSlot,
	}
	if resp.Notified {
		page.Email = resp.Record.Email
	}
	return page
}
