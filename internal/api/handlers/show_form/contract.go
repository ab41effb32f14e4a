package show_form

import (
	"io"

	getAvailableDates "github.com/m04kA/SMC-TrialBooking/internal/usecase/get_available_dates"
)

type GetAvailableDatesUseCase interface {
	Execute() *getAvailableDates.Response
}

type Renderer interface {
	Render(w io.Writer, page string, data interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
