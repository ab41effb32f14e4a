package submit_booking

import (
	"context"
	"io"

	submitBooking "github.com/m04kA/SMC-TrialBooking/internal/usecase/submit_booking"
)

type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

type Renderer interface {
	Render(w io.Writer, page string, data interface{}) error
}

type Metrics interface {
	ObserveSubmission(result string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
