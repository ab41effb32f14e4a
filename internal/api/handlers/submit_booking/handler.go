package submit_booking

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/m04kA/SMC-TrialBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TrialBooking/internal/api/views"
	"github.com/m04kA/SMC-TrialBooking/internal/domain"
	submitBooking "github.com/m04kA/SMC-TrialBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-TrialBooking/pkg/metrics"
)

type Handler struct {
	useCase  SubmitBookingUseCase
	center   domain.Center
	renderer Renderer
	decoder  *schema.Decoder
	metrics  Metrics
	logger   Logger
}

func NewHandler(useCase SubmitBookingUseCase, center domain.Center, renderer Renderer, m Metrics, logger Logger) *Handler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	if m == nil {
		m = (*metrics.Metrics)(nil)
	}

	return &Handler{
		useCase:  useCase,
		center:   center,
		renderer: renderer,
		decoder:  decoder,
		metrics:  m,
		logger:   logger,
	}
}

// Handle POST /submit
// Form fields: student_name, grade, phone, email, booking_date, time_slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Любая непредвиденная ошибка возвращает пользователя на форму
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("POST /submit - Panic while handling booking: %v", rec)
			h.metrics.ObserveSubmission(metrics.SubmissionError)
			handlers.RedirectWithError(w, r, handlers.ErrorCodeInternal)
		}
	}()

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /submit - Invalid form body: %v", err)
		h.metrics.ObserveSubmission(metrics.SubmissionError)
		handlers.RedirectWithError(w, r, handlers.ErrorCodeInternal)
		return
	}

	var form BookingForm
	if err := h.decoder.Decode(&form, r.PostForm); err != nil {
		h.logger.Warn("POST /submit - Failed to decode form: %v", err)
		h.metrics.ObserveSubmission(metrics.SubmissionError)
		handlers.RedirectWithError(w, r, handlers.ErrorCodeInternal)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), form.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrMissingRequiredField):
			h.logger.Warn("POST /submit - Missing required field: %v", err)
			h.metrics.ObserveSubmission(metrics.SubmissionInvalid)
			handlers.RedirectWithError(w, r, handlers.ErrorCodeMissingFields)

		case errors.Is(err, submitBooking.ErrUnknownOption):
			h.logger.Warn("POST /submit - Unknown option: %v", err)
			h.metrics.ObserveSubmission(metrics.SubmissionInvalid)
			handlers.RedirectWithError(w, r, handlers.ErrorCodeInvalidOption)

		default:
			h.logger.Error("POST /submit - Failed to submit booking: error=%v", err)
			h.metrics.ObserveSubmission(metrics.SubmissionError)
			handlers.RedirectWithError(w, r, handlers.ErrorCodeInternal)
		}
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, views.PageConfirmation, FromUseCaseResponse(h.center, result)); err != nil {
		h.logger.Error("POST /submit - Failed to render confirmation: student=%s, error=%v", result.Record.StudentName, err)
		h.metrics.ObserveSubmission(metrics.SubmissionError)
		handlers.RedirectWithError(w, r, handlers.ErrorCodeInternal)
		return
	}

	h.logger.Info("POST /submit - Booking accepted: student=%s, date=%s, time=%s",
		result.Record.StudentName, result.Record.DisplayDate, result.Record.TimeSlot)
	h.metrics.ObserveSubmission(metrics.SubmissionAccepted)
	handlers.RespondHTML(w, http.StatusOK, &buf)
}
