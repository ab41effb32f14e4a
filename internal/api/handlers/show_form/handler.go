package show_form

import (
	"bytes"
	"net/http"

	"github.com/m04kA/SMC-TrialBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TrialBooking/internal/api/views"
)

type Handler struct {
	useCase  GetAvailableDatesUseCase
	options  FormOptions
	renderer Renderer
	logger   Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, options FormOptions, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		options:  options,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /
// Query params: error (optional, код ошибки предыдущей отправки)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.useCase.Execute()

	page := &views.FormPage{
		Center:    h.options.Center,
		Grades:    h.options.Grades,
		TimeSlots: h.options.TimeSlots,
		Dates:     result.Dates,
		Error:     errorMessage(r.URL.Query().Get("error")),
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, views.PageForm, page); err != nil {
		h.logger.Error("GET / - Failed to render form: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondHTML(w, http.StatusOK, &buf)
}
