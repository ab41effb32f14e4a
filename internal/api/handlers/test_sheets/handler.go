package test_sheets

import (
	"net/http"

	"github.com/m04kA/SMC-TrialBooking/internal/api/handlers"
)

const (
	msgConnected    = "✅ Google Sheets連接成功！"
	msgDisconnected = "⚠️ Google Sheets連接失敗，系統將以模擬模式運行。請檢查credentials.json文件。"
)

type Handler struct {
	store  StoreProber
	logger Logger
}

func NewHandler(store StoreProber, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle GET /test-sheets
// Проверка соединения всегда отвечает 200, результат в тексте
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.store.Probe(r.Context()) {
		h.logger.Info("GET /test-sheets - Store connected")
		handlers.RespondText(w, http.StatusOK, msgConnected)
		return
	}

	h.logger.Warn("GET /test-sheets - Store unavailable, simulated mode")
	handlers.RespondText(w, http.StatusOK, msgDisconnected)
}
