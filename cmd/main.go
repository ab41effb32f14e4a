package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	showFormHandler "github.com/m04kA/SMC-TrialBooking/internal/api/handlers/show_form"
	submitBookingHandler "github.com/m04kA/SMC-TrialBooking/internal/api/handlers/submit_booking"
	testSheetsHandler "github.com/m04kA/SMC-TrialBooking/internal/api/handlers/test_sheets"
	"github.com/m04kA/SMC-TrialBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TrialBooking/internal/api/views"
	"github.com/m04kA/SMC-TrialBooking/internal/config"
	"github.com/m04kA/SMC-TrialBooking/internal/domain"
	"github.com/m04kA/SMC-TrialBooking/internal/infra/storage/sheets"
	"github.com/m04kA/SMC-TrialBooking/internal/integrations/appsscript"
	"github.com/m04kA/SMC-TrialBooking/internal/service/notify"
	getAvailableDatesUC "github.com/m04kA/SMC-TrialBooking/internal/usecase/get_available_dates"
	submitBookingUC "github.com/m04kA/SMC-TrialBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-TrialBooking/pkg/logger"
	"github.com/m04kA/SMC-TrialBooking/pkg/metrics"
)

// maxFormBytes ограничение тела POST /submit
const maxFormBytes = 64 << 10

// bookingStore хранилище заявок: Google Sheets или Apps Script
type bookingStore interface {
	Append(ctx context.Context, record *domain.BookingRecord) bool
	Probe(ctx context.Context) bool
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TrialBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище заявок
	var store bookingStore
	switch cfg.Sheets.Backend {
	case config.BackendAppsScript:
		store = appsscript.NewClient(
			cfg.Sheets.AppsScriptURL,
			cfg.Sheets.TimeoutDuration(),
			metricsCollector,
			log,
		)
		log.Info("Booking store: Apps Script web app (configured=%t, timeout=%ds)",
			cfg.Sheets.AppsScriptURL != "", cfg.Sheets.Timeout)
	default:
		store = sheets.NewStore(
			sheets.Options{
				CredentialsPath: cfg.Sheets.CredentialsPath,
				SpreadsheetName: cfg.Sheets.SpreadsheetName,
				WorksheetName:   cfg.Sheets.WorksheetName,
				Headers:         cfg.Sheets.Headers,
				Rows:            cfg.Sheets.Rows,
				Cols:            cfg.Sheets.Cols,
				Timeout:         cfg.Sheets.TimeoutDuration(),
			},
			sheets.DialGoogle,
			metricsCollector,
			log,
		)
		log.Info("Booking store: Google Sheets (spreadsheet=%s, worksheet=%s, credentials=%s)",
			cfg.Sheets.SpreadsheetName, cfg.Sheets.WorksheetName, cfg.Sheets.CredentialsPath)
	}

	// Инициализируем сервисы
	notifySvc := notify.NewService(cfg.Center.Domain(), metricsCollector, log)

	// Инициализируем use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		cfg.Booking.Weekdays(),
		cfg.Booking.DateLabelLayout,
		log,
	)

	submitBookingUseCase := submitBookingUC.NewUseCase(
		store,
		notifySvc,
		submitBookingUC.Options{
			Grades:            cfg.Booking.Grades,
			TimeSlots:         cfg.Booking.TimeSlots,
			Weekdays:          cfg.Booking.Weekdays(),
			DisplayDateLayout: cfg.Booking.DisplayDateLayout,
		},
		log,
	)

	// Шаблоны страниц
	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}

	// Инициализируем handlers
	showForm := showFormHandler.NewHandler(
		getAvailableDatesUseCase,
		showFormHandler.FormOptions{
			Center:    cfg.Center.Domain(),
			Grades:    cfg.Booking.Grades,
			TimeSlots: cfg.Booking.TimeSlots,
		},
		renderer,
		log,
	)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, cfg.Center.Domain(), renderer, metricsCollector, log)
	testSheets := testSheetsHandler.NewHandler(store, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Форма записи
	r.HandleFunc("/", showForm.Handle).Methods(http.MethodGet)

	// Отправка заявки
	r.Handle("/submit", middleware.BodyLimit(maxFormBytes)(http.HandlerFunc(submitBooking.Handle))).Methods(http.MethodPost)

	// Проверка соединения с таблицей
	r.HandleFunc("/test-sheets", testSheets.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("%s - trial booking system", cfg.Center.Name)
		log.Info("Form:       http://localhost:%d", cfg.Server.HTTPPort)
		log.Info("Sheet test: http://localhost:%d/test-sheets", cfg.Server.HTTPPort)
		log.Info("Starting server on %s (debug=%t)", addr, cfg.Server.Debug)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
