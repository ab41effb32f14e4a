package appsscript

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TrialBooking/internal/domain"
	"github.com/m04kA/SMC-TrialBooking/pkg/metrics"
)

const backendName = "apps_script"

// Metrics интерфейс метрик хранилища
type Metrics interface {
	ObserveStoreAppend(backend, mode string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для web-app Google Apps Script, который дописывает строку в таблицу
type Client struct {
	url        string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента. Пустой url включает режим симуляции.
func NewClient(url string, timeout time.Duration, m Metrics, log Logger) *Client {
	if m == nil {
		m = (*metrics.Metrics)(nil)
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: m,
		log:     log,
	}
}

// PostBooking отправляет заявку скрипту
func (c *Client) PostBooking(ctx context.Context, record *domain.BookingRecord) error {
	if c.url == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(FromRecord(record))
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// Ping вызывает doGet скрипта
func (c *Client) Ping(ctx context.Context) error {
	if c.url == "" {
		return ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	return c.do(req)
}

// Append записывает заявку через скрипт.
// Всегда возвращает true: при ошибке заявка пишется в лог.
// Отмена родительского контекста запрос не прерывает, его ограничивает таймаут http.Client.
func (c *Client) Append(ctx context.Context, record *domain.BookingRecord) bool {
	err := c.PostBooking(context.WithoutCancel(ctx), record)
	switch {
	case err == nil:
		c.log.Info("AppsScript: booking for student=%s sent", record.StudentName)
		c.metrics.ObserveStoreAppend(backendName, metrics.AppendRemote)
	case errors.Is(err, ErrNotConfigured):
		c.log.Warn("AppsScript: %v, running in simulated mode", err)
		c.logRecord(record)
		c.metrics.ObserveStoreAppend(backendName, metrics.AppendSimulated)
	default:
		c.log.Error("AppsScript: failed to send booking for student=%s: %v", record.StudentName, err)
		c.logRecord(record)
		c.metrics.ObserveStoreAppend(backendName, metrics.AppendFailed)
	}
	return true
}

// Probe проверяет доступность скрипта
func (c *Client) Probe(ctx context.Context) bool {
	if err := c.Ping(ctx); err != nil {
		c.log.Warn("AppsScript: probe failed: %v", err)
		return false
	}
	return true
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result ScriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.Status != "success" {
		return fmt.Errorf("%w: %s", ErrRejected, result.Message)
	}

	return nil
}

func (c *Client) logRecord(record *domain.BookingRecord) {
	c.log.Info("AppsScript: booking not saved: submitted_at=%s, student_name=%s, grade=%s, phone=%s, email=%s, booking_date=%s, time_slot=%s",
		record.SubmittedAt,
		record.StudentName,
		record.Grade,
		record.Phone,
		record.Email,
		record.DisplayDate,
		record.TimeSlot,
	)
}
