package sheets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/m04kA/SMC-TrialBooking/internal/domain"
	"github.com/m04kA/SMC-TrialBooking/pkg/metrics"
)

const backendName = "sheets"

// Options параметры подключения к таблице
type Options struct {
	CredentialsPath string
	SpreadsheetName string
	WorksheetName   string
	Headers         []string
	Rows            int64
	Cols            int64
	Timeout         time.Duration
}

// Worksheet открытый лист таблицы
type Worksheet struct {
	remote        Remote
	spreadsheetID string
	title         string
}

// SpreadsheetID ID таблицы
func (w *Worksheet) SpreadsheetID() string {
	return w.spreadsheetID
}

// Title название листа
func (w *Worksheet) Title() string {
	return w.title
}

// AppendRow добавляет строку в конец листа
func (w *Worksheet) AppendRow(ctx context.Context, row []interface{}) error {
	if err := w.remote.AppendRow(ctx, w.spreadsheetID, w.title, row); err != nil {
		return fmt.Errorf("%w: %v", ErrAppendRow, err)
	}
	return nil
}

// Store хранилище заявок в Google Sheets.
// Соединение открывается заново на каждую запись и не переиспользуется.
type Store struct {
	opts    Options
	dial    Dialer
	metrics Metrics
	logger  Logger
}

// NewStore создает хранилище. metrics может быть nil.
func NewStore(opts Options, dial Dialer, m Metrics, logger Logger) *Store {
	if m == nil {
		m = (*metrics.Metrics)(nil)
	}
	return &Store{
		opts:    opts,
		dial:    dial,
		metrics: m,
		logger:  logger,
	}
}

// Connect открывает лист, создавая таблицу и лист при необходимости.
// Никогда не возвращает ошибку: nil означает режим симуляции, причина пишется в лог.
func (s *Store) Connect(ctx context.Context) *Worksheet {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ws, err := s.connect(ctx)
	if err != nil {
		s.logConnectError(err)
		return nil
	}
	return ws
}

// Probe проверяет, что подключение к таблице работает
func (s *Store) Probe(ctx context.Context) bool {
	return s.Connect(ctx) != nil
}

// Append записывает заявку строкой в лист.
// Всегда возвращает true: при недоступности таблицы заявка пишется в лог.
// Отмена родительского контекста (клиент закрыл страницу) запись не прерывает, действует только таймаут.
func (s *Store) Append(ctx context.Context, record *domain.BookingRecord) bool {
	ctx, cancel := s.withTimeout(context.WithoutCancel(ctx))
	defer cancel()

	ws, err := s.connect(ctx)
	if err != nil {
		s.logConnectError(err)
		s.logSimulated("simulated mode, booking not saved to sheet", record)
		s.metrics.ObserveStoreAppend(backendName, metrics.AppendSimulated)
		return true
	}

	if err := ws.AppendRow(ctx, record.Row()); err != nil {
		s.logger.Error("SheetsStore: failed to append booking for student=%s: %v", record.StudentName, err)
		s.logSimulated("append failed, booking not saved to sheet", record)
		s.metrics.ObserveStoreAppend(backendName, metrics.AppendFailed)
		return true
	}

	s.logger.Info("SheetsStore: booking for student=%s appended to %s/%s",
		record.StudentName, s.opts.SpreadsheetName, ws.Title())
	s.metrics.ObserveStoreAppend(backendName, metrics.AppendRemote)
	return true
}

func (s *Store) connect(ctx context.Context) (*Worksheet, error) {
	// 1. Без файла ключа работаем в режиме симуляции
	if _, err := os.Stat(s.opts.CredentialsPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCredentialsMissing, s.opts.CredentialsPath)
		}
		return nil, fmt.Errorf("%w: stat %s: %v", ErrCredentialsMissing, s.opts.CredentialsPath, err)
	}

	// 2. Аутентификация
	remote, err := s.dial(ctx, s.opts.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	// 3. Таблица: открываем по имени или создаем
	spreadsheetID, found, err := remote.FindSpreadsheet(ctx, s.opts.SpreadsheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: find %q: %v", ErrOpenSpreadsheet, s.opts.SpreadsheetName, err)
	}
	if !found {
		s.logger.Info("SheetsStore: spreadsheet %q not found, creating", s.opts.SpreadsheetName)
		spreadsheetID, err = remote.CreateSpreadsheet(ctx, s.opts.SpreadsheetName)
		if err != nil {
			return nil, fmt.Errorf("%w: create %q: %v", ErrOpenSpreadsheet, s.opts.SpreadsheetName, err)
		}
		s.logger.Info("SheetsStore: spreadsheet %q created id=%s", s.opts.SpreadsheetName, spreadsheetID)
	}

	// 4. Лист: открываем по названию или создаем вместе со строкой заголовков
	exists, err := remote.HasWorksheet(ctx, spreadsheetID, s.opts.WorksheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: lookup %q: %v", ErrOpenWorksheet, s.opts.WorksheetName, err)
	}

	ws := &Worksheet{
		remote:        remote,
		spreadsheetID: spreadsheetID,
		title:         s.opts.WorksheetName,
	}

	if !exists {
		s.logger.Info("SheetsStore: worksheet %q not found, creating", s.opts.WorksheetName)
		if err := remote.AddWorksheet(ctx, spreadsheetID, s.opts.WorksheetName, s.opts.Rows, s.opts.Cols); err != nil {
			return nil, fmt.Errorf("%w: create %q: %v", ErrOpenWorksheet, s.opts.WorksheetName, err)
		}
		if err := ws.AppendRow(ctx, headerRow(s.opts.Headers)); err != nil {
			return nil, fmt.Errorf("%w: write headers: %v", ErrOpenWorksheet, err)
		}
		s.logger.Info("SheetsStore: worksheet %q created with headers", s.opts.WorksheetName)
	}

	return ws, nil
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.Timeout)
}

func (s *Store) logConnectError(err error) {
	if errors.Is(err, ErrCredentialsMissing) {
		s.logger.Warn("SheetsStore: %v, running in simulated mode", err)
		return
	}
	s.logger.Error("SheetsStore: connection failed, running in simulated mode: %v", err)
}

func (s *Store) logSimulated(reason string, record *domain.BookingRecord) {
	s.logger.Info("SheetsStore: %s: submitted_at=%s, student_name=%s, grade=%s, phone=%s, email=%s, booking_date=%s, time_slot=%s",
		reason,
		record.SubmittedAt,
		record.StudentName,
		record.Grade,
		record.Phone,
		record.Email,
		record.DisplayDate,
		record.TimeSlot,
	)
}

func headerRow(headers []string) []interface{} {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	return row
}
