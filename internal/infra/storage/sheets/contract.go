package sheets

import (
	"context"
)

// Remote операции удаленного сервиса таблиц, которые нужны хранилищу
type Remote interface {
	// FindSpreadsheet ищет таблицу по имени, found=false если таблицы нет
	FindSpreadsheet(ctx context.Context, name string) (id string, found bool, err error)
	CreateSpreadsheet(ctx context.Context, name string) (id string, err error)
	HasWorksheet(ctx context.Context, spreadsheetID, title string) (bool, error)
	AddWorksheet(ctx context.Context, spreadsheetID, title string, rows, cols int64) error
	AppendRow(ctx context.Context, spreadsheetID, title string, row []interface{}) error
}

// Dialer аутентифицируется по файлу ключа сервисного аккаунта
type Dialer func(ctx context.Context, credentialsPath string) (Remote, error)

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
