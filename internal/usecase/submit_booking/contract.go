package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TrialBooking/internal/domain"
)

// BookingStore хранилище заявок.
// Append всегда возвращает true: недоступность хранилища не должна ломать подтверждение.
type BookingStore interface {
	Append(ctx context.Context, record *domain.BookingRecord) bool
}

// Notifier отправка подтверждения родителю
type Notifier interface {
	Notify(ctx context.Context, record *domain.BookingRecord)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
