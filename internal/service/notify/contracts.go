package notify

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Metrics интерфейс метрик уведомлений
type Metrics interface {
	ObserveNotification(channel string)
}
