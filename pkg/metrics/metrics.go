package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Результаты обработки заявки
const (
	SubmissionAccepted = "accepted"
	SubmissionInvalid  = "invalid"
	SubmissionError    = "error"
)

// Режимы записи в хранилище
const (
	AppendRemote    = "remote"
	AppendSimulated = "simulated"
	AppendFailed    = "failed"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя, чтобы метрики можно было отключить конфигом
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	submissionsTotal    *prometheus.CounterVec
	storeAppendsTotal   *prometheus.CounterVec
	notificationsTotal  *prometheus.CounterVec
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Trial-class booking submissions by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		storeAppendsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_store_appends_total",
			Help:        "Booking record writes by store backend and mode",
			ConstLabels: constLabels,
		}, []string{"backend", "mode"}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_notifications_total",
			Help:        "Confirmation messages emitted",
			ConstLabels: constLabels,
		}, []string{"channel"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.submissionsTotal,
		m.storeAppendsTotal,
		m.notificationsTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveSubmission фиксирует результат обработки заявки
func (m *Metrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(result).Inc()
}

// ObserveStoreAppend фиксирует запись в хранилище
func (m *Metrics) ObserveStoreAppend(backend, mode string) {
	if m == nil {
		return
	}
	m.storeAppendsTotal.WithLabelValues(backend, mode).Inc()
}

// ObserveNotification фиксирует отправку подтверждения
func (m *Metrics) ObserveNotification(channel string) {
	if m == nil {
		return
	}
	m.notificationsTotal.WithLabelValues(channel).Inc()
}
