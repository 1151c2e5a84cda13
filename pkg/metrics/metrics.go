package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP-метрики входящих запросов
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики исходящих запросов к интеграциям
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	// Метрики работы с БД
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBConnsOpen     *prometheus.GaugeVec

	// Бизнес-метрики формы записи
	FormSessionsActive    *prometheus.GaugeVec
	StaleAvailabilityDrop *prometheus.CounterVec
	PartialFailuresTotal  *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		UpstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests to upstream services",
		}, []string{"service", "target", "operation", "outcome"}),

		UpstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "target", "operation"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "outcome"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		DBConnsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		}, []string{"service"}),

		FormSessionsActive: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "form_sessions_active",
			Help: "Number of open appointment form sessions",
		}, []string{"service"}),

		StaleAvailabilityDrop: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_stale_responses_dropped_total",
			Help: "Availability responses discarded by the request-sequence guard",
		}, []string{"service"}),

		PartialFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "appointment_partial_failures_total",
			Help: "Replace-on-edit operations that lost the original appointment",
		}, []string{"service"}),
	}
}

// ServiceName возвращает имя сервиса для label-ов
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// ObserveHTTP записывает результат обработки входящего запроса
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(seconds)
}

// SetFormSessionsActive выставляет число открытых сессий формы
func (m *Metrics) SetFormSessionsActive(n float64) {
	m.FormSessionsActive.WithLabelValues(m.serviceName).Set(n)
}

// StaleAvailabilityDropped фиксирует отброшенный устаревший ответ доступности
func (m *Metrics) StaleAvailabilityDropped() {
	m.StaleAvailabilityDrop.WithLabelValues(m.serviceName).Inc()
}

// PartialFailureRecorded фиксирует потерю записи при замене
func (m *Metrics) PartialFailureRecorded() {
	m.PartialFailuresTotal.WithLabelValues(m.serviceName).Inc()
}

// ObserveUpstream записывает результат исходящего запроса
func (m *Metrics) ObserveUpstream(target, operation, outcome string, seconds float64) {
	m.UpstreamRequestsTotal.WithLabelValues(m.serviceName, target, operation, outcome).Inc()
	m.UpstreamRequestDuration.WithLabelValues(m.serviceName, target, operation).Observe(seconds)
}
