package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	DBConnectionsOpen  *prometheus.GaugeVec
	DBConnectionsIdle  *prometheus.GaugeVec
	DBConnectionsInUse *prometheus.GaugeVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBConnectionsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
