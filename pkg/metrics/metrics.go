package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики работы с БД
	DBQueryDuration *prometheus.HistogramVec

	// Метрики connection pool
	DBConnectionsOpen  *prometheus.GaugeVec
	DBConnectionsIdle  *prometheus.GaugeVec
	DBConnectionsInUse *prometheus.GaugeVec

	// Метрики планировщика
	AllocationConflictsTotal *prometheus.CounterVec
	LockWaitDuration         *prometheus.HistogramVec
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

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
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

		AllocationConflictsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduler_allocation_conflicts_total",
			Help:        "Total number of allocation attempts rejected due to concurrent conflicts",
			ConstLabels: constLabels,
		}, []string{"resource"}),

		LockWaitDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "scheduler_lock_wait_duration_seconds",
			Help:        "Time spent waiting for the per-resource lock",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"resource"}),
	}
}

// ObserveLockWait фиксирует длительность ожидания per-resource блокировки
func (m *Metrics) ObserveLockWait(resourceID int64, seconds float64) {
	m.LockWaitDuration.WithLabelValues(strconv.FormatInt(resourceID, 10)).Observe(seconds)
}

// IncAllocationConflict фиксирует отклонённую из-за конкуренции аллокацию
func (m *Metrics) IncAllocationConflict(resourceID int64) {
	m.AllocationConflictsTotal.WithLabelValues(strconv.FormatInt(resourceID, 10)).Inc()
}
