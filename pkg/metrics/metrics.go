package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus коллекторов сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// База данных
	DBQueryDuration  *prometheus.HistogramVec
	DBQueryErrors    *prometheus.CounterVec
	DBOpenConns      prometheus.Gauge
	DBInUseConns     prometheus.Gauge
	DBIdleConns      prometheus.Gauge
	DBWaitCount      prometheus.Gauge
	DBWaitDurationMs prometheus.Gauge

	// Доменные метрики
	ConflictsTotal     *prometheus.CounterVec
	AlertsCurrent      *prometheus.GaugeVec
	NotificationsTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "route"}),
		HTTPRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: labels,
		}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: labels,
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database query errors",
			ConstLabels: labels,
		}, []string{"operation"}),
		DBOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: labels,
		}),
		DBInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: labels,
		}),
		DBIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: labels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
		DBWaitDurationMs: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_duration_milliseconds",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: labels,
		}),
		ConflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_conflicts_total",
			Help:        "Writes rejected by the interval conflict checker",
			ConstLabels: labels,
		}, []string{"kind"}),
		AlertsCurrent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "maintenance_alerts_current",
			Help:        "Alerts computed on the last sweep by priority",
			ConstLabels: labels,
		}, []string{"priority"}),
		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Notification emails by channel and result",
			ConstLabels: labels,
		}, []string{"channel", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConns,
		m.DBInUseConns,
		m.DBIdleConns,
		m.DBWaitCount,
		m.DBWaitDurationMs,
		m.ConflictsTotal,
		m.AlertsCurrent,
		m.NotificationsTotal,
	)

	return m
}

// IncConflict учитывает отклонённую из-за пересечения запись. Безопасен для nil.
func (m *Metrics) IncConflict(kind string) {
	if m == nil {
		return
	}
	m.ConflictsTotal.WithLabelValues(kind).Inc()
}

// IncNotification учитывает отправку уведомления. Безопасен для nil.
func (m *Metrics) IncNotification(channel, result string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(channel, result).Inc()
}

// SetAlerts выставляет количество алертов по приоритетам. Безопасен для nil.
func (m *Metrics) SetAlerts(byPriority map[string]int) {
	if m == nil {
		return
	}
	m.AlertsCurrent.Reset()
	for priority, count := range byPriority {
		m.AlertsCurrent.WithLabelValues(priority).Set(float64(count))
	}
}
