package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics manages the Prometheus metrics exposed at /metrics. These run
// alongside the in-process request aggregator: Prometheus owns the
// unbounded time-series view, the aggregator owns the bounded JSON view
// consumed by the dashboard.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	StoreItems          *prometheus.GaugeVec
	AdminResets         prometheus.Counter
}

// NewMetrics creates and registers the Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opspulse_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "opspulse_http_request_duration_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		StoreItems: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "opspulse_store_items",
				Help: "Number of items held in the in-memory stores.",
			},
			[]string{"store"},
		),
		AdminResets: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "opspulse_admin_resets_total",
				Help: "Total number of administrative metric resets.",
			},
		),
	}
}

// NewMetricsWithRegistry registers the metrics on a private registry, used
// by tests to avoid duplicate registration on the default registerer.
func NewMetricsWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opspulse_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "opspulse_http_request_duration_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		StoreItems: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "opspulse_store_items",
				Help: "Number of items held in the in-memory stores.",
			},
			[]string{"store"},
		),
		AdminResets: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "opspulse_admin_resets_total",
				Help: "Total number of administrative metric resets.",
			},
		),
	}
}

// RecordHTTPRequest records one completed request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// SetStoreItems records the current size of an in-memory store.
func (m *Metrics) SetStoreItems(store string, count int) {
	m.StoreItems.WithLabelValues(store).Set(float64(count))
}

// RecordAdminReset records an administrative reset action.
func (m *Metrics) RecordAdminReset() {
	m.AdminResets.Inc()
}
