package infrastructure

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"citydash.app/internal/ports"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// MetricsCollectorAdapter records upstream round trips into its own Prometheus registry
type MetricsCollectorAdapter struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetricsCollectorAdapter creates a collector with Go runtime and process metrics registered
func NewMetricsCollectorAdapter() *MetricsCollectorAdapter {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &MetricsCollectorAdapter{
		registry: registry,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "citydash_upstream_requests_total",
				Help: "Upstream round trips by upstream and outcome",
			},
			[]string{"upstream", "outcome"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "citydash_upstream_request_duration_seconds",
				Help:    "Upstream round trip duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"upstream"},
		),
	}
}

var _ ports.UpstreamMetrics = (*MetricsCollectorAdapter)(nil)

func (m *MetricsCollectorAdapter) RecordUpstreamCall(upstream string, success bool, duration time.Duration) {
	outcome := outcomeFailure
	if success {
		outcome = outcomeSuccess
	}
	m.requests.WithLabelValues(upstream, outcome).Inc()
	m.latency.WithLabelValues(upstream).Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (m *MetricsCollectorAdapter) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer gives read access to the collected metrics
func (m *MetricsCollectorAdapter) Gatherer() prometheus.Gatherer {
	return m.registry
}
