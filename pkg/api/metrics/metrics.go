// Package metrics exposes Prometheus instrumentation for remote API calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the remote API client.
type Metrics struct {
	RemoteCalls        *prometheus.CounterVec
	RemoteCallDuration *prometheus.HistogramVec
}

// New creates and registers the collectors on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates the collectors on a caller-supplied registry. Tests use
// this to avoid duplicate registration across cases.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RemoteCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "authlink_remote_calls_total",
			Help: "Total number of remote API calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		RemoteCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "authlink_remote_call_duration_seconds",
			Help:    "Latency of remote API calls by endpoint.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

// Observe records one completed remote call.
func (m *Metrics) Observe(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RemoteCalls.WithLabelValues(endpoint, outcome).Inc()
	m.RemoteCallDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
