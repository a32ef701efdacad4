package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Upstream = (*upstreamMetrics)(nil)

type upstreamMetrics struct {
	calls    *prometheus.CounterVec
	retries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newUpstreamMetrics(reg prometheus.Registerer) *upstreamMetrics {
	calls := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Backend calls by operation and status class",
		},
		[]string{"operation", "status"},
	)

	retries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Subsystem: "upstream",
			Name:      "retries_total",
			Help:      "Retried backend calls by operation",
		},
		[]string{"operation"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: _namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Backend call duration in seconds, retries included",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"operation"},
	)

	reg.MustRegister(calls, retries, duration)

	return &upstreamMetrics{
		calls:    calls,
		retries:  retries,
		duration: duration,
	}
}

// Call records a finished backend call. A zero status means the request never
// got a response.
func (m *upstreamMetrics) Call(operation string, status int, duration time.Duration) {
	label := "transport"
	if status > 0 {
		label = statusClass(status)
	}
	m.calls.WithLabelValues(operation, label).Add(1)
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *upstreamMetrics) Retry(operation string) {
	m.retries.WithLabelValues(operation).Add(1)
}
