package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ HTTP = (*httpMetrics)(nil)

// httpMetrics label requests by route template, never by raw path, so draft
// and consignment ids do not create new series.
type httpMetrics struct {
	requests *prometheus.CounterVec
	slow     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newHTTPMetrics(reg prometheus.Registerer) *httpMetrics {
	labels := []string{"method", "route", "status"}

	m := &httpMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: _namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Desk API requests by method, route and status class",
			},
			labels,
		),
		slow: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: _namespace,
				Subsystem: "http",
				Name:      "slow_requests_total",
				Help:      "Desk API requests that exceeded the slow threshold",
			},
			labels,
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: _namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Desk API request duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			labels,
		),
	}

	reg.MustRegister(m.requests, m.slow, m.duration)
	return m
}

func (m *httpMetrics) Request(method, route string, status int, duration time.Duration) {
	class := statusClass(status)
	m.requests.WithLabelValues(method, route, class).Inc()
	m.duration.WithLabelValues(method, route, class).Observe(duration.Seconds())
}

// SlowRequest only counts; the duration is already observed by Request.
func (m *httpMetrics) SlowRequest(method, route string, status int, _ time.Duration) {
	m.slow.WithLabelValues(method, route, statusClass(status)).Inc()
}

// statusClass renders 404 as "4xx"; a zero status means no response was written.
func statusClass(status int) string {
	if status <= 0 {
		return "none"
	}
	return strconv.Itoa(status/100) + "xx"
}
