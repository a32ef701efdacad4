package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Transaction = (*transactionMetrics)(nil)

// transactionMetrics cover the postgres consignment store. Operations are the
// names passed to the transaction manager, e.g. create_consignment.
type transactionMetrics struct {
	duration *prometheus.HistogramVec
	attempts *prometheus.CounterVec
}

func newTransactionMetrics(reg prometheus.Registerer) *transactionMetrics {
	m := &transactionMetrics{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: _namespace,
				Subsystem: "db",
				Name:      "transaction_duration_seconds",
				Help:      "Duration of store transactions in seconds, retries included",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"operation"},
		),
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: _namespace,
				Subsystem: "db",
				Name:      "transaction_events_total",
				Help:      "Transaction retries and final failures by operation",
			},
			[]string{"operation", "event"},
		),
	}

	reg.MustRegister(m.duration, m.attempts)
	return m
}

func (m *transactionMetrics) ObserveDuration(operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *transactionMetrics) IncrementRetries(operation string) {
	m.attempts.WithLabelValues(operation, "retry").Inc()
}

func (m *transactionMetrics) IncrementFailures(operation string) {
	m.attempts.WithLabelValues(operation, "failure").Inc()
}
