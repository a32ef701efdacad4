package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ RateCard = (*rateCardMetrics)(nil)

type rateCardMetrics struct {
	lookups  *prometheus.CounterVec
	stale    prometheus.Counter
	duration prometheus.Histogram
}

func newRateCardMetrics(reg prometheus.Registerer) *rateCardMetrics {
	lookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Subsystem: "rate_card",
			Name:      "lookups_total",
			Help:      "Rate card lookups by outcome",
		},
		[]string{"outcome"},
	)

	stale := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Subsystem: "rate_card",
			Name:      "stale_responses_total",
			Help:      "Lookup responses dropped because the draft key changed meanwhile",
		},
	)

	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: _namespace,
			Subsystem: "rate_card",
			Name:      "lookup_duration_seconds",
			Help:      "Rate card lookup duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	reg.MustRegister(lookups, stale, duration)

	return &rateCardMetrics{
		lookups:  lookups,
		stale:    stale,
		duration: duration,
	}
}

func (m *rateCardMetrics) Lookup(outcome string, duration time.Duration) {
	m.lookups.WithLabelValues(outcome).Add(1)
	m.duration.Observe(duration.Seconds())
}

func (m *rateCardMetrics) Stale() {
	m.stale.Add(1)
}
