package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Cache = (*cacheMetrics)(nil)

// cacheMetrics label every series with the cache name (drafts, users, invoices).
type cacheMetrics struct {
	lookups   *prometheus.CounterVec
	evictions *prometheus.CounterVec
	entries   *prometheus.GaugeVec
}

func newCacheMetrics(reg prometheus.Registerer) *cacheMetrics {
	m := &cacheMetrics{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: _namespace,
				Subsystem: "cache",
				Name:      "lookups_total",
				Help:      "Cache lookups by cache and result (hit or miss)",
			},
			[]string{"cache", "result"},
		),
		evictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: _namespace,
				Subsystem: "cache",
				Name:      "evictions_total",
				Help:      "Entries removed from a cache by reason",
			},
			[]string{"cache", "reason"},
		),
		entries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: _namespace,
				Subsystem: "cache",
				Name:      "entries",
				Help:      "Entries currently held; for drafts this is the number of open forms",
			},
			[]string{"cache"},
		),
	}

	reg.MustRegister(m.lookups, m.evictions, m.entries)
	return m
}

func (m *cacheMetrics) Hit(cacheName string) {
	m.lookups.WithLabelValues(cacheName, "hit").Inc()
}

func (m *cacheMetrics) Miss(cacheName string) {
	m.lookups.WithLabelValues(cacheName, "miss").Inc()
}

func (m *cacheMetrics) Eviction(cacheName string, reason string) {
	m.evictions.WithLabelValues(cacheName, reason).Inc()
}

func (m *cacheMetrics) Size(cacheName string, size int) {
	m.entries.WithLabelValues(cacheName).Set(float64(size))
}
