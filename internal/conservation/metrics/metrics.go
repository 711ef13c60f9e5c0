package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for conservation lookups.
type Metrics struct {
	// Lookups by outcome: "found", "not_found", "unavailable"
	Lookups *prometheus.CounterVec

	// Cache reads by result: "hit", "miss"
	Cache *prometheus.CounterVec

	// Snapshot fallbacks served while the source was unavailable
	Fallbacks prometheus.Counter

	// Source call latency in seconds, by source ID
	SourceLatency *prometheus.HistogramVec
}

// New registers the module metrics on reg. A nil reg uses the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "botanica_conservation_lookups_total",
			Help: "Conservation status lookups by outcome",
		}, []string{"outcome"}),

		Cache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "botanica_conservation_cache_requests_total",
			Help: "Assessment cache reads by result",
		}, []string{"result"}),

		Fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "botanica_conservation_snapshot_fallbacks_total",
			Help: "Stored snapshots served because the source was unavailable",
		}),

		SourceLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "botanica_conservation_source_duration_seconds",
			Help:    "Latency of conservation source lookups",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"source"}),
	}
}

func (m *Metrics) IncrementLookup(outcome string) {
	if m != nil {
		m.Lookups.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncrementCacheHit() {
	if m != nil {
		m.Cache.WithLabelValues("hit").Inc()
	}
}

func (m *Metrics) IncrementCacheMiss() {
	if m != nil {
		m.Cache.WithLabelValues("miss").Inc()
	}
}

func (m *Metrics) IncrementFallback() {
	if m != nil {
		m.Fallbacks.Inc()
	}
}

func (m *Metrics) ObserveSourceLatency(sourceID string, d time.Duration) {
	if m != nil {
		m.SourceLatency.WithLabelValues(sourceID).Observe(d.Seconds())
	}
}
