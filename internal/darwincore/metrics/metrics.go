package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the Darwin Core module.
type Metrics struct {
	// Records converted by kind: "taxon", "occurrence"
	Conversions *prometheus.CounterVec

	// Completeness warnings by warning text
	Warnings *prometheus.CounterVec

	// Occurrences persisted
	Recorded prometheus.Counter
}

// New registers the module metrics on reg. A nil reg uses the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "botanica_darwin_core_conversions_total",
			Help: "Darwin Core records produced from species by kind",
		}, []string{"kind"}),

		Warnings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "botanica_darwin_core_validation_warnings_total",
			Help: "Record completeness warnings by warning",
		}, []string{"warning"}),

		Recorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "botanica_darwin_core_occurrences_recorded_total",
			Help: "Occurrence records persisted",
		}),
	}
}

func (m *Metrics) IncrementConversion(kind string) {
	if m != nil {
		m.Conversions.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) ObserveWarnings(warnings []string) {
	if m != nil {
		for _, w := range warnings {
			m.Warnings.WithLabelValues(w).Inc()
		}
	}
}

func (m *Metrics) IncrementRecorded() {
	if m != nil {
		m.Recorded.Inc()
	}
}
