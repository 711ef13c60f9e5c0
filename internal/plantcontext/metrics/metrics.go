package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for knowledge-context requests.
type Metrics struct {
	// Recommendation requests by outcome: "ok", "source_error", "invalid"
	Requests *prometheus.CounterVec

	// Responses whose recommendations were filled by local extraction
	ExtractedFallbacks prometheus.Counter

	// Source call latency in seconds, by source ID and operation
	SourceLatency *prometheus.HistogramVec

	// Confidence scores of validated responses
	Confidence prometheus.Histogram
}

// New registers the module metrics on reg. A nil reg uses the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "botanica_context_requests_total",
			Help: "Plant recommendation requests by outcome",
		}, []string{"outcome"}),

		ExtractedFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "botanica_context_extracted_recommendations_total",
			Help: "Responses whose recommendations came from local keyword extraction",
		}),

		SourceLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "botanica_context_source_duration_seconds",
			Help:    "Latency of context source calls",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source", "operation"}),

		Confidence: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "botanica_context_confidence_score",
			Help:    "Confidence score of returned recommendations",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
	}
}

func (m *Metrics) IncrementRequest(outcome string) {
	if m != nil {
		m.Requests.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncrementExtracted() {
	if m != nil {
		m.ExtractedFallbacks.Inc()
	}
}

func (m *Metrics) ObserveSourceLatency(sourceID, operation string, d time.Duration) {
	if m != nil {
		m.SourceLatency.WithLabelValues(sourceID, operation).Observe(d.Seconds())
	}
}

func (m *Metrics) ObserveConfidence(score float64) {
	if m != nil {
		m.Confidence.Observe(score)
	}
}
