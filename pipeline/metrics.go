package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects pipeline operation counters and latencies. A nil
// *Metrics disables collection.
type Metrics struct {
	operations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	validations *prometheus.CounterVec
	scores      prometheus.Histogram
}

// NewMetrics registers pipeline metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "easy_dataset",
			Subsystem: "pipeline",
			Name:      "operations_total",
			Help:      "Pipeline operations by outcome.",
		}, []string{"operation", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "easy_dataset",
			Subsystem: "pipeline",
			Name:      "operation_duration_seconds",
			Help:      "End-to-end pipeline operation latency including LLM calls.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
		}, []string{"operation"}),
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "easy_dataset",
			Subsystem: "pipeline",
			Name:      "validation_failures_total",
			Help:      "Structured-output validation failures by kind.",
		}, []string{"kind"}),
		scores: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "easy_dataset",
			Subsystem: "pipeline",
			Name:      "evaluation_scores",
			Help:      "Quantized dataset evaluation scores.",
			Buckets:   prometheus.LinearBuckets(0, 0.5, 11),
		}),
	}
}

func (m *Metrics) observeOperation(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, status).Inc()
	m.duration.WithLabelValues(operation).Observe(seconds)
}

func (m *Metrics) observeValidationFailure(kind string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(kind).Inc()
}

func (m *Metrics) observeScore(score float64) {
	if m == nil {
		return
	}
	m.scores.Observe(score)
}
