package collector

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label names
const (
	LabelKind   = "kind"
	LabelResult = "result"
)

// Error kinds
const (
	KindRandomGeneration = "random_generation"
	KindNonASCII         = "non_ascii_verifier"
	KindInvalidRequest   = "invalid_request"
)

// MetricSet holds all Prometheus metrics for pkcegen.
type MetricSet struct {
	verifiersGenerated prometheus.Counter
	challengesDerived  prometheus.Counter
	verifications      *prometheus.CounterVec
	errors             *prometheus.CounterVec
	generateDuration   prometheus.Histogram
}

// newMetricSet creates all metrics.
func newMetricSet() *MetricSet {
	return &MetricSet{
		verifiersGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pkcegen_verifiers_generated_total",
			Help: "Total number of code verifiers generated",
		}),
		challengesDerived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pkcegen_challenges_derived_total",
			Help: "Total number of S256 code challenges derived",
		}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pkcegen_verifications_total",
			Help: "Total number of verifier/challenge checks by result",
		}, []string{LabelResult}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pkcegen_errors_total",
			Help: "Total number of failed operations by kind",
		}, []string{LabelKind}),
		generateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pkcegen_generate_duration_seconds",
			Help:    "Time spent generating a code verifier",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}),
	}
}
