// Package collector implements the Prometheus collector interface for PKCE operations.
package collector

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"pkcegen/internal/pkce"
)

// PKCECollector implements prometheus.Collector and records PKCE activity.
type PKCECollector struct {
	metrics *MetricSet
}

// NewPKCECollector creates a new collector.
func NewPKCECollector() *PKCECollector {
	return &PKCECollector{metrics: newMetricSet()}
}

// Describe implements prometheus.Collector.
func (c *PKCECollector) Describe(ch chan<- *prometheus.Desc) {
	c.metrics.verifiersGenerated.Describe(ch)
	c.metrics.challengesDerived.Describe(ch)
	c.metrics.verifications.Describe(ch)
	c.metrics.errors.Describe(ch)
	c.metrics.generateDuration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *PKCECollector) Collect(ch chan<- prometheus.Metric) {
	c.metrics.verifiersGenerated.Collect(ch)
	c.metrics.challengesDerived.Collect(ch)
	c.metrics.verifications.Collect(ch)
	c.metrics.errors.Collect(ch)
	c.metrics.generateDuration.Collect(ch)
}

// ObserveGenerate records a verifier generation attempt.
func (c *PKCECollector) ObserveGenerate(start time.Time, err error) {
	c.metrics.generateDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.ObserveError(err)
		return
	}
	c.metrics.verifiersGenerated.Inc()
}

// ObserveDerive records a challenge derivation attempt.
func (c *PKCECollector) ObserveDerive(err error) {
	if err != nil {
		c.ObserveError(err)
		return
	}
	c.metrics.challengesDerived.Inc()
}

// ObserveVerify records the outcome of a verifier/challenge check.
func (c *PKCECollector) ObserveVerify(valid bool) {
	result := "mismatch"
	if valid {
		result = "match"
	}
	c.metrics.verifications.WithLabelValues(result).Inc()
}

// ObserveError counts a failure under its kind.
func (c *PKCECollector) ObserveError(err error) {
	c.metrics.errors.WithLabelValues(errorKind(err)).Inc()
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, pkce.ErrRandomGeneration):
		return KindRandomGeneration
	case errors.Is(err, pkce.ErrNonASCIIVerifier):
		return KindNonASCII
	default:
		return KindInvalidRequest
	}
}
