// Package metrics exposes Prometheus counters for draft generation and
// gate activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records the service's operational counters.
type Collector struct {
	registry      *prometheus.Registry
	drafts        *prometheus.CounterVec
	fallbacks     *prometheus.CounterVec
	gateDecisions *prometheus.CounterVec
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		drafts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autointern_drafts_generated_total",
			Help: "Email drafts generated, by strategy.",
		}, []string{"strategy"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autointern_provider_fallback_total",
			Help: "Generative provider failures recovered by the template fallback, by reason.",
		}, []string{"reason"}),
		gateDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autointern_gate_decisions_total",
			Help: "Subscription gate outcomes.",
		}, []string{"decision"}),
	}

	reg.MustRegister(c.drafts, c.fallbacks, c.gateDecisions)
	return c
}

// RecordDraft counts one generated draft for the given strategy.
func (c *Collector) RecordDraft(strategy string) {
	c.drafts.WithLabelValues(strategy).Inc()
}

// RecordFallback counts one provider fallback with its reason.
func (c *Collector) RecordFallback(reason string) {
	c.fallbacks.WithLabelValues(reason).Inc()
}

// RecordGateDecision counts one gate outcome ("allow" or "redirect").
func (c *Collector) RecordGateDecision(allowed bool) {
	decision := "redirect"
	if allowed {
		decision = "allow"
	}
	c.gateDecisions.WithLabelValues(decision).Inc()
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
