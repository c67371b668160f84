package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
	OutcomeFallback = "fallback"
)

var (
	// GenerationsTotal counts project generations by outcome, so operators
	// can tell "model succeeded" from "fallback used".
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeweaver_generations_total",
		Help: "Project generations by outcome (ok, degraded, fallback).",
	}, []string{"outcome"})

	// GatewayErrorsTotal counts model gateway failures by provider and
	// whether the failure looked transient.
	GatewayErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeweaver_gateway_errors_total",
		Help: "Model gateway exchange failures.",
	}, []string{"provider", "temporary"})

	// UploadsTotal counts storage uploads by result.
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codeweaver_uploads_total",
		Help: "Storage uploads by result (ok, placeholder).",
	}, []string{"result"})
)

// ObserveGeneration records the outcome of one generation run. Reasons from
// the full-fallback path mention a failed generation step; quality
// substitutions count as degraded.
func ObserveGeneration(degraded bool, reason string) {
	switch {
	case !degraded:
		GenerationsTotal.WithLabelValues(OutcomeOK).Inc()
	case strings.Contains(reason, "generation failed") || strings.Contains(reason, "assembly failure"):
		GenerationsTotal.WithLabelValues(OutcomeFallback).Inc()
	default:
		GenerationsTotal.WithLabelValues(OutcomeDegraded).Inc()
	}
}
