package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysisOutcomes counts narrative analyses by source (model|fallback).
	AnalysisOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_analysis_outcomes_total",
			Help: "Narrative analyses by result source and degradation reason",
		},
		[]string{"source", "reason"},
	)

	// RefinementOutcomes counts AI refinements by source (model|fallback).
	RefinementOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_refinement_outcomes_total",
			Help: "Estimate refinements by result source and degradation reason",
		},
		[]string{"source", "reason"},
	)

	CatalogLookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_catalog_lookup_failures_total",
			Help: "Catalog reads that failed and were treated as absent",
		},
		[]string{"kind"},
	)

	EstimateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quote_estimate_duration_seconds",
			Help:    "Duration of estimate requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"refined"},
	)
)

// Reason labels are kept to a closed set.
const (
	ReasonNone        = "none"
	ReasonUnavailable = "upstream_unavailable"
	ReasonMalformed   = "malformed_response"
	ReasonTimeout     = "timeout"
	ReasonDisabled    = "disabled"
)
