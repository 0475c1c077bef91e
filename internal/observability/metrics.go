// Package observability holds the Prometheus instrumentation for the engine.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the engine's Prometheus collectors.
type Metrics struct {
	Generations        *prometheus.CounterVec
	GenerationFailures prometheus.Counter
	GenerationDuration prometheus.Histogram
	Exports            prometheus.Counter
	ExportRejections   prometheus.Counter
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ishikawa_generations_total",
				Help: "Completed tree generations by category and level",
			},
			[]string{"category", "level"},
		),
		GenerationFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ishikawa_generation_failures_total",
				Help: "Tree generations that failed or were canceled",
			},
		),
		GenerationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ishikawa_generation_duration_seconds",
				Help:    "Duration of tree generation including provider latency",
				Buckets: prometheus.DefBuckets,
			},
		),
		Exports: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ishikawa_exports_total",
				Help: "Report exports served",
			},
		),
		ExportRejections: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ishikawa_export_rejections_total",
				Help: "Exports rejected because no diagram was generated",
			},
		),
	}

	reg.MustRegister(
		m.Generations,
		m.GenerationFailures,
		m.GenerationDuration,
		m.Exports,
		m.ExportRejections,
	)
	return m
}

// NewNopMetrics creates unregistered collectors for tests.
func NewNopMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
