// SPDX-License-Identifier: MIT
// Package: glayout/internal/metrics

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLayoutMetrics() {
	r.LayoutRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "glayout_layout_runs_total",
			Help: "Total number of relaxation runs",
		},
		[]string{"status"}, // success, invalid, degenerate, cancelled, error
	)

	r.LayoutIterationsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "glayout_layout_iterations_total",
			Help: "Total number of relaxation iterations committed",
		},
	)

	r.LayoutDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "glayout_layout_duration_seconds",
			Help:    "Relaxation run latency in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"status"},
	)
}
