// SPDX-License-Identifier: MIT
// Package: glayout/internal/metrics

// Package metrics holds the Prometheus collectors of a layout process:
// graph generation and relaxation runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all collectors, registered on a private prometheus.Registry
// so that several sessions (and parallel tests) never collide.
type Registry struct {
	// Generation metrics
	GraphsGeneratedTotal *prometheus.CounterVec
	GraphVertices        prometheus.Histogram
	GraphEdges           prometheus.Histogram

	// Layout metrics
	LayoutRunsTotal       *prometheus.CounterVec
	LayoutIterationsTotal prometheus.Counter
	LayoutDuration        *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initGenerationMetrics()
	r.initLayoutMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
