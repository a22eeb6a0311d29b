// SPDX-License-Identifier: MIT
// Package: glayout/internal/metrics

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status labels shared by the recorders.
const (
	StatusSuccess    = "success"
	StatusError      = "error"
	StatusInvalid    = "invalid"
	StatusDegenerate = "degenerate"
	StatusCancelled  = "cancelled"
)

// RecordGeneration records one graph generation request. Sizes are only
// observed for successful runs.
func (r *Registry) RecordGeneration(topology, status string, vertices, edges int) {
	r.GraphsGeneratedTotal.WithLabelValues(topology, status).Inc()
	if status != StatusSuccess {
		return
	}
	r.GraphVertices.Observe(float64(vertices))
	r.GraphEdges.Observe(float64(edges))
}

// RecordLayout records one relaxation run. Iterations are counted only
// when the run committed.
func (r *Registry) RecordLayout(status string, iterations int, duration time.Duration) {
	r.LayoutRunsTotal.WithLabelValues(status).Inc()
	r.LayoutDuration.WithLabelValues(status).Observe(duration.Seconds())
	if status == StatusSuccess {
		r.LayoutIterationsTotal.Add(float64(iterations))
	}
}

// WriteTextfile dumps the registry in the Prometheus text format, for the
// node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
