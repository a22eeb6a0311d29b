// SPDX-License-Identifier: MIT
// Package: glayout/internal/metrics

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGenerationMetrics() {
	r.GraphsGeneratedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "glayout_graphs_generated_total",
			Help: "Total number of graph generation requests",
		},
		[]string{"topology", "status"}, // status: success, error
	)

	r.GraphVertices = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "glayout_graph_vertices",
			Help:    "Vertex count of generated graphs",
			Buckets: prometheus.ExponentialBuckets(2, 2, 12),
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "glayout_graph_edges",
			Help:    "Edge count of generated graphs",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		},
	)
}
