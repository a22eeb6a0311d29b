// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n, p). Each unordered pair {i,j}, i<j, is included
// independently with probability p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0, 1} is deterministic and consumes no draws.
//
// Determinism: trial order is i asc, then j asc (j > i), one Float64 per pair.
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glayout/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (Topology, error) {
		// 1) Validate parameters early.
		if n < minRandomSparseVertices {
			return Topology{}, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return Topology{}, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return Topology{}, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Bernoulli trial per unordered pair, stable order.
		var edges core.EdgeList
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if stochastic {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					edges = append(edges, core.Edge{Src: i, Dst: j})
				}
			}
		}

		return Topology{Vertices: n, Edges: edges}, nil
	}
}
