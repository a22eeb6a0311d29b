// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges {i, (i+1)%n} for i=0..n-1, returned sorted.
//
// Complexity: O(n log n) time (sort), O(n) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/glayout/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the cycle graph C_n.
func Cycle(n int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if n < minCycleNodes {
			return Topology{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		edges := make(core.EdgeList, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, core.NewEdge(i, (i+1)%n))
		}

		return Topology{Vertices: n, Edges: edges.Sorted()}, nil
	}
}
