// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 has no edges.
//   • Edges {i, j} for all i < j, in (i asc, j asc) order.
//
// Complexity: O(n²) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/glayout/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if n < minCompleteNodes {
			return Topology{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		edges := make(core.EdgeList, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, core.Edge{Src: i, Dst: j})
			}
		}

		return Topology{Vertices: n, Edges: edges}, nil
	}
}
