// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges {i, i+1} for i=0..n-2, already in sorted order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/glayout/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the path graph P_n.
func Path(n int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if n < minPathNodes {
			return Topology{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		edges := make(core.EdgeList, 0, n-1)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, core.Edge{Src: i, Dst: i + 1})
		}

		return Topology{Vertices: n, Edges: edges}, nil
	}
}
