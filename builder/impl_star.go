// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); vertex 0 is the hub.
//   • Edges {0, i} for i=1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/glayout/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHub      = 0
)

// Star returns a Constructor for the star graph with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if n < minStarNodes {
			return Topology{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		edges := make(core.EdgeList, 0, n-1)
		for leaf := 1; leaf < n; leaf++ {
			edges = append(edges, core.Edge{Src: starHub, Dst: leaf})
		}

		return Topology{Vertices: n, Edges: edges}, nil
	}
}
