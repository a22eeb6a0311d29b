// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) has index r*cols + c.
//   • For each (r,c) in row-major order emit Right then Bottom if present;
//     the result is then sorted.
//
// Complexity: O(rows·cols·log) time, O(rows·cols) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/glayout/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for the rows×cols 4-neighbour lattice.
func Grid(rows, cols int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if rows < minGridDim || cols < minGridDim {
			return Topology{}, fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		n := rows * cols
		edges := make(core.EdgeList, 0, 2*n)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					edges = append(edges, core.Edge{Src: v, Dst: v + 1})
				}
				if r+1 < rows {
					edges = append(edges, core.Edge{Src: v, Dst: v + cols})
				}
			}
		}

		return Topology{Vertices: n, Edges: edges.Sorted()}, nil
	}
}
