// SPDX-License-Identifier: MIT
// Package: glayout/core
//
// adjacency_list.go - AdjacencyIndex derived from an EdgeList.
//
// The index is a computation cache: the solver builds it once per call and
// drops it on return. Neighbor order follows edge-list order, which keeps
// floating-point summation order (and therefore results) reproducible.

package core

import "fmt"

// Adjacency maps a vertex index to the ordered indices of its neighbors.
type Adjacency [][]int

// NewAdjacency builds the adjacency index of edges over n vertices.
// For each edge {u,v} in list order, v is appended to u's neighbors and
// u to v's.
//
// Errors: ErrInvalidParameter when n < 0, or any EdgeList.Validate error.
// Complexity: O(n+E) time and space.
func NewAdjacency(n int, edges EdgeList) (Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewAdjacency: n=%d: %w", n, ErrInvalidParameter)
	}
	if err := edges.Validate(n); err != nil {
		return nil, fmt.Errorf("NewAdjacency: %w", err)
	}

	deg := edges.Degrees(n)
	adj := make(Adjacency, n)
	for v := range adj {
		adj[v] = make([]int, 0, deg[v])
	}
	for _, e := range edges {
		adj[e.Src] = append(adj[e.Src], e.Dst)
		adj[e.Dst] = append(adj[e.Dst], e.Src)
	}

	return adj, nil
}

// Neighbors returns the neighbor indices of v (shared, do not mutate).
// Out-of-range v yields ErrIndexOutOfBounds.
func (a Adjacency) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= len(a) {
		return nil, fmt.Errorf("Adjacency.Neighbors(%d): %w", v, ErrIndexOutOfBounds)
	}

	return a[v], nil
}

// Degree returns len(Neighbors(v)), or 0 when v is out of range.
func (a Adjacency) Degree(v int) int {
	if v < 0 || v >= len(a) {
		return 0
	}

	return len(a[v])
}
