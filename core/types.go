// SPDX-License-Identifier: MIT
// Package: glayout/core
//
// types.go - Edge and EdgeList.
//
// Contract:
//   • An Edge is undirected and stored canonically (Src < Dst).
//   • An EdgeList is a set: no self-loops, no duplicate unordered pairs.
//   • Order inside an EdgeList carries no meaning, but it is kept stable so
//     that derived data (Adjacency, render payloads) is deterministic.

package core

import (
	"fmt"
	"sort"
)

// Edge is an undirected pair of vertex indices.
// A canonical Edge satisfies Src < Dst; use NewEdge to obtain one.
type Edge struct {
	Src int
	Dst int
}

// NewEdge returns the canonical form of {u, v}: the smaller index first.
// Self-loops are not rejected here; EdgeList.Validate does that.
// Complexity: O(1).
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{Src: u, Dst: v}
}

// String renders the edge as "u-v".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.Src, e.Dst)
}

// EdgeList is a simple undirected edge set, read-only for the layout solver.
type EdgeList []Edge

// Len returns the number of edges.
func (l EdgeList) Len() int { return len(l) }

// Validate checks that l is a simple graph over vertices [0, n):
// every endpoint in range, no self-loops, no duplicate unordered pairs
// (u,v) and (v,u) are the same pair even when l is not canonical.
//
// Errors: ErrEndpointOutOfRange, ErrSelfLoop, ErrDuplicateEdge (all of
// class ErrInvalidParameter), wrapped with the offending index.
// Complexity: O(E) time, O(E) space.
func (l EdgeList) Validate(n int) error {
	seen := make(map[Edge]struct{}, len(l))
	for i, e := range l {
		if e.Src < 0 || e.Src >= n || e.Dst < 0 || e.Dst >= n {
			return fmt.Errorf("EdgeList.Validate: edge[%d]=%s with n=%d: %w", i, e, n, ErrEndpointOutOfRange)
		}
		if e.Src == e.Dst {
			return fmt.Errorf("EdgeList.Validate: edge[%d]=%s: %w", i, e, ErrSelfLoop)
		}
		key := NewEdge(e.Src, e.Dst)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("EdgeList.Validate: edge[%d]=%s: %w", i, e, ErrDuplicateEdge)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// Degrees counts the edges incident to each vertex in [0, n).
// Endpoints outside the range are ignored; call Validate first if that matters.
// Complexity: O(n+E).
func (l EdgeList) Degrees(n int) []int {
	deg := make([]int, n)
	for _, e := range l {
		if e.Src >= 0 && e.Src < n {
			deg[e.Src]++
		}
		if e.Dst >= 0 && e.Dst < n {
			deg[e.Dst]++
		}
	}

	return deg
}

// Sorted returns a canonical copy of l ordered by (Src, Dst).
// Complexity: O(E log E).
func (l EdgeList) Sorted() EdgeList {
	out := make(EdgeList, len(l))
	for i, e := range l {
		out[i] = NewEdge(e.Src, e.Dst)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Src != out[j].Src {
			return out[i].Src < out[j].Src
		}
		return out[i].Dst < out[j].Dst
	})

	return out
}

// Pairs exports l as [src, dst] index pairs, the shape drawing surfaces consume.
func (l EdgeList) Pairs() [][2]int {
	out := make([][2]int, len(l))
	for i, e := range l {
		out[i] = [2]int{e.Src, e.Dst}
	}

	return out
}
