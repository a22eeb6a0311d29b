// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// impl_degree_bounded.go - degree-bounded random graph generator.
//
// Contract:
//   • n ≥ 2 (n == 1 has no valid edge; else ErrTooFewVertices).
//   • maxDegree ≥ 2 (the target range [1, maxDegree) must be non-empty).
//   • rng non-nil (else ErrNeedRandSource).
//   • No self-loops, no duplicate pairs, every degree ≤ maxDegree.
//   • Output sorted by (Src, Dst).
//
// Draw order (fixed, so a seed pins the result):
//   for src := 0..n-1:
//     rng.Intn(maxDegree-1)          // target
//     rng.Intn(n) ...                // partners, until target met or budget spent
//
// Complexity:
//   • Time: O(n·(attempts + self-draws)) expected, plus O(E log E) for the sort.
//   • Space: O(n + E).

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/glayout/core"
)

const (
	methodDegreeBounded      = "DegreeBounded"
	methodGenerateGraph      = "GenerateGraph"
	minDegreeBoundedVertices = 2
	minMaxDegree             = 2
)

// GenerateGraph returns a random simple undirected graph over n vertices in
// which no vertex exceeds maxDegree, drawing every random value from rng.
// It is DegreeBounded run with the default MaxEdgeAttempts budget.
func GenerateGraph(n, maxDegree int, rng *rand.Rand) (core.EdgeList, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerateGraph, ErrNeedRandSource)
	}
	top, err := DegreeBounded(n, maxDegree)(builderConfig{rng: rng, edgeAttempts: MaxEdgeAttempts})
	if err != nil {
		return nil, err
	}

	return top.Edges, nil
}

// DegreeBounded returns a Constructor for the degree-bounded generator.
// The partner draw budget comes from WithEdgeAttempts (default MaxEdgeAttempts).
func DegreeBounded(n, maxDegree int) Constructor {
	return func(cfg builderConfig) (Topology, error) {
		// 1) Validate parameters early (zero draws on invalid input).
		if n < minDegreeBoundedVertices {
			return Topology{}, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodDegreeBounded, n, minDegreeBoundedVertices, ErrTooFewVertices)
		}
		if maxDegree < minMaxDegree {
			return Topology{}, fmt.Errorf("%s: maxDegree=%d < min=%d: %w",
				methodDegreeBounded, maxDegree, minMaxDegree, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return Topology{}, fmt.Errorf("%s: %w", methodDegreeBounded, ErrNeedRandSource)
		}

		rng := cfg.rng
		degree := make([]int, n)                // DegreeCounter, dropped on return
		seen := make(map[core.Edge]struct{}, n) // canonical pairs already inserted
		edges := make(core.EdgeList, 0, n)

		// 2) Per source vertex: target, then bounded partner draws.
		for src := 0; src < n; src++ {
			target := 1 + rng.Intn(maxDegree-1)
			attempts := cfg.edgeAttempts
			for degree[src] < target && attempts > 0 {
				dst := rng.Intn(n)
				if dst == src {
					continue // redraw, budget untouched
				}
				attempts--

				e := core.NewEdge(src, dst)
				if degree[e.Src] >= maxDegree || degree[e.Dst] >= maxDegree {
					continue
				}
				if _, dup := seen[e]; dup {
					continue
				}
				seen[e] = struct{}{}
				edges = append(edges, e)
				degree[e.Src]++
				degree[e.Dst]++
			}
		}

		// 3) Canonical order for callers and golden tests.
		return Topology{Vertices: n, Edges: edges.Sorted()}, nil
	}
}
