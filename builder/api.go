// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: Build(con, opts...). Resolves cfg, runs con once.
//   • Public factories are declared in impl_*.go next to their algorithm.
//   • Functional options resolve into an immutable builderConfig.
//   • Determinism: same inputs/options/seed ⇒ identical edge lists.
//   • Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/glayout/core"
)

// Topology is the output of a Constructor: the vertex count and a simple
// undirected edge list over [0, Vertices), sorted by (Src, Dst).
type Topology struct {
	Vertices int
	Edges    core.EdgeList
}

// Constructor produces a Topology using the resolved builderConfig.
// Constructors MUST validate parameters early, return sentinel errors
// (no panics) and stay deterministic for the same config.
type Constructor func(cfg builderConfig) (Topology, error)

// Build resolves the builder configuration from opts and runs con.
// Constructor errors are wrapped with "Build: %w".
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Whatever the constructor returns (ErrTooFewVertices, ErrNeedRandSource, ...).
//
// Complexity: O(len(opts)) plus the constructor's own cost.
func Build(con Constructor, opts ...BuilderOption) (Topology, error) {
	if con == nil {
		return Topology{}, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	top, err := con(cfg)
	if err != nil {
		return Topology{}, fmt.Errorf("Build: %w", err)
	}

	return top, nil
}
