// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng          = nil              (stochastic constructors refuse to run)
//   • edgeAttempts = MaxEdgeAttempts  (3 partner draws per source vertex)

package builder

import "math/rand"

// MaxEdgeAttempts is the default number of partner draws spent per source
// vertex by the degree-bounded generator. Self-draws are not counted.
const MaxEdgeAttempts = 3

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Partner draws per source vertex (DegreeBounded).
	edgeAttempts int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:          nil,
		edgeAttempts: MaxEdgeAttempts,
	}

	// Last-wins semantics.
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
