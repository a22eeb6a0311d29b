// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// The generator consumes draws from r, so sharing r across calls chains
// their outcomes. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEdgeAttempts overrides the per-vertex partner draw budget of
// DegreeBounded. Panics if k < 1.
func WithEdgeAttempts(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithEdgeAttempts(k<1)")
	}
	return func(c *builderConfig) {
		c.edgeAttempts = k
	}
}
