// SPDX-License-Identifier: MIT
// Package: glayout/layout
//
// options.go - functional options for Relax.
//
// Option constructors VALIDATE and PANIC on meaningless inputs; Relax
// itself never panics.

package layout

import "math"

// Option customizes one Relax call.
type Option func(*solverConfig)

// WithRepelWeight sets the repulsion weight. Panics unless w is finite and ≥ 0.
func WithRepelWeight(w float64) Option {
	if !finite(w) || w < 0 {
		panic("layout: WithRepelWeight(w<0 or non-finite)")
	}
	return func(c *solverConfig) { c.repel = w }
}

// WithSpreadWeight sets the per-vertex spring weight. Panics unless w is finite and ≥ 0.
func WithSpreadWeight(w float64) Option {
	if !finite(w) || w < 0 {
		panic("layout: WithSpreadWeight(w<0 or non-finite)")
	}
	return func(c *solverConfig) { c.spread = w }
}

// WithIdealDistance sets the spring rest length. Panics unless d is finite and > 0.
func WithIdealDistance(d float64) Option {
	if !finite(d) || d <= 0 {
		panic("layout: WithIdealDistance(d<=0 or non-finite)")
	}
	return func(c *solverConfig) { c.ideal = d }
}

// WithWorkers fans the rows of each iteration out over k goroutines.
// k is capped at the row count. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("layout: WithWorkers(k<1)")
	}
	return func(c *solverConfig) { c.workers = k }
}

// WithDegeneracyPolicy selects the coincident-vertex behavior.
// Panics on an unknown policy.
func WithDegeneracyPolicy(p DegeneracyPolicy) Option {
	if p != DegeneracyError && p != DegeneracyPropagate {
		panic("layout: WithDegeneracyPolicy(unknown)")
	}
	return func(c *solverConfig) { c.policy = p }
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
