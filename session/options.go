// SPDX-License-Identifier: MIT
// Package: glayout/session
//
// options.go - functional options for New. Constructors panic on
// meaningless inputs.

package session

import (
	"math/rand"

	"github.com/katalvlaran/glayout/internal/metrics"
	"github.com/katalvlaran/glayout/layout"
	"github.com/katalvlaran/glayout/matrix"
)

// Option customizes a Session at construction time.
type Option func(*Session)

// WithSeed seeds the session random source deterministically.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects the session random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("session: WithRand(nil)")
	}
	return func(s *Session) { s.rng = r }
}

// WithMetrics records generation and layout runs into reg. Panics on nil.
func WithMetrics(reg *metrics.Registry) Option {
	if reg == nil {
		panic("session: WithMetrics(nil)")
	}
	return func(s *Session) { s.metrics = reg }
}

// WithSolverOptions forwards opts to every layout.RelaxContext call.
func WithSolverOptions(opts ...layout.Option) Option {
	return func(s *Session) { s.solverOpts = append(s.solverOpts, opts...) }
}

// WithMatrixOptions forwards opts to every position matrix the session
// samples, e.g. matrix.WithNoValidateNaNInf together with
// layout.DegeneracyPropagate.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(s *Session) { s.matrixOpts = append(s.matrixOpts, opts...) }
}

// WithGenerator replaces the edge generator; name labels logs and metrics.
// Panics on a nil generator or an empty name.
func WithGenerator(name string, gen Generator) Option {
	if gen == nil || name == "" {
		panic("session: WithGenerator(empty name or nil)")
	}
	return func(s *Session) { s.genName, s.gen = name, gen }
}
