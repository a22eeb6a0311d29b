// SPDX-License-Identifier: MIT
// Package: glayout/layout
//
// config.go - solver configuration and deterministic defaults.
//
// Deterministic defaults:
//   • repel   = DefaultRepelWeight   (0.01)
//   • spread  = DefaultSpreadWeight  (1.0)
//   • ideal   = DefaultIdealDistance (1.0)
//   • workers = 1                    (sequential)
//   • policy  = DegeneracyError

package layout

const (
	// DefaultRepelWeight scales the inverse-distance repulsion.
	DefaultRepelWeight = 0.01
	// DefaultSpreadWeight is the total spring weight of one vertex, split
	// evenly over its neighbours.
	DefaultSpreadWeight = 1.0
	// DefaultIdealDistance is the edge length at which the spring is at rest.
	DefaultIdealDistance = 1.0
	// SigDistance is the norm below which a vertex counts as centred and
	// receives no centering pull.
	SigDistance = 1e-5
)

// DegeneracyPolicy selects how Relax treats two distinct vertices that
// occupy exactly the same position.
type DegeneracyPolicy int

const (
	// DegeneracyError aborts with ErrCoincidentVertices and leaves the
	// caller's matrix untouched. Non-finite results abort with ErrNonFinite.
	DegeneracyError DegeneracyPolicy = iota
	// DegeneracyPropagate evaluates the forces anyway; the division by zero
	// yields Inf/NaN that propagates into the positions. The final write
	// still obeys the matrix numeric policy (see matrix.WithNoValidateNaNInf).
	DegeneracyPropagate
)

// String names the policy for logs and flags.
func (p DegeneracyPolicy) String() string {
	switch p {
	case DegeneracyError:
		return "error"
	case DegeneracyPropagate:
		return "propagate"
	default:
		return "unknown"
	}
}

// solverConfig aggregates all solver knobs. Passed by value.
type solverConfig struct {
	repel   float64
	spread  float64
	ideal   float64
	workers int
	policy  DegeneracyPolicy
}

// newSolverConfig applies opts over the defaults, last wins.
func newSolverConfig(opts ...Option) solverConfig {
	cfg := solverConfig{
		repel:   DefaultRepelWeight,
		spread:  DefaultSpreadWeight,
		ideal:   DefaultIdealDistance,
		workers: 1,
		policy:  DegeneracyError,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
