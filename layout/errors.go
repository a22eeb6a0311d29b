// SPDX-License-Identifier: MIT
// Package: glayout/layout
//
// errors.go - sentinel errors for the layout solver.
//
// Every sentinel is classified under the core taxonomy; callers may branch
// on the sentinel itself or on its class.

package layout

import "github.com/katalvlaran/glayout/core"

var (
	// ErrNilPositions indicates that Relax was given a nil matrix.
	ErrNilPositions = core.Classify("layout: nil position matrix", core.ErrInvalidParameter)

	// ErrInvalidIterations indicates a negative iteration count.
	ErrInvalidIterations = core.Classify("layout: iterations must be >= 0", core.ErrInvalidParameter)

	// ErrInvalidWeight indicates a non-finite center weight.
	ErrInvalidWeight = core.Classify("layout: weight must be finite", core.ErrInvalidParameter)

	// ErrEdgeOutOfRange indicates an edge endpoint outside [0, rows).
	// It is the core sentinel, re-exported for callers of this package.
	ErrEdgeOutOfRange = core.ErrEndpointOutOfRange

	// ErrCoincidentVertices indicates two distinct vertices at exactly the
	// same position while the DegeneracyError policy is active.
	ErrCoincidentVertices = core.Classify("layout: coincident vertices", core.ErrNumericDegeneracy)

	// ErrNonFinite indicates that an iteration produced NaN or ±Inf
	// (overflow, or non-finite input) while the DegeneracyError policy is active.
	ErrNonFinite = core.Classify("layout: non-finite coordinate", core.ErrNumericDegeneracy)
)
