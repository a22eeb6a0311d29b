// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every sentinel is classified under the core taxonomy, so callers may test
// either errors.Is(err, matrix.ErrOutOfRange) or
// errors.Is(err, core.ErrIndexOutOfBounds). Algorithms never panic on
// user-triggered conditions.

package matrix

import "github.com/katalvlaran/glayout/core"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = core.Classify("matrix: dimensions must be > 0", core.ErrInvalidParameter)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row/SetRow) return this, never panic.
	ErrOutOfRange = core.Classify("matrix: index out of range", core.ErrIndexOutOfBounds)

	// ErrDimensionMismatch indicates incompatible lengths, e.g. a row of the
	// wrong width or an Assign buffer that does not match r*c.
	ErrDimensionMismatch = core.Classify("matrix: dimension mismatch", core.ErrInvalidParameter)

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy
	// requires finite values.
	ErrNaNInf = core.Classify("matrix: NaN or Inf encountered", core.ErrInvalidParameter)

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = core.Classify("matrix: nil receiver", core.ErrInvalidParameter)
)
