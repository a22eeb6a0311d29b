// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX), or errors.Is(err, core.ErrInvalidParameter)
//     to test the taxonomy class shared by every sentinel below.
//   • Implementations attach method context with %w.
//   • Algorithms never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "github.com/katalvlaran/glayout/core"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, maxDegree)
// is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = core.Classify("builder: parameter too small", core.ErrInvalidParameter)

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] (RandomSparse).
var ErrInvalidProbability = core.Classify("builder: probability out of range", core.ErrInvalidParameter)

// ErrNeedRandSource indicates that a stochastic operation was given no
// *rand.Rand (nil argument, or Build without WithSeed/WithRand).
var ErrNeedRandSource = core.Classify("builder: rng is required", core.ErrInvalidParameter)

// ErrConstructFailed indicates that Build received no usable constructor.
var ErrConstructFailed = core.Classify("builder: construction failed", core.ErrInvalidParameter)
