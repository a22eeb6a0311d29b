// SPDX-License-Identifier: MIT
// Package: glayout/layout
//
// vector.go - row views over flat row-major buffers and small vector helpers.
// Arithmetic goes through gonum/floats; the helpers only slice and check.

package layout

import (
	"gonum.org/v1/gonum/floats"
)

// rowOf returns row i of a flat n×d buffer without copying.
// The capacity is clipped so an append can never spill into row i+1.
func rowOf(buf []float64, i, d int) []float64 {
	return buf[i*d : (i+1)*d : (i+1)*d]
}

// distance is the Euclidean distance between p and q.
func distance(p, q []float64) float64 {
	return floats.Distance(p, q, 2)
}

// norm is the Euclidean length of p.
func norm(p []float64) float64 {
	return floats.Norm(p, 2)
}

// allFinite reports whether every component of v is finite.
func allFinite(v []float64) bool {
	for _, x := range v {
		if !finite(x) {
			return false
		}
	}
	return true
}
