// SPDX-License-Identifier: MIT
// Package: glayout/builder
//
// positions.go - initial position sampling for layout runs.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/glayout/matrix"
)

const methodSamplePositions = "SamplePositions"

// SamplePositions returns an n×d matrix whose coordinates are independent
// draws of rng.Float64(), i.e. uniform on [0, 1).
//
// Draw order is row-major: (0,0), (0,1), ..., (1,0), ... so a fixed seed
// yields the same matrix bit for bit. Values are written through RowView;
// Float64 never returns NaN/Inf, so the numeric policy holds trivially.
//
// Errors:
//   - ErrTooFewVertices when n < 1 or d < 1.
//   - ErrNeedRandSource when rng is nil.
//
// Complexity: O(n·d) time and space.
func SamplePositions(n, d int, rng *rand.Rand, opts ...matrix.Option) (*matrix.Dense, error) {
	if n < 1 || d < 1 {
		return nil, fmt.Errorf("%s: n=%d d=%d: %w", methodSamplePositions, n, d, ErrTooFewVertices)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodSamplePositions, ErrNeedRandSource)
	}

	pos, err := matrix.NewDense(n, d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSamplePositions, err)
	}
	for i := 0; i < n; i++ {
		row := pos.RowView(i)
		for j := range row {
			row[j] = rng.Float64()
		}
	}

	return pos, nil
}
