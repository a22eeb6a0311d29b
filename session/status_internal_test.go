package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/glayout/core"
	"github.com/katalvlaran/glayout/internal/metrics"
	"github.com/katalvlaran/glayout/layout"
	"github.com/stretchr/testify/require"
)

func TestLayoutStatus(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, metrics.StatusSuccess},
		{fmt.Errorf("x: %w", context.Canceled), metrics.StatusCancelled},
		{context.DeadlineExceeded, metrics.StatusCancelled},
		{fmt.Errorf("x: %w", layout.ErrCoincidentVertices), metrics.StatusDegenerate},
		{layout.ErrEdgeOutOfRange, metrics.StatusInvalid},
		{core.ErrIndexOutOfBounds, metrics.StatusError},
		{errors.New("boom"), metrics.StatusError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, layoutStatus(tc.err), "%v", tc.err)
	}
}

func TestGridCols(t *testing.T) {
	for n, want := range map[int]int{1: 1, 4: 2, 6: 2, 7: 1, 9: 3, 12: 3, 16: 4, 0: 1} {
		require.Equal(t, want, gridCols(n), "n=%d", n)
	}
}
