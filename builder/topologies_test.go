package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/glayout/builder"
	"github.com/katalvlaran/glayout/core"
	"github.com/stretchr/testify/require"
)

// TestTopologies table-checks every deterministic constructor.
func TestTopologies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		want     core.EdgeList
	}{
		{"cycle4", builder.Cycle(4), 4, core.EdgeList{{0, 1}, {0, 3}, {1, 2}, {2, 3}}},
		{"path3", builder.Path(3), 3, core.EdgeList{{0, 1}, {1, 2}}},
		{"star4", builder.Star(4), 4, core.EdgeList{{0, 1}, {0, 2}, {0, 3}}},
		{"complete3", builder.Complete(3), 3, core.EdgeList{{0, 1}, {0, 2}, {1, 2}}},
		{"complete1", builder.Complete(1), 1, nil},
		{"grid2x3", builder.Grid(2, 3), 6, core.EdgeList{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}},
		{"sparse_p1", builder.RandomSparse(3, 1), 3, core.EdgeList{{0, 1}, {0, 2}, {1, 2}}},
		{"sparse_p0", builder.RandomSparse(3, 0), 3, nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			top, err := builder.Build(tc.con)
			require.NoError(t, err)
			require.Equal(t, tc.vertices, top.Vertices)
			require.Len(t, top.Edges, len(tc.want))
			if len(tc.want) > 0 {
				require.Equal(t, tc.want, top.Edges)
			}
			require.NoError(t, top.Edges.Validate(top.Vertices))
		})
	}
}

// TestRandomSparseSeeded pins G(5, 0.5) for seed 7.
func TestRandomSparseSeeded(t *testing.T) {
	t.Parallel()

	top, err := builder.Build(builder.RandomSparse(5, 0.5), builder.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, core.EdgeList{{0, 2}, {0, 3}, {1, 3}, {1, 4}, {2, 3}, {2, 4}}, top.Edges)
}

// TestTopologyRejects checks minimum sizes and probability bounds.
func TestTopologyRejects(t *testing.T) {
	t.Parallel()

	for _, con := range []builder.Constructor{
		builder.Cycle(2), builder.Path(1), builder.Star(1),
		builder.Complete(0), builder.Grid(0, 3), builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.Build(con)
		require.ErrorIs(t, err, builder.ErrTooFewVertices)
		require.ErrorIs(t, err, core.ErrInvalidParameter)
	}

	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := builder.Build(builder.RandomSparse(4, p), builder.WithSeed(1))
		require.ErrorIs(t, err, builder.ErrInvalidProbability)
	}

	_, err := builder.Build(builder.RandomSparse(4, 0.3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}
