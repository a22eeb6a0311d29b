package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/glayout/builder"
	"github.com/katalvlaran/glayout/core"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// TestGenerateGraphGolden pins the exact output for fixed seeds.
func TestGenerateGraphGolden(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		n, m    int
		seed    int64
		want    core.EdgeList
		options []builder.BuilderOption
	}{
		{
			name: "n5_m3_seed42", n: 5, m: 3, seed: 42,
			want: core.EdgeList{{0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {2, 4}},
		},
		{
			name: "n8_m4_seed1", n: 8, m: 4, seed: 1,
			want: core.EdgeList{
				{0, 3}, {0, 4}, {0, 7}, {1, 4}, {1, 6}, {2, 3},
				{2, 4}, {2, 5}, {2, 6}, {3, 5}, {3, 7}, {5, 7},
			},
		},
		{
			name: "n2_m2_seed5", n: 2, m: 2, seed: 5,
			want: core.EdgeList{{0, 1}},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := builder.GenerateGraph(tc.n, tc.m, seeded(tc.seed))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			// Same draws through the composable form.
			top, err := builder.Build(builder.DegreeBounded(tc.n, tc.m), builder.WithSeed(tc.seed))
			require.NoError(t, err)
			require.Equal(t, tc.n, top.Vertices)
			require.Equal(t, tc.want, top.Edges)
		})
	}
}

// TestDegreeBoundedEdgeAttempts checks that a larger budget changes the draw
// sequence deterministically.
func TestDegreeBoundedEdgeAttempts(t *testing.T) {
	t.Parallel()

	top, err := builder.Build(builder.DegreeBounded(6, 3), builder.WithSeed(3), builder.WithEdgeAttempts(10))
	require.NoError(t, err)
	require.Equal(t, core.EdgeList{{0, 1}, {0, 2}, {0, 5}, {2, 3}, {2, 4}, {3, 5}, {4, 5}}, top.Edges)

	require.Panics(t, func() { builder.WithEdgeAttempts(0) })
	require.Panics(t, func() { builder.WithRand(nil) })
}

// TestGenerateGraphRejects covers invalid parameter classes.
func TestGenerateGraphRejects(t *testing.T) {
	t.Parallel()

	_, err := builder.GenerateGraph(1, 3, seeded(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	require.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = builder.GenerateGraph(0, 3, seeded(1))
	require.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = builder.GenerateGraph(5, 1, seeded(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.GenerateGraph(5, 3, nil)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	require.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = builder.Build(builder.DegreeBounded(5, 3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestGenerateGraphSharedRandChains checks that one rng threaded through two
// calls differs from two fresh rngs, i.e. state is consumed, not reset.
func TestGenerateGraphSharedRandChains(t *testing.T) {
	t.Parallel()

	shared := seeded(42)
	first, err := builder.GenerateGraph(5, 3, shared)
	require.NoError(t, err)
	second, err := builder.GenerateGraph(5, 3, shared)
	require.NoError(t, err)

	fresh, err := builder.GenerateGraph(5, 3, seeded(42))
	require.NoError(t, err)
	require.Equal(t, fresh, first)

	replay := seeded(42)
	_, _ = builder.GenerateGraph(5, 3, replay)
	again, err := builder.GenerateGraph(5, 3, replay)
	require.NoError(t, err)
	require.Equal(t, second, again)
}

// TestGenerateGraphProperties checks shape and degree invariants over
// random parameters with gopter.
func TestGenerateGraphProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("simple graph within degree bound", prop.ForAll(
		func(n, m int, seed int64) bool {
			edges, err := builder.GenerateGraph(n, m, seeded(seed))
			if err != nil {
				return false
			}
			if edges.Validate(n) != nil {
				return false
			}
			for _, d := range edges.Degrees(n) {
				if d > m {
					return false
				}
			}
			for i := 1; i < len(edges); i++ {
				a, b := edges[i-1], edges[i]
				if a.Src > b.Src || (a.Src == b.Src && a.Dst >= b.Dst) {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 60),
		gen.IntRange(2, 8),
		gen.Int64(),
	))

	properties.Property("same seed same graph", prop.ForAll(
		func(n, m int, seed int64) bool {
			a, errA := builder.GenerateGraph(n, m, seeded(seed))
			b, errB := builder.GenerateGraph(n, m, seeded(seed))
			if errA != nil || errB != nil || len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 40),
		gen.IntRange(2, 6),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
