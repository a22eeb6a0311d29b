package layout_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/glayout/builder"
	"github.com/katalvlaran/glayout/core"
	"github.com/katalvlaran/glayout/internal/ctxlog"
	"github.com/katalvlaran/glayout/layout"
	"github.com/katalvlaran/glayout/matrix"
	"github.com/stretchr/testify/require"
)

const goldenTolerance = 1e-9

func seeded(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// goldenInputs returns the seed-42 graph and positions used by the golden tests.
func goldenInputs(t *testing.T) (*matrix.Dense, core.EdgeList) {
	t.Helper()
	edges, err := builder.GenerateGraph(5, 3, seeded(42))
	require.NoError(t, err)
	pos, err := builder.SamplePositions(5, 2, seeded(42))
	require.NoError(t, err)
	return pos, edges
}

func requireRowsApprox(t *testing.T, want, got [][]float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, goldenTolerance)); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}
}

// TestRelaxGolden pins one and three iterations on the seed-42 inputs.
func TestRelaxGolden(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		iterations int
		want       [][]float64
	}{
		{"one", 1, [][]float64{
			{0.2524233800656391, -0.2231668252689785},
			{0.433004570061709, -0.06733029882789862},
			{-0.2829644844240392, 0.3163116460186052},
			{1.1186534020813563, 0.6250907062002338},
			{0.4716960814122081, 0.8510313994338591},
		}},
		{"three", 3, [][]float64{
			{0.14536469810534025, -0.19881835647879922},
			{0.3695622754433327, -0.09686539558830132},
			{-0.3562605520478903, 0.26528652324714347},
			{0.983095914338681, 0.5211375416348775},
			{0.3983214666172831, 0.7394497014057569},
		}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pos, edges := goldenInputs(t)
			require.NoError(t, layout.Relax(pos, edges, tc.iterations, 0.1))
			requireRowsApprox(t, tc.want, pos.ToRows())
		})
	}
}

// TestRelaxChained checks that 1+2 iterations equal 3 in one call.
func TestRelaxChained(t *testing.T) {
	t.Parallel()

	a, edges := goldenInputs(t)
	require.NoError(t, layout.Relax(a, edges, 3, 0.1))

	b, _ := goldenInputs(t)
	require.NoError(t, layout.Relax(b, edges, 1, 0.1))
	require.NoError(t, layout.Relax(b, edges, 2, 0.1))

	require.Equal(t, a.Snapshot(), b.Snapshot())
}

// TestRelaxZeroIterations is a no-op, shape and values preserved.
func TestRelaxZeroIterations(t *testing.T) {
	t.Parallel()

	pos, edges := goldenInputs(t)
	before := pos.Snapshot()
	require.NoError(t, layout.Relax(pos, edges, 0, 0.1))
	require.Equal(t, before, pos.Snapshot())
}

// TestRelaxValidation covers every InvalidParameter path; the matrix must
// stay untouched each time.
func TestRelaxValidation(t *testing.T) {
	t.Parallel()

	pos, edges := goldenInputs(t)
	before := pos.Snapshot()

	err := layout.Relax(nil, edges, 1, 0.1)
	require.ErrorIs(t, err, layout.ErrNilPositions)

	err = layout.Relax(pos, edges, -1, 0.1)
	require.ErrorIs(t, err, layout.ErrInvalidIterations)
	require.ErrorIs(t, err, core.ErrInvalidParameter)

	err = layout.Relax(pos, edges, 1, math.NaN())
	require.ErrorIs(t, err, layout.ErrInvalidWeight)

	err = layout.Relax(pos, core.EdgeList{{0, 5}}, 1, 0.1)
	require.ErrorIs(t, err, layout.ErrEdgeOutOfRange)
	require.ErrorIs(t, err, core.ErrInvalidParameter)

	err = layout.Relax(pos, core.EdgeList{{2, 2}}, 1, 0.1)
	require.ErrorIs(t, err, core.ErrSelfLoop)

	err = layout.Relax(pos, core.EdgeList{{0, 1}, {1, 0}}, 1, 0.1)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	require.Equal(t, before, pos.Snapshot())
}

// TestRelaxCentering checks the pull toward the origin with no other force.
func TestRelaxCentering(t *testing.T) {
	t.Parallel()

	pos, err := matrix.NewDenseFrom([][]float64{{3, 4}})
	require.NoError(t, err)

	prev := 5.0
	for k := 1; k <= 10; k++ {
		require.NoError(t, layout.Relax(pos, nil, 1, 0.1))
		row, err := pos.Row(0)
		require.NoError(t, err)
		r := math.Hypot(row[0], row[1])
		require.Less(t, r, prev)
		require.InDelta(t, 5.0-0.1*float64(k), r, 1e-12)
		prev = r
	}

	// A vertex within SigDistance of the origin is left alone.
	still, err := matrix.NewDenseFrom([][]float64{{1e-6, 0}})
	require.NoError(t, err)
	require.NoError(t, layout.Relax(still, nil, 5, 0.1))
	require.Equal(t, []float64{1e-6, 0}, still.Snapshot())
}

// TestRelaxSpringSign checks attraction beyond the ideal length, repulsion
// below it and rest at it.
func TestRelaxSpringSign(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		start float64
		check func(t *testing.T, after float64)
	}{
		{"stretched", 2, func(t *testing.T, after float64) {
			require.InDelta(t, 2-2*math.Log10(2), after, 1e-12)
		}},
		{"compressed", 0.5, func(t *testing.T, after float64) {
			require.InDelta(t, 0.5+2*math.Log10(2), after, 1e-12)
		}},
		{"rest", 1, func(t *testing.T, after float64) {
			require.InDelta(t, 1.0, after, 1e-15)
		}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pos, err := matrix.NewDenseFrom([][]float64{{0, 0}, {tc.start, 0}})
			require.NoError(t, err)
			require.NoError(t, layout.Relax(pos, core.EdgeList{{0, 1}}, 1, 0, layout.WithRepelWeight(0)))

			a, _ := pos.Row(0)
			b, _ := pos.Row(1)
			require.Zero(t, a[1])
			require.Zero(t, b[1])
			tc.check(t, b[0]-a[0])
		})
	}
}

// TestRelaxRepulsionOnly checks that isolated vertices move apart.
func TestRelaxRepulsionOnly(t *testing.T) {
	t.Parallel()

	pos, err := matrix.NewDenseFrom([][]float64{{0, 0}, {0.1, 0}})
	require.NoError(t, err)
	require.NoError(t, layout.Relax(pos, nil, 1, 0))

	// Each vertex moves 0.01/0.1² · 0.1 = 0.1 away from the other.
	require.InDeltaSlice(t, []float64{-0.1, 0, 0.2, 0}, pos.Snapshot(), 1e-12)
}

// TestRelaxCoincidentError checks the default degeneracy policy.
func TestRelaxCoincidentError(t *testing.T) {
	t.Parallel()

	pos, err := matrix.NewDenseFrom([][]float64{{0.5, 0.5}, {0.2, 0.1}, {0.5, 0.5}})
	require.NoError(t, err)
	before := pos.Snapshot()

	err = layout.Relax(pos, core.EdgeList{{0, 1}}, 2, 0.1)
	require.ErrorIs(t, err, layout.ErrCoincidentVertices)
	require.ErrorIs(t, err, core.ErrNumericDegeneracy)
	require.Contains(t, err.Error(), "iteration 0: vertices 0 and 2")
	require.Equal(t, before, pos.Snapshot())
}

// TestRelaxCoincidentPropagate checks IEEE propagation and the commit guard.
func TestRelaxCoincidentPropagate(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0.5, 0.5}, {0.5, 0.5}}

	loose, err := matrix.NewDenseFrom(rows, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, layout.Relax(loose, nil, 1, 0.1, layout.WithDegeneracyPolicy(layout.DegeneracyPropagate)))
	for _, v := range loose.Snapshot() {
		require.True(t, math.IsNaN(v))
	}

	strict, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	err = layout.Relax(strict, nil, 1, 0.1, layout.WithDegeneracyPolicy(layout.DegeneracyPropagate))
	require.ErrorIs(t, err, core.ErrNumericDegeneracy)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, strict.Snapshot())
}

// TestRelaxWorkersBitIdentical checks that the fan-out does not change results.
func TestRelaxWorkersBitIdentical(t *testing.T) {
	t.Parallel()

	edges, err := builder.GenerateGraph(40, 4, seeded(3))
	require.NoError(t, err)

	run := func(opts ...layout.Option) []float64 {
		pos, err := builder.SamplePositions(40, 3, seeded(4))
		require.NoError(t, err)
		require.NoError(t, layout.Relax(pos, edges, 5, 0.1, opts...))
		return pos.Snapshot()
	}

	want := run()
	for _, k := range []int{2, 4, 7, 40, 64} {
		require.Equal(t, want, run(layout.WithWorkers(k)), "workers=%d", k)
	}
}

// TestRelaxCancelled leaves the matrix untouched on cancellation.
func TestRelaxCancelled(t *testing.T) {
	t.Parallel()

	pos, edges := goldenInputs(t)
	before := pos.Snapshot()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := layout.RelaxContext(ctx, pos, edges, 10, 0.1)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, before, pos.Snapshot())
}

// TestRelaxLogsIterations checks one debug record per iteration.
func TestRelaxLogsIterations(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	pos, edges := goldenInputs(t)
	require.NoError(t, layout.RelaxContext(ctx, pos, edges, 3, 0.1))
	require.Equal(t, 3, strings.Count(buf.String(), `msg="layout iteration"`))
	require.Contains(t, buf.String(), "iteration=3 iterations=3")
}

// TestOptionPanics checks validating option constructors.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { layout.WithRepelWeight(-1) })
	require.Panics(t, func() { layout.WithSpreadWeight(math.Inf(1)) })
	require.Panics(t, func() { layout.WithIdealDistance(0) })
	require.Panics(t, func() { layout.WithWorkers(0) })
	require.Panics(t, func() { layout.WithDegeneracyPolicy(layout.DegeneracyPolicy(9)) })
	require.Equal(t, "propagate", layout.DegeneracyPropagate.String())
}
