package builder_test

import (
	"testing"

	"github.com/katalvlaran/glayout/builder"
	"github.com/katalvlaran/glayout/core"
	"github.com/katalvlaran/glayout/matrix"
	"github.com/stretchr/testify/require"
)

// TestSamplePositionsGolden pins the row-major draw order for seed 42.
func TestSamplePositionsGolden(t *testing.T) {
	t.Parallel()

	pos, err := builder.SamplePositions(5, 2, seeded(42))
	require.NoError(t, err)

	want := [][]float64{
		{0.3730283610466326, 0.06600049679351791},
		{0.604093851558642, 0.20881870305465913},
		{0.043818458599374305, 0.38319329992238566},
		{0.8128771359243787, 0.38444584994446157},
		{0.3830446530497163, 0.6463763506057989},
	}
	require.Equal(t, want, pos.ToRows())
	require.True(t, pos.ValidatesNaNInf())
}

// TestSamplePositionsRange checks shape and the [0,1) bound.
func TestSamplePositionsRange(t *testing.T) {
	t.Parallel()

	pos, err := builder.SamplePositions(50, 3, seeded(9))
	require.NoError(t, err)
	r, c := pos.Shape()
	require.Equal(t, 50, r)
	require.Equal(t, 3, c)
	pos.Do(func(_, _ int, v float64) bool {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
		return true
	})
}

// TestSamplePositionsOptions forwards the numeric policy to the matrix.
func TestSamplePositionsOptions(t *testing.T) {
	t.Parallel()

	pos, err := builder.SamplePositions(2, 2, seeded(1), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.False(t, pos.ValidatesNaNInf())
}

// TestSamplePositionsRejects covers invalid sizes and a missing rng.
func TestSamplePositionsRejects(t *testing.T) {
	t.Parallel()

	_, err := builder.SamplePositions(0, 2, seeded(1))
	require.ErrorIs(t, err, core.ErrInvalidParameter)
	_, err = builder.SamplePositions(2, 0, seeded(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.SamplePositions(2, 2, nil)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}
