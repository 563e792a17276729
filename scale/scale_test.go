package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seggo/frame"
)

func matrixOf(t *testing.T, rows [][]float64, names ...string) *frame.Matrix {
	t.Helper()
	f := frame.New(len(rows))
	for j, name := range names {
		col := frame.NewFloatColumn(len(rows))
		for i := range rows {
			col.Set(i, rows[i][j])
		}
		require.NoError(t, f.AddFloat(name, col))
	}
	m, err := f.Matrix(names...)
	require.NoError(t, err)
	return m
}

func TestStandardizeZeroMeanUnitVariance(t *testing.T) {
	m := matrixOf(t, [][]float64{
		{1, 100},
		{2, 200},
		{3, 300},
		{4, 400},
	}, "a", "b")

	out, stats := Standardize(m)

	for j := 0; j < out.Cols; j++ {
		require.False(t, stats[j].Degenerate)

		var sum, sumSq float64
		for i := 0; i < out.Rows; i++ {
			v := out.Row(i)[j]
			sum += v
			sumSq += v * v
		}
		mean := sum / float64(out.Rows)
		variance := (sumSq - float64(out.Rows)*mean*mean) / float64(out.Rows-1)

		assert.InDelta(t, 0.0, mean, 1e-9, "column %d mean", j)
		assert.InDelta(t, 1.0, variance, 1e-9, "column %d variance", j)
	}

	// Input untouched.
	assert.Equal(t, 1.0, m.Row(0)[0])
}

func TestStandardizeStats(t *testing.T) {
	m := matrixOf(t, [][]float64{{2}, {4}, {6}}, "a")

	_, stats := Standardize(m)
	require.Len(t, stats, 1)
	assert.Equal(t, "a", stats[0].Name)
	assert.InDelta(t, 4.0, stats[0].Mean, 1e-12)
	assert.InDelta(t, 2.0, stats[0].Std, 1e-12) // sample std of {2,4,6}
}

func TestStandardizeDegenerateColumn(t *testing.T) {
	m := matrixOf(t, [][]float64{
		{7, 1},
		{7, 2},
		{7, 3},
	}, "flat", "b")

	out, stats := Standardize(m)

	assert.True(t, stats[0].Degenerate)
	assert.False(t, stats[1].Degenerate)
	for i := 0; i < out.Rows; i++ {
		assert.Equal(t, 0.0, out.Row(i)[0])
		assert.False(t, math.IsNaN(out.Row(i)[1]))
	}
}

func TestStandardizeSingleRow(t *testing.T) {
	m := matrixOf(t, [][]float64{{5}}, "a")

	out, stats := Standardize(m)
	assert.True(t, stats[0].Degenerate)
	assert.Equal(t, 0.0, out.Row(0)[0])
}
