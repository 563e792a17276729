package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seggo/frame"
)

func TestSummarize(t *testing.T) {
	assignments := []int{0, 1, 0, 1, 0}
	age := frame.FloatColumnOf(20, 30, 40, 50, 60)

	sums, err := Summarize(assignments, 2, AuxColumn{Name: "age", Col: age})
	require.NoError(t, err)
	require.Len(t, sums, 2)

	assert.Equal(t, 1, sums[0].Cluster)
	assert.Equal(t, 3, sums[0].Count)
	assert.InDelta(t, 40.0, sums[0].Means["age"], 1e-12) // (20+40+60)/3

	assert.Equal(t, 2, sums[1].Cluster)
	assert.Equal(t, 2, sums[1].Count)
	assert.InDelta(t, 40.0, sums[1].Means["age"], 1e-12) // (30+50)/2

	assert.Equal(t, len(assignments), sums[0].Count+sums[1].Count)
}

func TestSummarizeExcludesMissing(t *testing.T) {
	assignments := []int{0, 0, 0}
	age := frame.FloatColumnOf(10, 0, 20)
	age.SetMissing(1)

	sums, err := Summarize(assignments, 1, AuxColumn{Name: "age", Col: age})
	require.NoError(t, err)

	assert.Equal(t, 3, sums[0].Count) // missing rows are still members
	assert.Equal(t, 2, sums[0].Observed["age"])
	assert.InDelta(t, 15.0, sums[0].Means["age"], 1e-12)
}

func TestSummarizeAllMissingColumn(t *testing.T) {
	assignments := []int{0, 0}
	col := frame.NewFloatColumn(2)

	sums, err := Summarize(assignments, 1, AuxColumn{Name: "x", Col: col})
	require.NoError(t, err)

	assert.Equal(t, 0, sums[0].Observed["x"])
	assert.True(t, math.IsNaN(sums[0].Means["x"]))
}

func TestSummarizeEmptyCluster(t *testing.T) {
	assignments := []int{0, 0}

	sums, err := Summarize(assignments, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, sums[0].Count)
	assert.Equal(t, 0, sums[1].Count)
}

func TestSummarizeValidation(t *testing.T) {
	_, err := Summarize([]int{0}, 0)
	assert.Error(t, err)

	_, err = Summarize([]int{2}, 2)
	assert.Error(t, err)

	_, err = Summarize([]int{0, 0}, 1, AuxColumn{Name: "x", Col: frame.FloatColumnOf(1)})
	assert.ErrorIs(t, err, frame.ErrLengthMismatch)
}
