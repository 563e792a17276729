package seggo

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seggo/frame"
	"github.com/hupe1980/seggo/impute"
	"github.com/hupe1980/seggo/kmeans"
)

// surveyFrame builds a synthetic 100-record survey: 3 interest features
// drawn around 3 well-separated centers, 4 cohorts, age missing in 10% of
// rows, gender missing in 5%.
func surveyFrame(t *testing.T, seed int64) *frame.Frame {
	t.Helper()
	const n = 100
	rng := rand.New(rand.NewSource(seed))

	centers := [][3]float64{{0, 0, 0}, {10, 0, 5}, {0, 10, 10}}
	cohorts := []string{"2006", "2007", "2008", "2009"}

	f := frame.New(n)
	age := frame.NewFloatColumn(n)
	gender := frame.NewStringColumn(n)
	cohort := frame.NewStringColumn(n)
	friends := frame.NewFloatColumn(n)
	feats := [3]*frame.FloatColumn{
		frame.NewFloatColumn(n),
		frame.NewFloatColumn(n),
		frame.NewFloatColumn(n),
	}

	for i := 0; i < n; i++ {
		center := centers[i%3]
		for j := 0; j < 3; j++ {
			feats[j].Set(i, center[j]+rng.NormFloat64())
		}
		cohort.Set(i, cohorts[i%4])
		if i%10 != 0 { // 10% missing age
			age.Set(i, 14+rng.Float64()*4)
		}
		if i%20 != 0 { // 5% missing gender
			if rng.Float64() < 0.6 {
				gender.Set(i, "F")
			} else {
				gender.Set(i, "M")
			}
		}
		friends.Set(i, float64(rng.Intn(100)))
	}

	require.NoError(t, f.AddFloat("age", age))
	require.NoError(t, f.AddString("gender", gender))
	require.NoError(t, f.AddString("gradyear", cohort))
	require.NoError(t, f.AddFloat("friends", friends))
	for j := 0; j < 3; j++ {
		require.NoError(t, f.AddFloat(fmt.Sprintf("interest%d", j+1), feats[j]))
	}
	return f
}

func buildPipeline(t *testing.T, optFns ...Option) *Pipeline {
	t.Helper()
	p, err := New().
		Features("interest1", "interest2", "interest3").
		Age("age", 13, 20).
		Gender("gender", "F").
		Cohort("gradyear").
		FriendCount("friends").
		K(3).
		Seed(42).
		Build(optFns...)
	require.NoError(t, err)
	return p
}

func TestPipelineEndToEnd(t *testing.T) {
	ctx := context.Background()
	f := surveyFrame(t, 1)

	res, err := buildPipeline(t).Run(ctx, f)
	require.NoError(t, err)

	// No missing entries remain in imputed age.
	imputed, err := f.Float("age_imputed")
	require.NoError(t, err)
	assert.Equal(t, 0, imputed.MissingCount())

	// Exactly 3 clusters, sizes summing to 100.
	assert.Equal(t, 3, res.K)
	require.Len(t, res.Counts, 3)
	total := 0
	for _, c := range res.Counts {
		total += c
	}
	assert.Equal(t, 100, total)

	// Centroid dimensionality equals the feature count.
	assert.Equal(t, 3, res.Centroids.Cols)
	assert.Equal(t, 3, res.Centroids.Rows)

	// Every record carries a 1-based assignment.
	require.Len(t, res.Assignments, 100)
	for _, c := range res.Assignments {
		assert.GreaterOrEqual(t, c, 1)
		assert.LessOrEqual(t, c, 3)
	}

	// Derived columns were appended.
	assert.Equal(t, []string{"age_imputed", "gender_F", "gender_missing", ColCluster}, res.Derived)
	for _, name := range res.Derived {
		assert.True(t, f.Has(name), name)
	}

	require.Len(t, res.Clusters, 3)
	assert.NotEmpty(t, res.RunID)
}

func TestPipelineDeterministicForSeed(t *testing.T) {
	ctx := context.Background()

	a, err := buildPipeline(t).Run(ctx, surveyFrame(t, 1))
	require.NoError(t, err)
	b, err := buildPipeline(t).Run(ctx, surveyFrame(t, 1))
	require.NoError(t, err)

	assert.Equal(t, a.Assignments, b.Assignments)
	assert.Equal(t, a.Centroids.Data, b.Centroids.Data)
	assert.Equal(t, a.Counts, b.Counts)
}

func TestPipelineParallelMatchesSequential(t *testing.T) {
	ctx := context.Background()

	seq, err := buildPipeline(t).Run(ctx, surveyFrame(t, 1))
	require.NoError(t, err)
	par, err := buildPipeline(t, WithParallelism(4)).Run(ctx, surveyFrame(t, 1))
	require.NoError(t, err)

	assert.Equal(t, seq.Assignments, par.Assignments)
	assert.Equal(t, seq.Centroids.Data, par.Centroids.Data)
}

func TestPipelineEmptyCohort(t *testing.T) {
	ctx := context.Background()

	f := frame.New(4)
	age := frame.FloatColumnOf(15, 16, 0, 0)
	age.SetMissing(2)
	age.SetMissing(3)
	require.NoError(t, f.AddFloat("age", age))
	require.NoError(t, f.AddString("gradyear", frame.StringColumnOf("2008", "2008", "2009", "2009")))
	require.NoError(t, f.AddFloat("x", frame.FloatColumnOf(1, 2, 3, 4)))

	p, err := New().
		Features("x").
		Age("age", 13, 20).
		Cohort("gradyear").
		K(2).
		Build()
	require.NoError(t, err)

	_, err = p.Run(ctx, f)
	var eg *impute.ErrEmptyGroup
	require.ErrorAs(t, err, &eg)
	assert.Equal(t, "2009", eg.Group)
}

func TestPipelineInvalidClusterCount(t *testing.T) {
	ctx := context.Background()

	f := frame.New(2)
	require.NoError(t, f.AddFloat("x", frame.FloatColumnOf(1, 2)))

	p, err := New().Features("x").K(5).Build()
	require.NoError(t, err)

	_, err = p.Run(ctx, f)
	var icc *kmeans.ErrInvalidClusterCount
	require.ErrorAs(t, err, &icc)
	assert.Equal(t, 5, icc.K)
	assert.Equal(t, 2, icc.N)
}

func TestPipelineMissingFeatureColumn(t *testing.T) {
	ctx := context.Background()

	f := frame.New(2)
	require.NoError(t, f.AddFloat("x", frame.FloatColumnOf(1, 2)))

	p, err := New().Features("nope").K(1).Build()
	require.NoError(t, err)

	_, err = p.Run(ctx, f)
	assert.ErrorIs(t, err, frame.ErrColumnNotFound)
}

func TestBuilderValidation(t *testing.T) {
	_, err := New().K(3).Build()
	assert.ErrorIs(t, err, ErrNoFeatures)

	_, err = New().Features("x").Build()
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = New().Features("x").K(2).Age("age", 20, 13).Cohort("y").Build()
	var ir *ErrInvalidRange
	assert.ErrorAs(t, err, &ir)

	_, err = New().Features("x").K(2).Age("age", 13, 20).Build()
	assert.ErrorIs(t, err, ErrNoCohort)

	_, err = New().Features("x").K(2).Gender("gender", "").Build()
	assert.Error(t, err)
}

func TestBuilderImmutable(t *testing.T) {
	base := New().Features("x").K(2)
	withAge := base.Age("age", 13, 20).Cohort("y")

	_, err := base.Build()
	require.NoError(t, err)
	_, err = withAge.Build()
	require.NoError(t, err)
}

func TestRenderText(t *testing.T) {
	ctx := context.Background()
	res, err := buildPipeline(t).Run(ctx, surveyFrame(t, 1))
	require.NoError(t, err)

	out := res.RenderText()
	assert.Contains(t, out, "Records: 100")
	assert.Contains(t, out, "Clusters: 3")
	assert.Contains(t, out, "[CENTROIDS]")
	assert.Contains(t, out, "[CLUSTER PROFILES]")
	assert.Contains(t, out, "age_imputed")
}
