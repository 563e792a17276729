package seggo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/seggo/frame"
	"github.com/hupe1980/seggo/impute"
	"github.com/hupe1980/seggo/kmeans"
	"github.com/hupe1980/seggo/profile"
	"github.com/hupe1980/seggo/scale"
)

// ColCluster is the name of the appended cluster-assignment column.
const ColCluster = "cluster"

const (
	suffixImputed = "_imputed"
	suffixMissing = "_missing"
)

// Pipeline runs the segmentation flow over a frame: range normalization,
// indicator derivation, group-mean imputation, standardization, k-means,
// and per-cluster profiling.
type Pipeline struct {
	cfg  Builder
	opts options
}

// Result is the outcome of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run.
	RunID string
	// Rows is the record count of the input frame.
	Rows int
	// K is the cluster count.
	K int
	// Assignments holds the 1-based cluster id per record, aligned with
	// the frame's row order.
	Assignments []int
	// Centroids holds the K cluster centers in standardized feature space.
	Centroids *frame.Matrix
	// Counts holds the member count per cluster.
	Counts []int
	// Clusters holds the per-cluster summaries over the auxiliary columns.
	Clusters []profile.ClusterSummary
	// FeatureStats reports the standardization statistics per feature,
	// including degenerate zero-variance columns.
	FeatureStats []scale.ColumnStats
	// Derived lists the columns the run appended to the frame.
	Derived []string
	// Iterations, Converged and Inertia report the clustering outcome.
	Iterations int
	Converged  bool
	Inertia    float64
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Run executes the pipeline on f. Derived columns (imputed age, gender
// indicators, cluster assignment) are appended to f; existing columns are
// never modified. A frame can only be run once per pipeline configuration
// since the derived column names would collide.
func (p *Pipeline) Run(ctx context.Context, f *frame.Frame) (*Result, error) {
	start := time.Now()
	res := &Result{
		RunID: uuid.NewString(),
		Rows:  f.Len(),
		K:     p.cfg.k,
	}
	logger := p.opts.logger.WithRun(res.RunID).WithRows(f.Len()).WithK(p.cfg.k)

	var aux []profile.AuxColumn

	// Age: clamp out-of-range values to missing, then fill with cohort means.
	if p.cfg.ageCol != "" {
		ageCol, err := f.Float(p.cfg.ageCol)
		if err != nil {
			return nil, err
		}
		keys, err := f.String(p.cfg.cohortCol)
		if err != nil {
			return nil, err
		}
		cleaned := impute.NormalizeRange(ageCol, p.cfg.ageLo, p.cfg.ageHi)
		imputed, err := impute.GroupMean(cleaned, keys, func(o *impute.GroupMeanOptions) {
			o.PropagateMissing = p.cfg.allowEmptyCohorts
		})
		if err != nil {
			logger.LogRun(ctx, f.Len(), p.cfg.k, err)
			return nil, fmt.Errorf("impute %q: %w", p.cfg.ageCol, err)
		}
		name := p.cfg.ageCol + suffixImputed
		if err := f.AddFloat(name, imputed); err != nil {
			return nil, err
		}
		res.Derived = append(res.Derived, name)
		logger.LogImpute(ctx, p.cfg.ageCol, ageCol.MissingCount(), imputed.MissingCount())
		aux = append(aux, profile.AuxColumn{Name: name, Col: imputed})
	}

	// Gender: derive equality and missingness indicators.
	if p.cfg.genderCol != "" {
		genderCol, err := f.String(p.cfg.genderCol)
		if err != nil {
			return nil, err
		}
		eq, miss := impute.Indicators(genderCol, p.cfg.genderTarget)
		eqName := p.cfg.genderCol + "_" + p.cfg.genderTarget
		missName := p.cfg.genderCol + suffixMissing
		if err := f.AddFloat(eqName, eq); err != nil {
			return nil, err
		}
		if err := f.AddFloat(missName, miss); err != nil {
			return nil, err
		}
		res.Derived = append(res.Derived, eqName, missName)
		aux = append(aux, profile.AuxColumn{Name: eqName, Col: eq})
	}

	if p.cfg.friendCol != "" {
		friends, err := f.Float(p.cfg.friendCol)
		if err != nil {
			return nil, err
		}
		aux = append(aux, profile.AuxColumn{Name: p.cfg.friendCol, Col: friends})
	}
	for _, name := range p.cfg.aux {
		col, err := f.Float(name)
		if err != nil {
			return nil, err
		}
		aux = append(aux, profile.AuxColumn{Name: name, Col: col})
	}

	// Standardize the feature matrix and cluster it.
	m, err := f.Matrix(p.cfg.features...)
	if err != nil {
		logger.LogRun(ctx, f.Len(), p.cfg.k, err)
		return nil, err
	}
	std, stats := scale.Standardize(m)
	res.FeatureStats = stats

	kres, err := kmeans.Train(ctx, std.Data, std.Cols, p.cfg.k, func(o *kmeans.Options) {
		o.Seed = p.cfg.seed
		o.Metric = p.opts.metric
		o.MaxIterations = p.opts.maxIterations
		o.Parallelism = p.opts.parallelism
	})
	if err != nil {
		logger.LogRun(ctx, f.Len(), p.cfg.k, err)
		return nil, err
	}
	logger.LogCluster(ctx, kres.Iterations, kres.Converged, kres.Inertia)

	res.Iterations = kres.Iterations
	res.Converged = kres.Converged
	res.Inertia = kres.Inertia
	res.Counts = kres.Counts
	res.Centroids = &frame.Matrix{
		Rows:  kres.K,
		Cols:  kres.Dim,
		Names: append([]string(nil), p.cfg.features...),
		Data:  append([]float64(nil), kres.Centroids...),
	}

	// Materialize 1-based cluster ids as a derived column.
	res.Assignments = make([]int, len(kres.Assignments))
	clusterCol := frame.NewFloatColumn(f.Len())
	for i, c := range kres.Assignments {
		res.Assignments[i] = c + 1
		clusterCol.Set(i, float64(c+1))
	}
	if err := f.AddFloat(ColCluster, clusterCol); err != nil {
		return nil, err
	}
	res.Derived = append(res.Derived, ColCluster)

	res.Clusters, err = profile.Summarize(kres.Assignments, p.cfg.k, aux...)
	if err != nil {
		logger.LogRun(ctx, f.Len(), p.cfg.k, err)
		return nil, err
	}

	res.Elapsed = time.Since(start)
	logger.LogRun(ctx, f.Len(), p.cfg.k, nil)
	return res, nil
}
