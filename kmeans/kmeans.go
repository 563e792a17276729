package kmeans

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/seggo/distance"
)

// Options configures training.
type Options struct {
	// MaxIterations caps Lloyd's iterations. Hitting the cap is not an
	// error; Result.Converged reports false.
	MaxIterations int
	// Seed drives centroid initialization and empty-cluster reseeding.
	// Two runs with the same seed and input produce identical results.
	Seed int64
	// Metric selects the distance function for the assignment step.
	Metric distance.Metric
	// Parallelism is the number of workers for the assignment step.
	// Values <= 1 run sequentially. Parallel runs are deterministic: each
	// worker owns a contiguous, disjoint row range.
	Parallelism int
}

// DefaultOptions returns the default training options.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 100,
		Seed:          1,
		Metric:        distance.MetricSquaredL2,
		Parallelism:   1,
	}
}

// Result is the outcome of a training run.
type Result struct {
	// Assignments maps each input row to a cluster index in [0, K).
	Assignments []int
	// Centroids holds the flattened K*Dim centroid coordinates.
	Centroids []float64
	// Counts holds the member count per cluster.
	Counts []int
	// Dim is the feature dimensionality.
	Dim int
	// K is the cluster count.
	K int
	// Iterations is the number of Lloyd's iterations performed.
	Iterations int
	// Converged reports whether assignments stabilized before the cap.
	Converged bool
	// Inertia is the total squared distance of rows to their centroid
	// after the final assignment step.
	Inertia float64
}

// Centroid returns the coordinates of cluster j.
func (r *Result) Centroid(j int) []float64 {
	return r.Centroids[j*r.Dim : (j+1)*r.Dim]
}

// Train clusters the flattened row-major matrix (len(vectors) = n*dim) into
// k partitions using Lloyd's algorithm.
func Train(ctx context.Context, vectors []float64, dim, k int, optFns ...func(*Options)) (*Result, error) {
	opts := DefaultOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	if dim <= 0 || len(vectors)%dim != 0 {
		return nil, fmt.Errorf("%w: dim=%d, len=%d", ErrInvalidDimension, dim, len(vectors))
	}
	n := len(vectors) / dim
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if k < 1 || k > n {
		return nil, &ErrInvalidClusterCount{K: k, N: n}
	}

	distFunc, err := distance.Provider(opts.Metric)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	centroids := make([]float64, k*dim)
	perm := rng.Perm(n)
	for j := 0; j < k; j++ {
		copy(centroids[j*dim:(j+1)*dim], vectors[perm[j]*dim:(perm[j]+1)*dim])
	}

	assignments := make([]int, n)
	for i := range assignments {
		assignments[i] = -1
	}
	counts := make([]int, k)
	sums := make([]float64, k*dim)

	res := &Result{Dim: dim, K: k}

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = 1
	}

	for iter := 0; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Assignment step.
		var changed int
		var inertia float64
		if opts.Parallelism > 1 {
			changed, inertia, err = assignParallel(ctx, vectors, centroids, assignments, dim, k, distFunc, opts.Parallelism)
			if err != nil {
				return nil, err
			}
		} else {
			changed, inertia = assignRange(vectors, centroids, assignments, 0, n, dim, k, distFunc)
		}
		res.Iterations = iter + 1
		res.Inertia = inertia

		if changed == 0 {
			res.Converged = true
			break
		}

		// Update step.
		for i := range sums {
			sums[i] = 0
		}
		for j := range counts {
			counts[j] = 0
		}
		for i := 0; i < n; i++ {
			c := assignments[i]
			row := vectors[i*dim : (i+1)*dim]
			for d := 0; d < dim; d++ {
				sums[c*dim+d] += row[d]
			}
			counts[c]++
		}
		for j := 0; j < k; j++ {
			if counts[j] > 0 {
				inv := 1.0 / float64(counts[j])
				for d := 0; d < dim; d++ {
					centroids[j*dim+d] = sums[j*dim+d] * inv
				}
				continue
			}
			// Reseed an empty cluster from a random row. Clusters are
			// visited in index order, so the draw sequence is fixed by
			// the seed.
			idx := rng.Intn(n)
			copy(centroids[j*dim:(j+1)*dim], vectors[idx*dim:(idx+1)*dim])
		}
	}

	// Final member counts from the last assignment.
	for j := range counts {
		counts[j] = 0
	}
	for _, c := range assignments {
		counts[c]++
	}

	res.Assignments = assignments
	res.Centroids = centroids
	res.Counts = counts
	return res, nil
}

// assignRange assigns rows [lo, hi) to their nearest centroid, breaking ties
// toward the lowest cluster index. It returns the number of changed
// assignments and the summed distance of the range.
func assignRange(vectors, centroids []float64, assignments []int, lo, hi, dim, k int, distFunc distance.Func) (changed int, inertia float64) {
	for i := lo; i < hi; i++ {
		row := vectors[i*dim : (i+1)*dim]
		best := 0
		minDist := math.Inf(1)
		for j := 0; j < k; j++ {
			d := distFunc(row, centroids[j*dim:(j+1)*dim])
			if d < minDist {
				minDist = d
				best = j
			}
		}
		if assignments[i] != best {
			assignments[i] = best
			changed++
		}
		inertia += minDist
	}
	return changed, inertia
}

// assignParallel splits the assignment step across workers on contiguous row
// ranges. Workers write disjoint slices of assignments, and per-worker
// results are combined in worker order, so the outcome matches a sequential
// pass exactly.
func assignParallel(ctx context.Context, vectors, centroids []float64, assignments []int, dim, k int, distFunc distance.Func, workers int) (int, float64, error) {
	n := len(assignments)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	changedBy := make([]int, workers)
	inertiaBy := make([]float64, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		w := w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			changedBy[w], inertiaBy[w] = assignRange(vectors, centroids, assignments, lo, hi, dim, k, distFunc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	var changed int
	var inertia float64
	for w := 0; w < workers; w++ {
		changed += changedBy[w]
		inertia += inertiaBy[w]
	}
	return changed, inertia, nil
}
