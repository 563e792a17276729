// Package seggo provides segmentation pipelines for survey profile data.
//
// This file implements the fluent builder API for configuring pipelines.
// The builder is immutable - each method returns a new builder with the
// updated configuration.
package seggo

import "fmt"

// New creates a new pipeline builder.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents accidental
// state sharing.
//
// Example:
//
//	p, err := seggo.New().
//	    Features("basketball", "football", "soccer").
//	    Age("age", 13, 20).
//	    Gender("gender", "F").
//	    Cohort("gradyear").
//	    K(3).
//	    Seed(42).
//	    Build()
func New() Builder {
	return Builder{
		seed: 1,
	}
}

// Builder is an immutable fluent builder for creating Pipelines.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	features          []string
	ageCol            string
	ageLo, ageHi      float64
	genderCol         string
	genderTarget      string
	cohortCol         string
	friendCol         string
	aux               []string
	allowEmptyCohorts bool
	k                 int
	seed              int64
}

// Features sets the numeric columns clustered on. Required.
func (b Builder) Features(names ...string) Builder {
	b.features = append([]string(nil), names...)
	return b
}

// Age configures age cleaning and imputation: values outside [lo, hi) are
// treated as missing, then missing entries are filled with the cohort mean.
func (b Builder) Age(column string, lo, hi float64) Builder {
	b.ageCol = column
	b.ageLo = lo
	b.ageHi = hi
	return b
}

// Gender configures indicator derivation for a categorical gender column.
// target is the category encoded as 1 in the equality indicator.
func (b Builder) Gender(column, target string) Builder {
	b.genderCol = column
	b.genderTarget = target
	return b
}

// Cohort sets the grouping key column for group-mean imputation.
func (b Builder) Cohort(column string) Builder {
	b.cohortCol = column
	return b
}

// FriendCount sets the friend-count column, profiled per cluster.
func (b Builder) FriendCount(column string) Builder {
	b.friendCol = column
	return b
}

// Aux adds extra numeric columns to profile per cluster.
func (b Builder) Aux(names ...string) Builder {
	b.aux = append(append([]string(nil), b.aux...), names...)
	return b
}

// AllowEmptyCohorts leaves rows of an all-missing cohort marked missing
// instead of failing the run. Default: a typed *impute.ErrEmptyGroup error.
func (b Builder) AllowEmptyCohorts() Builder {
	b.allowEmptyCohorts = true
	return b
}

// K sets the number of clusters. Required.
func (b Builder) K(k int) Builder {
	b.k = k
	return b
}

// Seed sets the seed for deterministic clustering. Default: 1.
func (b Builder) Seed(seed int64) Builder {
	b.seed = seed
	return b
}

// Build creates the Pipeline.
func (b Builder) Build(optFns ...Option) (*Pipeline, error) {
	if len(b.features) == 0 {
		return nil, ErrNoFeatures
	}
	if b.k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, b.k)
	}
	if b.ageCol != "" {
		if b.ageHi <= b.ageLo {
			return nil, &ErrInvalidRange{Column: b.ageCol, Lo: b.ageLo, Hi: b.ageHi}
		}
		if b.cohortCol == "" {
			return nil, fmt.Errorf("%w: age column %q", ErrNoCohort, b.ageCol)
		}
	}
	if b.genderCol != "" && b.genderTarget == "" {
		return nil, fmt.Errorf("gender target category required for column %q", b.genderCol)
	}

	return &Pipeline{
		cfg:  b,
		opts: applyOptions(optFns),
	}, nil
}

// MustBuild creates the Pipeline, panicking on error.
func (b Builder) MustBuild(optFns ...Option) *Pipeline {
	p, err := b.Build(optFns...)
	if err != nil {
		panic(err)
	}
	return p
}
