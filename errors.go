package seggo

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFeatures is returned when a pipeline is built without feature columns.
	ErrNoFeatures = errors.New("no feature columns configured")
	// ErrInvalidK is returned when the configured cluster count is not positive.
	ErrInvalidK = errors.New("k must be positive")
	// ErrNoCohort is returned when age imputation is configured without a
	// cohort column to group by.
	ErrNoCohort = errors.New("cohort column required for group-mean imputation")
)

// ErrInvalidRange indicates a malformed [lo, hi) validity interval.
type ErrInvalidRange struct {
	Column string
	Lo, Hi float64
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range for column %q: [%g, %g)", e.Column, e.Lo, e.Hi)
}
