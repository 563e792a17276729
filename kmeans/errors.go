package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input matrix has no rows.
	ErrEmptyInput = errors.New("input matrix is empty")
	// ErrInvalidDimension is returned when dim is not positive or does not
	// divide the input length.
	ErrInvalidDimension = errors.New("invalid dimension")
)

// ErrInvalidClusterCount indicates k outside [1, n]. It is the only hard
// failure of the segmentation pipeline.
type ErrInvalidClusterCount struct {
	K int
	N int
}

func (e *ErrInvalidClusterCount) Error() string {
	return fmt.Sprintf("invalid cluster count: k=%d must be in [1, %d]", e.K, e.N)
}
