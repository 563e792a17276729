package scale

import (
	"math"

	"github.com/hupe1980/seggo/frame"
)

// ColumnStats reports the statistics used to standardize one column.
type ColumnStats struct {
	Name string
	Mean float64
	// Std is the sample standard deviation (n-1 denominator).
	Std float64
	// Degenerate marks a zero-variance column (or a single-row matrix).
	// Its standardized values are all zeros.
	Degenerate bool
}

// Standardize rescales each column of m to zero mean and unit variance and
// returns the result as a new matrix, leaving m untouched.
//
// The standard deviation is the sample deviation (n-1 denominator). A column
// with zero variance cannot be scaled; instead of dividing by zero its output
// is all zeros and the column is flagged Degenerate in the returned stats.
func Standardize(m *frame.Matrix) (*frame.Matrix, []ColumnStats) {
	stats := make([]ColumnStats, m.Cols)

	// Welford accumulation per column.
	means := make([]float64, m.Cols)
	m2s := make([]float64, m.Cols)
	for i := 0; i < m.Rows; i++ {
		row := m.Row(i)
		for j, x := range row {
			delta := x - means[j]
			means[j] += delta / float64(i+1)
			m2s[j] += delta * (x - means[j])
		}
	}

	for j := 0; j < m.Cols; j++ {
		s := ColumnStats{Mean: means[j]}
		if j < len(m.Names) {
			s.Name = m.Names[j]
		}
		if m.Rows > 1 {
			s.Std = math.Sqrt(m2s[j] / float64(m.Rows-1))
		}
		if s.Std == 0 {
			s.Degenerate = true
		}
		stats[j] = s
	}

	out := &frame.Matrix{
		Rows:  m.Rows,
		Cols:  m.Cols,
		Names: append([]string(nil), m.Names...),
		Data:  make([]float64, len(m.Data)),
	}
	for i := 0; i < m.Rows; i++ {
		src := m.Row(i)
		dst := out.Row(i)
		for j, x := range src {
			if stats[j].Degenerate {
				dst[j] = 0
				continue
			}
			dst[j] = (x - stats[j].Mean) / stats[j].Std
		}
	}
	return out, stats
}
