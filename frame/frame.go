package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnExists is returned when adding a column under a name that is taken.
	ErrColumnExists = errors.New("column already exists")
	// ErrColumnNotFound is returned when looking up an unknown column.
	ErrColumnNotFound = errors.New("column not found")
	// ErrLengthMismatch is returned when a column's length differs from the frame's.
	ErrLengthMismatch = errors.New("column length mismatch")
)

// ErrMissingValues indicates a feature column still carries missing entries
// when a complete matrix is required.
type ErrMissingValues struct {
	Column string
	Count  int
}

func (e *ErrMissingValues) Error() string {
	return fmt.Sprintf("column %q has %d missing values", e.Column, e.Count)
}

// Frame is a fixed-length collection of named columns.
// Columns are appended, never removed; the row count is fixed at creation.
type Frame struct {
	n      int
	order  []string
	floats map[string]*FloatColumn
	strs   map[string]*StringColumn
}

// New creates an empty frame with n rows.
func New(n int) *Frame {
	return &Frame{
		n:      n,
		floats: make(map[string]*FloatColumn),
		strs:   make(map[string]*StringColumn),
	}
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.n }

// Columns returns column names in insertion order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Has reports whether a column with the given name exists.
func (f *Frame) Has(name string) bool {
	_, okF := f.floats[name]
	_, okS := f.strs[name]
	return okF || okS
}

// AddFloat appends a numeric column.
func (f *Frame) AddFloat(name string, c *FloatColumn) error {
	if f.Has(name) {
		return fmt.Errorf("%w: %q", ErrColumnExists, name)
	}
	if c.Len() != f.n {
		return fmt.Errorf("%w: column %q has %d rows, frame has %d", ErrLengthMismatch, name, c.Len(), f.n)
	}
	f.floats[name] = c
	f.order = append(f.order, name)
	return nil
}

// AddString appends a categorical column.
func (f *Frame) AddString(name string, c *StringColumn) error {
	if f.Has(name) {
		return fmt.Errorf("%w: %q", ErrColumnExists, name)
	}
	if c.Len() != f.n {
		return fmt.Errorf("%w: column %q has %d rows, frame has %d", ErrLengthMismatch, name, c.Len(), f.n)
	}
	f.strs[name] = c
	f.order = append(f.order, name)
	return nil
}

// Float returns the numeric column with the given name.
func (f *Frame) Float(name string) (*FloatColumn, error) {
	c, ok := f.floats[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return c, nil
}

// String returns the categorical column with the given name.
func (f *Frame) String(name string) (*StringColumn, error) {
	c, ok := f.strs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return c, nil
}

// Matrix extracts the named numeric columns into a row-major feature matrix.
// Every selected column must be fully observed; a column with residual
// missing entries yields *ErrMissingValues.
func (f *Frame) Matrix(names ...string) (*Matrix, error) {
	cols := make([]*FloatColumn, len(names))
	for i, name := range names {
		c, err := f.Float(name)
		if err != nil {
			return nil, err
		}
		if miss := c.MissingCount(); miss > 0 {
			return nil, &ErrMissingValues{Column: name, Count: miss}
		}
		cols[i] = c
	}

	m := &Matrix{
		Rows:  f.n,
		Cols:  len(names),
		Names: append([]string(nil), names...),
		Data:  make([]float64, f.n*len(names)),
	}
	for i := 0; i < f.n; i++ {
		for j, c := range cols {
			m.Data[i*m.Cols+j] = c.values[i]
		}
	}
	return m, nil
}

// Matrix is a dense row-major numeric matrix with named columns.
type Matrix struct {
	Rows  int
	Cols  int
	Names []string
	Data  []float64 // len = Rows*Cols, row-major
}

// Row returns the i-th row as a slice view into the underlying data.
func (m *Matrix) Row(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}
