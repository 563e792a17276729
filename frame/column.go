package frame

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// FloatColumn holds numeric observations with an explicit missing mask.
// A missing entry has no defined value; Value reports ok=false for it.
type FloatColumn struct {
	values  []float64
	missing *roaring.Bitmap
}

// NewFloatColumn creates a column of length n with every entry missing.
func NewFloatColumn(n int) *FloatColumn {
	c := &FloatColumn{
		values:  make([]float64, n),
		missing: roaring.New(),
	}
	c.missing.AddRange(0, uint64(n))
	return c
}

// FloatColumnOf creates a column from values with every entry present.
func FloatColumnOf(values ...float64) *FloatColumn {
	vals := make([]float64, len(values))
	copy(vals, values)
	return &FloatColumn{
		values:  vals,
		missing: roaring.New(),
	}
}

// Len returns the number of rows in the column.
func (c *FloatColumn) Len() int { return len(c.values) }

// Set stores a present value at row i.
func (c *FloatColumn) Set(i int, v float64) {
	c.values[i] = v
	c.missing.Remove(uint32(i))
}

// SetMissing marks row i as missing.
func (c *FloatColumn) SetMissing(i int) {
	c.values[i] = 0
	c.missing.Add(uint32(i))
}

// Value returns the value at row i and whether it is present.
func (c *FloatColumn) Value(i int) (float64, bool) {
	if c.missing.Contains(uint32(i)) {
		return math.NaN(), false
	}
	return c.values[i], true
}

// IsMissing reports whether row i is missing.
func (c *FloatColumn) IsMissing(i int) bool {
	return c.missing.Contains(uint32(i))
}

// MissingCount returns the number of missing rows.
func (c *FloatColumn) MissingCount() int {
	return int(c.missing.GetCardinality())
}

// ObservedCount returns the number of present rows.
func (c *FloatColumn) ObservedCount() int {
	return c.Len() - c.MissingCount()
}

// Clone returns a deep copy of the column.
func (c *FloatColumn) Clone() *FloatColumn {
	vals := make([]float64, len(c.values))
	copy(vals, c.values)
	return &FloatColumn{
		values:  vals,
		missing: c.missing.Clone(),
	}
}

// StringColumn holds categorical observations with an explicit missing mask.
type StringColumn struct {
	values  []string
	missing *roaring.Bitmap
}

// NewStringColumn creates a column of length n with every entry missing.
func NewStringColumn(n int) *StringColumn {
	c := &StringColumn{
		values:  make([]string, n),
		missing: roaring.New(),
	}
	c.missing.AddRange(0, uint64(n))
	return c
}

// StringColumnOf creates a column from values with every entry present.
func StringColumnOf(values ...string) *StringColumn {
	vals := make([]string, len(values))
	copy(vals, values)
	return &StringColumn{
		values:  vals,
		missing: roaring.New(),
	}
}

// Len returns the number of rows in the column.
func (c *StringColumn) Len() int { return len(c.values) }

// Set stores a present value at row i.
func (c *StringColumn) Set(i int, v string) {
	c.values[i] = v
	c.missing.Remove(uint32(i))
}

// SetMissing marks row i as missing.
func (c *StringColumn) SetMissing(i int) {
	c.values[i] = ""
	c.missing.Add(uint32(i))
}

// Value returns the value at row i and whether it is present.
func (c *StringColumn) Value(i int) (string, bool) {
	if c.missing.Contains(uint32(i)) {
		return "", false
	}
	return c.values[i], true
}

// IsMissing reports whether row i is missing.
func (c *StringColumn) IsMissing(i int) bool {
	return c.missing.Contains(uint32(i))
}

// MissingCount returns the number of missing rows.
func (c *StringColumn) MissingCount() int {
	return int(c.missing.GetCardinality())
}

// Clone returns a deep copy of the column.
func (c *StringColumn) Clone() *StringColumn {
	vals := make([]string, len(c.values))
	copy(vals, c.values)
	return &StringColumn{
		values:  vals,
		missing: c.missing.Clone(),
	}
}
