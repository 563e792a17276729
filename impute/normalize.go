package impute

import "github.com/hupe1980/seggo/frame"

// NormalizeRange returns a copy of col where every value outside the
// half-open interval [lo, hi) is marked missing. Values inside the interval
// pass through unchanged; entries that are already missing stay missing.
func NormalizeRange(col *frame.FloatColumn, lo, hi float64) *frame.FloatColumn {
	out := col.Clone()
	for i := 0; i < col.Len(); i++ {
		v, ok := col.Value(i)
		if !ok {
			continue
		}
		if v < lo || v >= hi {
			out.SetMissing(i)
		}
	}
	return out
}
