package impute

import "github.com/hupe1980/seggo/frame"

// Indicators derives two fully-observed indicator columns from a categorical
// column: the first is 1 where the value is present and equals target, the
// second is 1 where the value is missing.
//
// For a column whose alphabet is {target, one other category, missing}, the
// pair (0,0) identifies the other category, so the two indicators partition
// all three states.
func Indicators(col *frame.StringColumn, target string) (eq, missing *frame.FloatColumn) {
	n := col.Len()
	eq = frame.NewFloatColumn(n)
	missing = frame.NewFloatColumn(n)
	for i := 0; i < n; i++ {
		v, ok := col.Value(i)
		switch {
		case !ok:
			eq.Set(i, 0)
			missing.Set(i, 1)
		case v == target:
			eq.Set(i, 1)
			missing.Set(i, 0)
		default:
			eq.Set(i, 0)
			missing.Set(i, 0)
		}
	}
	return eq, missing
}
