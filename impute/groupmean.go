package impute

import (
	"fmt"

	"github.com/hupe1980/seggo/frame"
)

// ErrEmptyGroup indicates a group whose every value is missing, so its mean
// is undefined and nothing can be substituted for its missing rows.
type ErrEmptyGroup struct {
	Group string
	Rows  int
}

func (e *ErrEmptyGroup) Error() string {
	return fmt.Sprintf("group %q has no observed values across %d rows", e.Group, e.Rows)
}

// GroupMeanOptions configures GroupMean.
type GroupMeanOptions struct {
	// PropagateMissing leaves rows of an all-missing group marked missing
	// instead of failing with *ErrEmptyGroup.
	PropagateMissing bool
}

type groupKey struct {
	value   string
	missing bool
}

func (k groupKey) String() string {
	if k.missing {
		return "(missing)"
	}
	return k.value
}

// GroupMean fills missing entries of values with the arithmetic mean of the
// observed entries sharing the same key. Observed entries pass through
// unchanged. Rows with a missing key form their own group.
//
// The computation is an explicit two-pass: first a key -> (sum, count) map
// over observed values, then a substitution pass in row order. A group with
// zero observed values has an undefined mean; by default this is reported as
// *ErrEmptyGroup, or its rows stay missing with PropagateMissing.
func GroupMean(values *frame.FloatColumn, keys *frame.StringColumn, optFns ...func(*GroupMeanOptions)) (*frame.FloatColumn, error) {
	if values.Len() != keys.Len() {
		return nil, fmt.Errorf("%w: values %d rows, keys %d rows", frame.ErrLengthMismatch, values.Len(), keys.Len())
	}

	var opts GroupMeanOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	type acc struct {
		sum   float64
		count int
		rows  int
	}
	groups := make(map[groupKey]*acc)

	keyAt := func(i int) groupKey {
		v, ok := keys.Value(i)
		return groupKey{value: v, missing: !ok}
	}

	// First pass: per-group sums over observed values.
	for i := 0; i < values.Len(); i++ {
		k := keyAt(i)
		a := groups[k]
		if a == nil {
			a = &acc{}
			groups[k] = a
		}
		a.rows++
		if v, ok := values.Value(i); ok {
			a.sum += v
			a.count++
		}
	}

	// Second pass: substitute group means for missing rows.
	out := values.Clone()
	for i := 0; i < values.Len(); i++ {
		if !values.IsMissing(i) {
			continue
		}
		k := keyAt(i)
		a := groups[k]
		if a.count == 0 {
			if opts.PropagateMissing {
				continue
			}
			return nil, &ErrEmptyGroup{Group: k.String(), Rows: a.rows}
		}
		out.Set(i, a.sum/float64(a.count))
	}
	return out, nil
}
