package profile

import (
	"fmt"
	"math"

	"github.com/hupe1980/seggo/frame"
)

// AuxColumn is a named auxiliary column aligned with the assignments by
// record index.
type AuxColumn struct {
	Name string
	Col  *frame.FloatColumn
}

// ClusterSummary aggregates one cluster's members.
type ClusterSummary struct {
	// Cluster is the 1-based cluster id.
	Cluster int
	// Count is the number of member records.
	Count int
	// Means maps auxiliary column name to the mean over members with an
	// observed value. A cluster with zero observed values for a column
	// has a NaN mean and Observed[name] == 0.
	Means map[string]float64
	// Observed maps auxiliary column name to the number of members that
	// contributed to its mean.
	Observed map[string]int
}

// Summarize computes per-cluster member counts and auxiliary-column means.
//
// assignments holds 0-based cluster indices in [0, k). Rows whose auxiliary
// value is missing are excluded from that column's mean only; they still
// count as members. The returned summaries are ordered by cluster id, and
// their counts sum to len(assignments).
func Summarize(assignments []int, k int, aux ...AuxColumn) ([]ClusterSummary, error) {
	if k < 1 {
		return nil, fmt.Errorf("cluster count must be positive, got %d", k)
	}
	for _, a := range aux {
		if a.Col.Len() != len(assignments) {
			return nil, fmt.Errorf("%w: column %q has %d rows, assignments %d", frame.ErrLengthMismatch, a.Name, a.Col.Len(), len(assignments))
		}
	}

	type acc struct {
		sum   float64
		count int
	}
	counts := make([]int, k)
	accs := make([]map[string]*acc, k)
	for j := range accs {
		accs[j] = make(map[string]*acc, len(aux))
		for _, a := range aux {
			accs[j][a.Name] = &acc{}
		}
	}

	for i, c := range assignments {
		if c < 0 || c >= k {
			return nil, fmt.Errorf("assignment %d out of range [0, %d)", c, k)
		}
		counts[c]++
		for _, a := range aux {
			if v, ok := a.Col.Value(i); ok {
				accs[c][a.Name].sum += v
				accs[c][a.Name].count++
			}
		}
	}

	out := make([]ClusterSummary, k)
	for j := 0; j < k; j++ {
		s := ClusterSummary{
			Cluster:  j + 1,
			Count:    counts[j],
			Means:    make(map[string]float64, len(aux)),
			Observed: make(map[string]int, len(aux)),
		}
		for _, a := range aux {
			ac := accs[j][a.Name]
			s.Observed[a.Name] = ac.count
			if ac.count > 0 {
				s.Means[a.Name] = ac.sum / float64(ac.count)
			} else {
				s.Means[a.Name] = math.NaN()
			}
		}
		out[j] = s
	}
	return out, nil
}
