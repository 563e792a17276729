package seggo

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// RenderText renders a compact, human-readable run summary.
func (r *Result) RenderText() string {
	var b strings.Builder

	b.WriteString("[SEGMENTATION SUMMARY]\n")
	b.WriteString(fmt.Sprintf("Run: %s\n", r.RunID))
	b.WriteString(fmt.Sprintf("Records: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Clusters: %d\n", r.K))
	if r.Converged {
		b.WriteString(fmt.Sprintf("Converged after %d iterations (inertia %.4g)\n", r.Iterations, r.Inertia))
	} else {
		b.WriteString(fmt.Sprintf("Iteration cap hit at %d iterations (inertia %.4g)\n", r.Iterations, r.Inertia))
	}

	degenerate := make([]string, 0)
	for _, s := range r.FeatureStats {
		if s.Degenerate {
			degenerate = append(degenerate, s.Name)
		}
	}
	if len(degenerate) > 0 {
		b.WriteString(fmt.Sprintf("Zero-variance features (scaled to 0): %s\n", strings.Join(degenerate, ", ")))
	}

	if r.Centroids != nil {
		b.WriteString("\n[CENTROIDS]\n")
		for j := 0; j < r.Centroids.Rows; j++ {
			b.WriteString(fmt.Sprintf("- cluster %d:", j+1))
			row := r.Centroids.Row(j)
			for d, v := range row {
				if d > 0 {
					b.WriteString(",")
				}
				b.WriteString(fmt.Sprintf(" %s=%.4g", r.Centroids.Names[d], v))
			}
			b.WriteString("\n")
		}
	}

	if len(r.Clusters) > 0 {
		b.WriteString("\n[CLUSTER PROFILES]\n")
		for _, c := range r.Clusters {
			b.WriteString(fmt.Sprintf("- cluster %d (n=%d)\n", c.Cluster, c.Count))
			names := make([]string, 0, len(c.Means))
			for name := range c.Means {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				mean := c.Means[name]
				if math.IsNaN(mean) {
					b.WriteString(fmt.Sprintf("  • %s: no observed values\n", name))
					continue
				}
				b.WriteString(fmt.Sprintf("  • %s: mean %.4g (n=%d)\n", name, mean, c.Observed[name]))
			}
		}
	}
	return b.String()
}
