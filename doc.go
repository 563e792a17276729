// Package seggo segments survey-style profile datasets with k-means
// clustering and characterizes the resulting segments by auxiliary
// demographic variables.
//
// A Pipeline cleans a noisy, partially-missing dataset (range
// normalization, categorical indicators, group-mean imputation),
// standardizes the selected feature columns, clusters the standardized
// matrix, and aggregates per-cluster statistics.
//
// # Quick Start
//
//	f, _ := frame.OpenCSV("profiles.csv", frame.CSVOptions{
//	    Numeric: []string{"age", "friends", "basketball", "football", "soccer"},
//	})
//
//	p, _ := seggo.New().
//	    Features("basketball", "football", "soccer").
//	    Age("age", 13, 20).
//	    Gender("gender", "F").
//	    Cohort("gradyear").
//	    FriendCount("friends").
//	    K(3).
//	    Seed(42).
//	    Build()
//
//	res, _ := p.Run(context.Background(), f)
//	for _, c := range res.Clusters {
//	    fmt.Println(c.Cluster, c.Count, c.Means)
//	}
//
// Runs are deterministic for a fixed seed. The input frame is extended with
// derived columns (imputed age, gender indicators, cluster assignment);
// existing columns are never modified.
package seggo
