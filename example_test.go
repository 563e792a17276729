package seggo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/seggo"
	"github.com/hupe1980/seggo/frame"
)

// Example_builder demonstrates configuring a pipeline with the fluent builder.
func Example_builder() {
	p, err := seggo.New().
		Features("basketball", "football", "soccer").
		Age("age", 13, 20).        // values outside [13, 20) become missing
		Gender("gender", "F").     // derive gender_F and gender_missing indicators
		Cohort("gradyear").        // cohort mean fills missing ages
		FriendCount("friends").    // profiled per cluster
		K(3).
		Seed(42).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("pipeline configured:", p != nil)
	// Output: pipeline configured: true
}

// Example_run demonstrates a minimal end-to-end segmentation run.
func Example_run() {
	f := frame.New(6)
	if err := f.AddFloat("x", frame.FloatColumnOf(0, 0.1, 0, 9.9, 10, 10.1)); err != nil {
		log.Fatal(err)
	}

	p, err := seggo.New().
		Features("x").
		K(2).
		Seed(1).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	res, err := p.Run(context.Background(), f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("clusters:", res.K)
	fmt.Println("records:", res.Rows)
	// Output:
	// clusters: 2
	// records: 6
}
