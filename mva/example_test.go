package mva_test

import (
	"fmt"

	"github.com/sakikout/ADS/mva"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleExact
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two identical stations with one second of service demand each, no
//	think time, two customers in the system. Level 1 of the recursion is
//	the textbook hand computation (X=0.5); level 2 inflates residence
//	times with the level-1 backlog.
//
// Use case:
//
//	Sizing a two-tier system (e.g. CPU + disk) under a fixed concurrency.
//
// Complexity: O(N·K) time, O(N+K) memory.
func ExampleExact() {
	res, err := mva.Exact(2, []float64{1, 1}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("X=%.4f\n", res.Throughput)
	fmt.Printf("R=%.4f\n", res.ResponseTime)
	fmt.Printf("U_1=%.4f\n", res.Utilization[0])
	fmt.Printf("levels=%d\n", len(res.HistoryThroughput))
	// Output:
	// X=0.6667
	// R=3.0000
	// U_1=0.6667
	// levels=2
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleApproximate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Same two-station network at unit population. With n=1 the
//	self-exclusion factor (n−1)/n is zero, so the very first sweep is the
//	fixed point: the run converges in one iteration to the exact answer.
//
// Use case:
//
//	Large populations where the exact recursion is too slow; here shown
//	at n=1 where the two solvers provably agree.
func ExampleApproximate() {
	opts := mva.DefaultApproxOptions()
	res, err := mva.Approximate(1, 2, []float64{1, 1}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("X=%.4f\n", res.Throughput)
	fmt.Printf("converged=%v in %d iteration(s)\n", res.Converged, res.Iterations)
	// Output:
	// X=0.5000
	// converged=true in 1 iteration(s)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleExact_observer
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Attach the per-level observer hook to stream the trajectory into a
//	presentation layer without touching solver state.
func ExampleExact_observer() {
	opts := mva.DefaultExactOptions()
	opts.OnLevel = func(row mva.Level) {
		fmt.Printf("n=%d X=%.4f R=%.4f\n", row.Index, row.Throughput, row.ResponseTime)
	}
	if _, err := mva.Exact(3, []float64{0.5, 0.25}, &opts); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// n=1 X=1.3333 R=0.7500
	// n=2 X=1.7143 R=1.1667
	// n=3 X=1.8667 R=1.6071
}
