// Package mva solves closed, single-class queueing networks with
// Mean Value Analysis (MVA).
//
// 🚀 What is MVA?
//
//	MVA computes steady-state performance metrics — throughput, residence
//	times, queue lengths, utilization — for a fixed population of N
//	customers circulating among K service stations plus an optional
//	think-time delay. It rests on two exact results:
//	  • the Arrival Theorem: a customer arriving at a station in a closed
//	    network with N customers sees the steady state of the same
//	    network with N−1 customers;
//	  • Little's law: mean queue length = throughput × mean residence time.
//
// ✨ Two solvers:
//   - Exact       — the canonical recursion over population levels
//     1..N. O(N·K) time, exact answers, full per-level trajectory.
//   - Approximate — the Bard–Schweitzer fixed-point iteration for a
//     single target population. Each sweep costs O(K) regardless of N:
//     the queue seen on arrival is approximated by scaling the current
//     estimate with (N−1)/N instead of recursing over population.
//     Converges fast in practice; exact at N=1.
//
// Both solvers are pure functions: no I/O, no globals, no state shared
// across calls. Presentation concerns (tables, CSV) live in the report
// package and attach through the optional per-level observer hook.
//
// ⚙️ Usage:
//
//	import "github.com/sakikout/ADS/mva"
//
//	opts := mva.DefaultExactOptions()
//	opts.ThinkTime = 5
//	res, err := mva.Exact(20, []float64{0.04, 0.03, 0.06}, &opts)
//
//	aopts := mva.DefaultApproxOptions()
//	ares, err := mva.Approximate(20, 3, []float64{0.04, 0.03, 0.06}, &aopts)
//
// Note on utilization: Exact derives a per-station utilization vector
// U_k = X(N)·S_k; Approximate intentionally does not report one. The
// asymmetry mirrors the underlying model formulation and is kept so the
// two result shapes state exactly what each solver guarantees.
//
// Errors:
//   - All user-triggered failures return package sentinels (errors.go),
//     matched via errors.Is. A non-converged Approximate run returns its
//     last estimate together with ErrNotConverged — a warning-level
//     condition, not a loss of the result.
package mva
