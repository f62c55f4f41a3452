// Package ads is an analytic performance-modeling toolkit for closed
// computer systems: Mean Value Analysis for closed queueing networks and
// a continuous-time Markov chain of CPU/device contention.
//
// 🚀 What is ads?
//
//	A small, pure-Go library for capacity planning. Feed it per-station
//	service demands (or service rates) and a population or occupancy
//	bound; it returns throughput, residence times, queue lengths,
//	utilization and stationary probabilities:
//		• mva    — exact MVA recursion and the Bard–Schweitzer
//		  approximate fixed point for single-class closed networks
//		• ctmc   — generator-matrix construction and dense stationary
//		  solve for a CPU + fast/slow device contention chain
//		• bounds — operational-analysis envelopes and saturation point
//		• report — text tables and CSV export of trajectories
//
// ✨ Why choose ads?
//
//   - Pure functions — every solver is deterministic, side-effect-free
//     and safe to call concurrently with different inputs
//   - Full trajectories — per-population and per-iteration histories,
//     not just the final figure
//   - Observer hooks — stream rows into your own reporting without
//     touching solver state
//
// Quick start:
//
//	import "github.com/sakikout/ADS/mva"
//
//	res, err := mva.Exact(20, []float64{0.04, 0.03, 0.06}, nil)
//	if err != nil { ... }
//	fmt.Println(res.Throughput, res.Utilization)
//
// The cmd/ads command wraps all of it behind flags.
package ads
