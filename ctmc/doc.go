// Package ctmc solves a finite continuous-time Markov chain modeling
// contention among a shared CPU-like resource and two downstream
// devices (one fast, one slow).
//
// 🚀 What does it compute?
//
//	Given a finite, ordered state space of occupancy tuples (c, f, s) —
//	jobs present at the CPU, the fast device and the slow device — and
//	the three service rates, Stationary builds the generator (rate)
//	matrix, replaces its structurally redundant last balance equation
//	with the normalization constraint Σπ = 1, and solves the dense
//	linear system for the stationary distribution π. From π it derives
//	the probability that the shared resource is busy.
//
// Transition rules (per state (c, f, s), cap max_r on every resource):
//   - (c,f,s) → (c+1,f−1,s) at rate cpu/2, when c < max_r and f > 0
//   - (c,f,s) → (c+1,f,s−1) at rate cpu/2, when c < max_r and s > 0
//   - (c,f,s) → (c−1,f+1,s) at rate fast,  when c > 0 and f < max_r
//   - (c,f,s) → (c−1,f,s+1) at rate slow,  when c > 0 and s < max_r
//
// The diagonal holds each state's total outflow: cpu·[c>0] + fast·[f>0]
// + slow·[s>0]. Transitions whose destination is absent from the
// supplied state space are skipped uniformly.
//
// Contract: the caller supplies the state space — ordered and
// deduplicated, closed under the rules above. Stationary verifies
// deduplication (free while building its index) but trusts closure;
// Enumerate produces a space that is closed by construction.
//
// ⚙️ Usage:
//
//	import "github.com/sakikout/ADS/ctmc"
//
//	states := ctmc.Enumerate(4, 2) // 4 jobs, at most 2 per resource
//	res, err := ctmc.Stationary(states, ctmc.Params{
//	  MaxPerResource: 2,
//	  CPURate:        10,
//	  FastRate:       8,
//	  SlowRate:       3,
//	})
//	// res.BusyProbability, res.Probabilities...
//
// Complexity: O(n) matrix build plus O(n³) dense solve for n states.
// Deterministic: identical inputs produce identical π.
package ctmc
