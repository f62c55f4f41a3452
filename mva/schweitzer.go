package mva

import "math"

// Approximate — Bard–Schweitzer approximate MVA for a single target
// population.
//
// Description:
//
//	Instead of recursing over population levels, Approximate iterates a
//	fixed point on the queue-length vector. Schweitzer's approximation
//	replaces the exact "network with one customer removed" by scaling
//	the current estimate with prop = (n−1)/n: the queue a generic
//	customer finds on arrival excludes (a population-proportional share
//	of) itself. Each sweep costs O(stations) regardless of n.
//
// Algorithm Outline:
//  1. Validate stations == len(demands), then the shared input checks.
//  2. n = 0: return the all-zero result immediately, no iteration.
//  3. Seed N_k = n/stations for every station (uniform spread).
//  4. For i = 1..MaxIterations:
//     a. Snapshot N_k_prev ← N_k.
//     b. R_k   = S_k · (1 + prop · N_k_prev)
//     c. R_tot = Σ R_k; throughput and response time with the same
//     zero-denominator degenerate branch as Exact.
//     d. N_k   = X · R_k
//     e. Append (X, R) to the per-iteration history.
//     f. Stop when max_k |N_k − N_k_prev| < Tolerance.
//  5. Budget exhausted without meeting Tolerance: return the last
//     estimate with Converged=false AND ErrNotConverged.
//
// Exactness at n = 1: prop = 0 collapses step 4b to R_k = S_k, which is
// the exact MVA answer — the first sweep already is the fixed point.
//
// Complexity:
//
//	Time   = O(MaxIterations · stations) worst case
//	Memory = O(iterations + stations)
//
// Errors:
//   - ErrStationCountMismatch — stations ≠ len(demands).
//   - ErrNegativePopulation   — n < 0.
//   - ErrNegativeDemand       — any S_k < 0.
//   - ErrNegativeThinkTime    — Z < 0.
//   - ErrBadIterationBudget   — MaxIterations < 1.
//   - ErrBadTolerance         — Tolerance ≤ 0.
//   - ErrNotConverged         — budget exhausted; result still returned.
func Approximate(n, stations int, demands []float64, opts *ApproxOptions) (*ApproxResult, error) {
	// 1) Apply options or defaults.
	cfg := DefaultApproxOptions()
	if opts != nil {
		cfg = *opts
	}

	// 2) Validate inputs. The station-count contract is checked first:
	//    it guards every per-station loop below.
	if stations != len(demands) {
		return nil, ErrStationCountMismatch
	}
	if n < 0 {
		return nil, ErrNegativePopulation
	}
	if err := validateDemands(demands); err != nil {
		return nil, err
	}
	if cfg.ThinkTime < 0 {
		return nil, ErrNegativeThinkTime
	}
	if cfg.MaxIterations < 1 {
		return nil, ErrBadIterationBudget
	}
	if cfg.Tolerance <= 0 {
		return nil, ErrBadTolerance
	}

	// 3) Empty network at population zero: nothing to iterate.
	res := &ApproxResult{
		Residence:         make([]float64, stations),
		QueueLength:       make([]float64, stations),
		HistoryThroughput: []float64{},
		HistoryResponse:   []float64{},
	}
	if n == 0 {
		res.Converged = true

		return res, nil
	}

	// 4) Seed: spread the population uniformly across stations.
	for i := 0; i < stations; i++ {
		res.QueueLength[i] = float64(n) / float64(stations)
	}
	prop := float64(n-1) / float64(n)

	// 5) Fixed-point sweeps.
	var (
		iter  int
		i     int
		rTot  float64
		x     float64
		rSys  float64
		denom float64
		delta float64
		prev  = make([]float64, stations)
	)
	for iter = 1; iter <= cfg.MaxIterations; iter++ {
		// 5a) Snapshot the previous estimate.
		copy(prev, res.QueueLength)

		// 5b) Residence times under the self-exclusion approximation.
		rTot = 0
		for i = 0; i < stations; i++ {
			res.Residence[i] = demands[i] * (1.0 + prop*prev[i])
			rTot += res.Residence[i]
		}

		// 5c) Throughput and response time, degenerate branch as in Exact.
		denom = cfg.ThinkTime + rTot
		if denom == 0 {
			x = 0
			rSys = 0
		} else {
			x = float64(n) / denom
			rSys = float64(n)/x - cfg.ThinkTime
		}

		// 5d) New queue-length estimate (Little's law).
		for i = 0; i < stations; i++ {
			res.QueueLength[i] = x * res.Residence[i]
		}

		// 5e) Record the iteration and notify the observer, if any.
		res.HistoryThroughput = append(res.HistoryThroughput, x)
		res.HistoryResponse = append(res.HistoryResponse, rSys)
		if cfg.OnIteration != nil {
			cfg.OnIteration(levelRow(iter, x, rSys, res.Residence, res.QueueLength))
		}

		res.Throughput = x
		res.ResponseTime = rSys
		res.Iterations = iter

		// 5f) Convergence: largest absolute queue-length movement.
		delta = 0
		for i = 0; i < stations; i++ {
			delta = math.Max(delta, math.Abs(res.QueueLength[i]-prev[i]))
		}
		if delta < cfg.Tolerance {
			res.Converged = true

			return res, nil
		}
	}

	// 6) Budget exhausted: surface the warning, keep the estimate.
	return res, ErrNotConverged
}
