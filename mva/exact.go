package mva

// Exact — exact Mean Value Analysis for a closed single-class network.
//
// Description:
//
//	Exact walks the population up from 1 to n, applying the Arrival
//	Theorem at each level: a customer arriving at station k sees the
//	mean backlog left by the network with one customer fewer.
//
// Algorithm Outline:
//  1. Initialize N_k(0) = 0 for every station k.
//  2. For pop = 1..n:
//     a. R_k(pop)   = S_k · (1 + N_k(pop−1))            (Arrival Theorem)
//     b. R_tot(pop) = Σ_k R_k(pop)
//     X(pop)     = pop / (Z + R_tot(pop)), or 0 when the denominator
//     is zero (all demands zero and no think time);
//     R(pop)     = pop/X(pop) − Z in the non-degenerate branch.
//     c. N_k(pop)   = X(pop) · R_k(pop)                  (Little's law)
//     d. Append (X(pop), R(pop)) to the history sequences.
//  3. Derive U_k = X(n) · S_k.
//
// Complexity:
//
//	Time   = O(n·K)
//	Memory = O(n + K)
//
// Errors:
//   - ErrNegativePopulation — n < 0.
//   - ErrNegativeDemand     — any S_k < 0.
//   - ErrNegativeThinkTime  — Z < 0.
//
// n = 0 is legal and returns the all-zero result with empty histories.
func Exact(n int, demands []float64, opts *ExactOptions) (*ExactResult, error) {
	// 1) Apply options or defaults.
	cfg := DefaultExactOptions()
	if opts != nil {
		cfg = *opts
	}

	// 2) Validate inputs, fail fast in documented priority order.
	if n < 0 {
		return nil, ErrNegativePopulation
	}
	if err := validateDemands(demands); err != nil {
		return nil, err
	}
	if cfg.ThinkTime < 0 {
		return nil, ErrNegativeThinkTime
	}

	// 3) Allocate per-station state and histories.
	k := len(demands)
	res := &ExactResult{
		Residence:         make([]float64, k),
		QueueLength:       make([]float64, k),
		Utilization:       make([]float64, k),
		HistoryThroughput: make([]float64, 0, n),
		HistoryResponse:   make([]float64, 0, n),
	}

	// 4) Population recursion. res.QueueLength holds N_k(pop−1) when each
	//    level begins and N_k(pop) when it ends.
	var (
		pop   int
		i     int
		rTot  float64
		x     float64
		rSys  float64
		denom float64
	)
	for pop = 1; pop <= n; pop++ {
		// 4a) Residence times from the backlog of the previous level.
		rTot = 0
		for i = 0; i < k; i++ {
			res.Residence[i] = demands[i] * (1.0 + res.QueueLength[i])
			rTot += res.Residence[i]
		}

		// 4b) Throughput and system response time, with the degenerate
		//     zero-denominator branch (all demands zero, no think time).
		denom = cfg.ThinkTime + rTot
		if denom == 0 {
			x = 0
			rSys = 0
		} else {
			x = float64(pop) / denom
			rSys = float64(pop)/x - cfg.ThinkTime
		}

		// 4c) Queue lengths for this level (Little's law, per station).
		for i = 0; i < k; i++ {
			res.QueueLength[i] = x * res.Residence[i]
		}

		// 4d) Record the trajectory and notify the observer, if any.
		res.HistoryThroughput = append(res.HistoryThroughput, x)
		res.HistoryResponse = append(res.HistoryResponse, rSys)
		if cfg.OnLevel != nil {
			cfg.OnLevel(levelRow(pop, x, rSys, res.Residence, res.QueueLength))
		}

		res.Throughput = x
		res.ResponseTime = rSys
	}

	// 5) Final utilization per station.
	for i = 0; i < k; i++ {
		res.Utilization[i] = res.Throughput * demands[i]
	}

	return res, nil
}

// validateDemands rejects negative service demands. Zero entries are
// legal: a zero-demand station never queues and never contributes.
func validateDemands(demands []float64) error {
	for _, d := range demands {
		if d < 0 {
			return ErrNegativeDemand
		}
	}

	return nil
}

// levelRow builds an observer row. The vectors are copied so hooks may
// retain rows across levels.
func levelRow(index int, x, rSys float64, residence, queueLen []float64) Level {
	row := Level{
		Index:        index,
		Throughput:   x,
		ResponseTime: rSys,
		Residence:    make([]float64, len(residence)),
		QueueLength:  make([]float64, len(queueLen)),
	}
	copy(row.Residence, residence)
	copy(row.QueueLength, queueLen)

	return row
}
