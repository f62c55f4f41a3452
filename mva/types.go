// Package mva defines options, observer rows and result types for the
// Exact and Approximate (Bard–Schweitzer) solvers.
package mva

// Default fixed-point controls for Approximate, matching the classical
// Bard–Schweitzer formulation.
const (
	// DefaultMaxIterations bounds the fixed-point sweep count.
	DefaultMaxIterations = 1000

	// DefaultTolerance is the absolute convergence threshold applied to
	// max_k |N_k(i) − N_k(i−1)|.
	DefaultTolerance = 1e-6
)

// Level is one row of a solver trajectory: the metrics computed at a
// single population level (Exact) or a single fixed-point iteration
// (Approximate). Observer hooks receive Levels in strictly increasing
// Index order; the vectors are copies, safe to retain.
//
// Fields:
//   - Index        — population level n (Exact) or iteration i (Approximate), 1-based.
//   - Throughput   — system throughput X at this row.
//   - ResponseTime — system response time R at this row (think time excluded).
//   - Residence    — per-station residence times R_k at this row.
//   - QueueLength  — per-station mean queue lengths N_k at this row.
type Level struct {
	Index        int
	Throughput   float64
	ResponseTime float64
	Residence    []float64
	QueueLength  []float64
}

// ExactOptions configures the Exact solver.
//
// Fields:
//   - ThinkTime — mean delay Z spent outside all stations between service
//     completions. Zero means no think stage.
//   - OnLevel   — optional observer invoked once per population level with
//     a fully computed Level row. Purely presentational: the hook must not
//     feed anything back into the solver. Nil disables observation.
type ExactOptions struct {
	ThinkTime float64
	OnLevel   func(Level)
}

// DefaultExactOptions returns ExactOptions with zero think time and no
// observer.
func DefaultExactOptions() ExactOptions {
	return ExactOptions{}
}

// ApproxOptions configures the Approximate (Bard–Schweitzer) solver.
//
// Fields:
//   - ThinkTime     — mean think delay Z, as in ExactOptions.
//   - MaxIterations — fixed-point sweep budget; exhausting it yields
//     ErrNotConverged alongside the last estimate.
//   - Tolerance     — absolute threshold on max_k |N_k − N_k_prev|.
//   - OnIteration   — optional per-iteration observer, same contract as
//     ExactOptions.OnLevel but indexed by iteration, not population.
type ApproxOptions struct {
	ThinkTime     float64
	MaxIterations int
	Tolerance     float64
	OnIteration   func(Level)
}

// DefaultApproxOptions returns ApproxOptions with zero think time,
// DefaultMaxIterations and DefaultTolerance.
func DefaultApproxOptions() ApproxOptions {
	return ApproxOptions{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// ExactResult holds the metrics of an Exact run at the target population,
// plus the full per-level history.
//
// Invariants (for population n ≥ 1):
//   - QueueLength[k] == Throughput·Residence[k] (Little's law, per station).
//   - ResponseTime == Σ_k Residence[k] whenever total demand is non-zero.
//   - len(HistoryThroughput) == len(HistoryResponse) == n.
type ExactResult struct {
	Throughput        float64   // X(N)
	Residence         []float64 // R_k(N)
	QueueLength       []float64 // N_k(N)
	Utilization       []float64 // U_k = X(N)·S_k
	ResponseTime      float64   // R(N), think time excluded
	HistoryThroughput []float64 // X(n) for n = 1..N
	HistoryResponse   []float64 // R(n) for n = 1..N
}

// ApproxResult holds the metrics of an Approximate run, plus the
// per-iteration history. It deliberately carries no utilization vector;
// see the package documentation.
type ApproxResult struct {
	Throughput        float64   // X at the last iteration
	Residence         []float64 // R_k at the last iteration
	QueueLength       []float64 // N_k at the last iteration
	ResponseTime      float64   // R at the last iteration, think time excluded
	HistoryThroughput []float64 // X per iteration, in order
	HistoryResponse   []float64 // R per iteration, in order
	Converged         bool      // true iff the tolerance criterion was met
	Iterations        int       // iterations actually run (== history length)
}
