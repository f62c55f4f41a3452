package bounds

import (
	"errors"
	"math"
)

var (
	// ErrNoDemands indicates an empty demand vector: no network to bound.
	ErrNoDemands = errors.New("bounds: demand vector must be non-empty")

	// ErrNegativeDemand indicates a service demand below zero.
	ErrNegativeDemand = errors.New("bounds: service demands must be >= 0")

	// ErrZeroDemand indicates an all-zero demand vector: the saturation
	// point (D+Z)/D_max is undefined.
	ErrZeroDemand = errors.New("bounds: at least one service demand must be > 0")

	// ErrNegativeThinkTime indicates a think time below zero.
	ErrNegativeThinkTime = errors.New("bounds: think time must be >= 0")
)

// Limits summarizes the asymptotic structure of a closed network.
//
// Fields:
//   - TotalDemand — D = Σ_k D_k.
//   - MaxDemand   — D_max, the demand of the bottleneck station.
//   - Bottleneck  — index of the bottleneck station (first on ties).
//   - ThinkTime   — Z, carried so the per-population evaluators are
//     self-contained.
//   - Saturation  — N* = (D+Z)/D_max, where the asymptotes cross.
type Limits struct {
	TotalDemand float64
	MaxDemand   float64
	Bottleneck  int
	ThinkTime   float64
	Saturation  float64
}

// Analyze computes the asymptotic limits of the network with the given
// per-station service demands and think time.
//
// Errors:
//   - ErrNoDemands         — empty demand vector.
//   - ErrNegativeDemand    — any demand < 0.
//   - ErrZeroDemand        — all demands zero (N* undefined).
//   - ErrNegativeThinkTime — thinkTime < 0.
func Analyze(demands []float64, thinkTime float64) (Limits, error) {
	if len(demands) == 0 {
		return Limits{}, ErrNoDemands
	}
	if thinkTime < 0 {
		return Limits{}, ErrNegativeThinkTime
	}

	lim := Limits{ThinkTime: thinkTime, Bottleneck: 0}
	for k, d := range demands {
		if d < 0 {
			return Limits{}, ErrNegativeDemand
		}
		lim.TotalDemand += d
		// Strict comparison keeps the first station on ties.
		if d > lim.MaxDemand {
			lim.MaxDemand = d
			lim.Bottleneck = k
		}
	}
	if lim.MaxDemand == 0 {
		return Limits{}, ErrZeroDemand
	}
	lim.Saturation = (lim.TotalDemand + thinkTime) / lim.MaxDemand

	return lim, nil
}

// OptimisticThroughput is the upper throughput envelope at population n:
// min(1/D_max, n/(D+Z)).
func (l Limits) OptimisticThroughput(n int) float64 {
	return math.Min(1.0/l.MaxDemand, float64(n)/(l.TotalDemand+l.ThinkTime))
}

// PessimisticThroughput is the lower throughput envelope at population
// n: n/(n·D+Z). Degenerate zero denominator (n=0 with Z=0) yields 0.
func (l Limits) PessimisticThroughput(n int) float64 {
	denom := float64(n)*l.TotalDemand + l.ThinkTime
	if denom == 0 {
		return 0
	}

	return float64(n) / denom
}

// OptimisticResponse is the lower response-time envelope at population
// n: max(D, n·D_max − Z).
func (l Limits) OptimisticResponse(n int) float64 {
	return math.Max(l.TotalDemand, float64(n)*l.MaxDemand-l.ThinkTime)
}

// PessimisticResponse is the upper response-time envelope at population
// n: n·D.
func (l Limits) PessimisticResponse(n int) float64 {
	return float64(n) * l.TotalDemand
}
