// Package mva: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the mva
// package. All solvers return these sentinels and tests check them via
// errors.Is. No solver panics on user-triggered error conditions.

package mva

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// station-count mismatch -> negative population -> negative demand
// -> negative think time -> iteration budget -> tolerance.

var (
	// ErrStationCountMismatch is returned by Approximate when the declared
	// station count does not equal len(demands).
	ErrStationCountMismatch = errors.New("mva: station count does not match demand vector length")

	// ErrNegativePopulation indicates a population below zero. Zero is legal
	// and yields the all-zero degenerate result.
	ErrNegativePopulation = errors.New("mva: population must be >= 0")

	// ErrNegativeDemand indicates a service demand below zero. Zero demands
	// are legal (pure delay stations contribute nothing).
	ErrNegativeDemand = errors.New("mva: service demand must be >= 0")

	// ErrNegativeThinkTime indicates a think time below zero.
	ErrNegativeThinkTime = errors.New("mva: think time must be >= 0")

	// ErrBadIterationBudget indicates MaxIterations < 1 on Approximate.
	ErrBadIterationBudget = errors.New("mva: iteration budget must be >= 1")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("mva: tolerance must be > 0")

	// ErrNotConverged is returned by Approximate when the iteration budget
	// is exhausted before the fixed point settles within tolerance. The
	// accompanying result holds the last computed estimate and has
	// Converged=false; callers may keep it as an approximation.
	ErrNotConverged = errors.New("mva: fixed-point iteration did not converge within budget")
)
