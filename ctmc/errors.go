// Package ctmc: sentinel error set.
// All user-triggered failures return these sentinels; tests match them
// via errors.Is. Solvability failures wrap ErrSingularModel with the
// underlying numeric detail.

package ctmc

import "errors"

var (
	// ErrEmptyStateSpace indicates a nil or zero-length state space.
	ErrEmptyStateSpace = errors.New("ctmc: state space must be non-empty")

	// ErrDuplicateState indicates the supplied state space violates the
	// deduplication contract (detected while building the lookup index).
	ErrDuplicateState = errors.New("ctmc: duplicate state in state space")

	// ErrBadCap indicates a per-resource occupancy cap below one.
	ErrBadCap = errors.New("ctmc: per-resource cap must be >= 1")

	// ErrNegativeRate indicates a negative service rate.
	ErrNegativeRate = errors.New("ctmc: service rates must be >= 0")

	// ErrSingularModel indicates the rate matrix stayed singular (or
	// numerically degenerate) beyond the expected one-row deficiency —
	// typically a disconnected or malformed state space. Fatal: the
	// caller must correct the state space or the rates; no retry.
	ErrSingularModel = errors.New("ctmc: rate matrix is singular beyond the normalization fix-up")
)
