package ctmc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Stationary — stationary distribution of the contention chain.
//
// Description:
//
//	Builds the n×n rate matrix M over the supplied state space, encodes
//	the normalization constraint Σπ = 1 in place of the last (redundant)
//	balance equation, solves M·π = b densely and derives the busy
//	probability of the shared resource.
//
// Algorithm Outline:
//  1. Validate params and state space; build the state→index map
//     (O(1) destination lookup, duplicate detection for free).
//  2. For each state i = (c,f,s):
//     a. M[i,i] = cpu·[c>0] + fast·[f>0] + slow·[s>0]  (total outflow)
//     b. M[i,j] −= rate for each legal transition i→j whose destination
//     j exists in the state space (absent destinations are skipped).
//  3. Overwrite row n−1 of M with ones and b[n−1] with 1.
//  4. Solve M·π = b; any solver failure is ErrSingularModel.
//  5. BusyProbability = Σ π[i] over states with c > 0.
//
// The rate attached to each transition direction follows the model as
// formulated: c-increasing moves carry half the CPU rate, c-decreasing
// moves carry the destination device's rate. See Enumerate for a state
// space closed under these rules by construction.
//
// Complexity:
//
//	Time   = O(n³) (dense solve dominates)
//	Memory = O(n²)
//
// Errors:
//   - ErrBadCap, ErrNegativeRate, ErrEmptyStateSpace, ErrDuplicateState.
//   - ErrSingularModel (wrapped with the numeric cause) when the matrix
//     is singular beyond the expected one-row deficiency.
func Stationary(states []State, p Params) (*Result, error) {
	// 1) Validate parameters first, then the state space.
	if p.MaxPerResource < 1 {
		return nil, ErrBadCap
	}
	if p.CPURate < 0 || p.FastRate < 0 || p.SlowRate < 0 {
		return nil, ErrNegativeRate
	}
	n := len(states)
	if n == 0 {
		return nil, ErrEmptyStateSpace
	}

	// 2) Build the lookup index once; O(1) per destination afterwards.
	index := make(map[State]int, n)
	for i, st := range states {
		if _, dup := index[st]; dup {
			return nil, fmt.Errorf("%w: %+v", ErrDuplicateState, st)
		}
		index[st] = i
	}

	// 3) Assemble the rate matrix and RHS.
	m := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	half := 0.5 * p.CPURate

	var (
		out  float64
		j    int
		ok   bool
		next State
	)
	for i, st := range states {
		// 3a) Diagonal: total outflow of state i.
		out = 0
		if st.CPU > 0 {
			out += p.CPURate
		}
		if st.Fast > 0 {
			out += p.FastRate
		}
		if st.Slow > 0 {
			out += p.SlowRate
		}
		m.Set(i, i, out)

		// 3b) Fast device → CPU, at half the CPU rate.
		if st.CPU < p.MaxPerResource && st.Fast > 0 {
			next = State{CPU: st.CPU + 1, Fast: st.Fast - 1, Slow: st.Slow}
			if j, ok = index[next]; ok {
				m.Set(i, j, m.At(i, j)-half)
			}
		}

		// 3c) Slow device → CPU, at half the CPU rate.
		if st.CPU < p.MaxPerResource && st.Slow > 0 {
			next = State{CPU: st.CPU + 1, Fast: st.Fast, Slow: st.Slow - 1}
			if j, ok = index[next]; ok {
				m.Set(i, j, m.At(i, j)-half)
			}
		}

		// 3d) CPU → fast device, at the fast rate.
		if st.CPU > 0 && st.Fast < p.MaxPerResource {
			next = State{CPU: st.CPU - 1, Fast: st.Fast + 1, Slow: st.Slow}
			if j, ok = index[next]; ok {
				m.Set(i, j, m.At(i, j)-p.FastRate)
			}
		}

		// 3e) CPU → slow device, at the slow rate.
		if st.CPU > 0 && st.Slow < p.MaxPerResource {
			next = State{CPU: st.CPU - 1, Fast: st.Fast, Slow: st.Slow + 1}
			if j, ok = index[next]; ok {
				m.Set(i, j, m.At(i, j)-p.SlowRate)
			}
		}
	}

	// 4) Replace the redundant last balance equation with Σπ = 1.
	for j = 0; j < n; j++ {
		m.Set(n-1, j, 1.0)
	}
	b.SetVec(n-1, 1.0)

	// 5) Dense solve. Any failure here means the chain is malformed
	//    (disconnected state space, zero rates everywhere, ...).
	var pi mat.VecDense
	if err := pi.SolveVec(m, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularModel, err)
	}

	// 6) Package probabilities in input order; accumulate busy mass.
	res := &Result{Probabilities: make([]StateProbability, n)}
	for i, st := range states {
		res.Probabilities[i] = StateProbability{State: st, P: pi.AtVec(i)}
		if st.CPU > 0 {
			res.BusyProbability += pi.AtVec(i)
		}
	}

	return res, nil
}
