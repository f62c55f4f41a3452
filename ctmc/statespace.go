package ctmc

// Enumerate — deterministic state-space generation for the contention
// chain.
//
// Description:
//
//	Enumerate lists every occupancy tuple (c, f, s) that conserves the
//	job count (c + f + s = jobs) while respecting the per-resource cap
//	(each component in [0, maxPerResource]). The listing is ordered
//	lexicographically by (c, f) — s is determined by the other two — and
//	contains no duplicates, so it satisfies the Stationary input
//	contract directly.
//
// Closure: every transition legal under the rules in Stationary moves
// one job between the CPU and a device, conserving the total and never
// exceeding the cap at the destination (the c < max_r / f < max_r /
// s < max_r guards). Every reachable destination therefore conserves
// jobs under the same cap and is itself enumerated.
//
// Returns nil when no tuple satisfies the bounds (jobs < 0,
// maxPerResource < 0, or jobs > 3·maxPerResource).
//
// Complexity: O(maxPerResource²) time, O(|states|) memory.
func Enumerate(jobs, maxPerResource int) []State {
	if jobs < 0 || maxPerResource < 0 || jobs > 3*maxPerResource {
		return nil
	}

	var (
		states []State
		c, f   int
		s      int
	)
	for c = 0; c <= maxPerResource && c <= jobs; c++ {
		for f = 0; f <= maxPerResource && c+f <= jobs; f++ {
			s = jobs - c - f
			if s > maxPerResource {
				continue
			}
			states = append(states, State{CPU: c, Fast: f, Slow: s})
		}
	}

	return states
}
