// Package ctmc defines the occupancy state tuple, solver parameters and
// result types for the stationary-distribution solver.
package ctmc

// State is an occupancy tuple: jobs present at the shared CPU-like
// resource, the fast device and the slow device. States are compared by
// value; the zero State is the empty system.
type State struct {
	CPU  int
	Fast int
	Slow int
}

// Params configures Stationary.
//
// Fields:
//   - MaxPerResource — occupancy cap max_r applied to every resource;
//     gates which transitions are legal.
//   - CPURate        — service rate of the shared resource. Completions
//     split evenly (rate/2 each) toward the two devices.
//   - FastRate       — service rate of the fast device.
//   - SlowRate       — service rate of the slow device.
type Params struct {
	MaxPerResource int
	CPURate        float64
	FastRate       float64
	SlowRate       float64
}

// StateProbability pairs one enumerated state with its stationary
// probability. Result.Probabilities preserves the input enumeration
// order.
type StateProbability struct {
	State State
	P     float64
}

// Result holds the stationary solution.
//
// Invariants:
//   - Σ Probabilities[i].P == 1 within numerical tolerance.
//   - Every P is non-negative up to numerical noise.
//   - BusyProbability == Σ P over states with CPU > 0.
type Result struct {
	BusyProbability float64
	Probabilities   []StateProbability
}
