// Package bounds derives asymptotic performance bounds for a closed
// single-class network from its service demands and think time.
//
// Operational analysis gives hard envelopes that hold for any closed
// network, without solving it:
//
//   - Throughput, optimistic:  X(n) ≤ min(1/D_max, n/(D+Z))
//     (the bottleneck caps throughput; at light load customers flow
//     unimpeded through total demand D plus think time Z).
//   - Throughput, pessimistic: X(n) ≥ n/(n·D+Z)
//     (the worst case queues every customer behind every other one).
//   - Response, optimistic:    R(n) ≥ max(D, n·D_max − Z)
//   - Response, pessimistic:   R(n) ≤ n·D
//
// The two throughput asymptotes cross at the saturation point
// N* = (D+Z)/D_max — below N* the network behaves like a delay line,
// above it the bottleneck dominates. Analyze also identifies which
// station is the bottleneck.
//
// These figures are the companion to the mva solvers: MVA trajectories
// plotted between the bounds show how close the real system runs to its
// envelopes (see report.WriteCSV).
package bounds
