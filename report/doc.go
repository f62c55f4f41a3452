// Package report renders solver results for people: aligned text tables
// of MVA trajectories and stationary distributions, and a CSV export of
// a trajectory against its asymptotic envelopes.
//
// The package is strictly downstream of the solvers. It consumes result
// structures and observer rows read-only and never feeds anything back;
// the numeric core stays pure. Attach a Collector to an mva observer
// hook to gather rows, then hand them to Table:
//
//	var col report.Collector
//	opts := mva.DefaultExactOptions()
//	opts.OnLevel = col.Observe
//	res, _ := mva.Exact(10, demands, &opts)
//	_ = report.Table(os.Stdout, "n", col.Rows())
//
// WriteCSV pairs a trajectory with bounds.Limits so the optimistic and
// pessimistic envelopes land in the same file, ready for plotting.
package report
