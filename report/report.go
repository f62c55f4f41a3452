package report

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sakikout/ADS/ctmc"
	"github.com/sakikout/ADS/mva"
)

var (
	// ErrRaggedRows indicates trajectory rows with inconsistent vector
	// lengths: they cannot share one table header.
	ErrRaggedRows = errors.New("report: trajectory rows have inconsistent station counts")

	// ErrNilResult indicates a nil solver result.
	ErrNilResult = errors.New("report: result must be non-nil")

	// ErrHistoryMismatch indicates throughput and response histories of
	// different lengths.
	ErrHistoryMismatch = errors.New("report: history sequences differ in length")
)

// Collector accumulates observer rows from an mva solver run. The zero
// value is ready to use; pass Observe as the OnLevel/OnIteration hook.
type Collector struct {
	rows []mva.Level
}

// Observe appends one trajectory row. Safe to hand directly to the
// solver hooks: rows arrive with copied vectors.
func (c *Collector) Observe(row mva.Level) {
	c.rows = append(c.rows, row)
}

// Rows returns the collected trajectory in arrival order.
func (c *Collector) Rows() []mva.Level {
	return c.rows
}

// Table renders a solver trajectory as an aligned text table. indexName
// labels the first column: "n" for a per-population trajectory (Exact),
// "iter" for a per-iteration one (Approximate). One column pair
// (R_k, N_k) is emitted per station.
//
// Errors: ErrRaggedRows when rows disagree on the station count; any
// write error from w is returned as-is.
func Table(w io.Writer, indexName string, rows []mva.Level) error {
	if len(rows) == 0 {
		return nil
	}

	// All rows must agree on the station count.
	stations := len(rows[0].Residence)
	for _, row := range rows {
		if len(row.Residence) != stations || len(row.QueueLength) != stations {
			return ErrRaggedRows
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	// Header: index | X | R | R_1.. | N_1..
	fmt.Fprintf(tw, "%s\tX\tR\t", indexName)
	for k := 1; k <= stations; k++ {
		fmt.Fprintf(tw, "R_%d\t", k)
	}
	for k := 1; k <= stations; k++ {
		fmt.Fprintf(tw, "N_%d\t", k)
	}
	fmt.Fprintln(tw)

	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t", row.Index, row.Throughput, row.ResponseTime)
		for _, r := range row.Residence {
			fmt.Fprintf(tw, "%.4f\t", r)
		}
		for _, q := range row.QueueLength {
			fmt.Fprintf(tw, "%.4f\t", q)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// Summary renders the final metrics of an Exact run, one line per
// figure, utilization included.
func Summary(w io.Writer, res *mva.ExactResult) error {
	if res == nil {
		return ErrNilResult
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "X\t%.4f\t\n", res.Throughput)
	fmt.Fprintf(tw, "R\t%.4f\t\n", res.ResponseTime)
	for k, u := range res.Utilization {
		fmt.Fprintf(tw, "U_%d\t%.4f\t\n", k+1, u)
	}

	return tw.Flush()
}

// StationaryTable renders a stationary distribution: one line per state
// in enumeration order, then the busy probability of the shared
// resource.
func StationaryTable(w io.Writer, res *ctmc.Result) error {
	if res == nil {
		return ErrNilResult
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "state\tp\t\n")
	for _, sp := range res.Probabilities {
		fmt.Fprintf(tw, "(%d,%d,%d)\t%.6f\t\n", sp.State.CPU, sp.State.Fast, sp.State.Slow, sp.P)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "P(busy) = %.6f\n", res.BusyProbability)

	return err
}
