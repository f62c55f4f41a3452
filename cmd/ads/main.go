// Command ads evaluates closed computer-system models from the command
// line: exact and approximate MVA for a closed queueing network, and
// the stationary distribution of the CPU/fast/slow contention chain.
//
// Usage:
//
//	ads -model exact  -demands 0.04,0.03,0.06 -n 20 -z 5 [-trace] [-csv out.csv]
//	ads -model approx -demands 0.04,0.03,0.06 -n 20 -z 5 [-tol 1e-6] [-max-iter 1000]
//	ads -model ctmc   -jobs 4 -cap 2 -cpu-rate 10 -fast-rate 8 -slow-rate 3
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/sakikout/ADS/bounds"
	"github.com/sakikout/ADS/ctmc"
	"github.com/sakikout/ADS/mva"
	"github.com/sakikout/ADS/report"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	var (
		model   = flag.String("model", "exact", "solver: exact, approx or ctmc")
		demands = flag.String("demands", "", "comma-separated per-station service demands (exact/approx)")
		n       = flag.Int("n", 1, "customer population (exact/approx)")
		z       = flag.Float64("z", 0, "think time (exact/approx)")
		tol     = flag.Float64("tol", mva.DefaultTolerance, "convergence tolerance (approx)")
		maxIter = flag.Int("max-iter", mva.DefaultMaxIterations, "iteration budget (approx)")
		trace   = flag.Bool("trace", false, "print the full per-level/per-iteration table")
		csvPath = flag.String("csv", "", "write trajectory + asymptotic bounds to this CSV file (exact)")

		jobs     = flag.Int("jobs", 0, "circulating jobs (ctmc)")
		maxR     = flag.Int("cap", 1, "per-resource occupancy cap (ctmc)")
		cpuRate  = flag.Float64("cpu-rate", 0, "CPU service rate (ctmc)")
		fastRate = flag.Float64("fast-rate", 0, "fast device service rate (ctmc)")
		slowRate = flag.Float64("slow-rate", 0, "slow device service rate (ctmc)")
	)
	flag.Parse()

	var err error
	switch *model {
	case "exact":
		err = runExact(*demands, *n, *z, *trace, *csvPath)
	case "approx":
		err = runApprox(*demands, *n, *z, *tol, *maxIter, *trace)
	case "ctmc":
		err = runCTMC(*jobs, *maxR, *cpuRate, *fastRate, *slowRate)
	default:
		err = fmt.Errorf("unknown model %q (want exact, approx or ctmc)", *model)
	}
	if err != nil {
		slog.Error("run failed", "model", *model, "err", err)
		os.Exit(1)
	}
}

// runExact solves the exact MVA recursion, prints the summary (and the
// trajectory when asked), then optionally exports the CSV of trajectory
// versus asymptotic envelopes.
func runExact(demandList string, n int, z float64, trace bool, csvPath string) error {
	demands, err := parseDemands(demandList)
	if err != nil {
		return err
	}
	slog.Info("exact MVA", "stations", len(demands), "n", n, "z", z)

	var col report.Collector
	opts := mva.DefaultExactOptions()
	opts.ThinkTime = z
	if trace {
		opts.OnLevel = col.Observe
	}

	res, err := mva.Exact(n, demands, &opts)
	if err != nil {
		return err
	}

	if trace {
		if err = report.Table(os.Stdout, "n", col.Rows()); err != nil {
			return err
		}
	}
	if err = report.Summary(os.Stdout, res); err != nil {
		return err
	}

	if csvPath == "" {
		return nil
	}
	lim, err := bounds.Analyze(demands, z)
	if err != nil {
		return err
	}
	slog.Info("asymptotic limits",
		"d_total", lim.TotalDemand,
		"d_max", lim.MaxDemand,
		"bottleneck", lim.Bottleneck+1,
		"saturation", lim.Saturation)

	f, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = report.WriteCSV(f, res.HistoryThroughput, res.HistoryResponse, lim); err != nil {
		return err
	}
	slog.Info("wrote CSV", "path", csvPath, "rows", len(res.HistoryThroughput))

	return nil
}

// runApprox solves the Bard–Schweitzer fixed point. Non-convergence is a
// warning, not a failure: the last estimate is still reported.
func runApprox(demandList string, n int, z, tol float64, maxIter int, trace bool) error {
	demands, err := parseDemands(demandList)
	if err != nil {
		return err
	}
	slog.Info("approximate MVA", "stations", len(demands), "n", n, "z", z, "tol", tol)

	var col report.Collector
	opts := mva.DefaultApproxOptions()
	opts.ThinkTime = z
	opts.Tolerance = tol
	opts.MaxIterations = maxIter
	if trace {
		opts.OnIteration = col.Observe
	}

	res, err := mva.Approximate(n, len(demands), demands, &opts)
	if err != nil && !errors.Is(err, mva.ErrNotConverged) {
		return err
	}
	if !res.Converged {
		slog.Warn("did not converge", "iterations", res.Iterations, "tol", tol)
	} else {
		slog.Info("converged", "iterations", res.Iterations)
	}

	if trace {
		if err = report.Table(os.Stdout, "iter", col.Rows()); err != nil {
			return err
		}
	}
	fmt.Printf("X = %.4f\nR = %.4f\n", res.Throughput, res.ResponseTime)

	return nil
}

// runCTMC enumerates the state space, solves the chain and prints the
// stationary distribution.
func runCTMC(jobs, maxR int, cpuRate, fastRate, slowRate float64) error {
	states := ctmc.Enumerate(jobs, maxR)
	if len(states) == 0 {
		return fmt.Errorf("no valid states for jobs=%d cap=%d", jobs, maxR)
	}
	slog.Info("ctmc", "jobs", jobs, "cap", maxR, "states", len(states))

	res, err := ctmc.Stationary(states, ctmc.Params{
		MaxPerResource: maxR,
		CPURate:        cpuRate,
		FastRate:       fastRate,
		SlowRate:       slowRate,
	})
	if err != nil {
		return err
	}

	return report.StationaryTable(os.Stdout, res)
}

// parseDemands splits a comma-separated demand list into floats.
func parseDemands(list string) ([]float64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, errors.New("missing -demands (comma-separated service demands)")
	}

	parts := strings.Split(list, ",")
	demands := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad demand %q: %w", part, err)
		}
		demands = append(demands, v)
	}

	return demands, nil
}
