package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/sakikout/ADS/bounds"
)

// csvHeader names the exported columns: the measured trajectory plus
// the operational envelopes, one row per population level.
var csvHeader = []string{"n", "x", "r", "x_optimistic", "x_pessimistic", "r_optimistic", "r_pessimistic"}

// WriteCSV exports an MVA trajectory together with its asymptotic
// envelopes. historyX and historyR are the per-population history
// sequences of an Exact run (row i holds population i+1); lim supplies
// the bound evaluators. The output matches the header above.
//
// Errors: ErrHistoryMismatch when the sequences differ in length; CSV
// write errors are returned as-is.
func WriteCSV(w io.Writer, historyX, historyR []float64, lim bounds.Limits) error {
	if len(historyX) != len(historyR) {
		return ErrHistoryMismatch
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	record := make([]string, len(csvHeader))
	for i := range historyX {
		n := i + 1
		record[0] = strconv.Itoa(n)
		record[1] = formatFloat(historyX[i])
		record[2] = formatFloat(historyR[i])
		record[3] = formatFloat(lim.OptimisticThroughput(n))
		record[4] = formatFloat(lim.PessimisticThroughput(n))
		record[5] = formatFloat(lim.OptimisticResponse(n))
		record[6] = formatFloat(lim.PessimisticResponse(n))
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// formatFloat keeps the shortest round-trippable decimal form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
