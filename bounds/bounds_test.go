package bounds_test

import (
	"testing"

	"github.com/sakikout/ADS/bounds"
	"github.com/sakikout/ADS/mva"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// TestAnalyze_ValidationErrors verifies the fail-fast sentinels.
func TestAnalyze_ValidationErrors(t *testing.T) {
	_, err := bounds.Analyze(nil, 0)
	assert.ErrorIs(t, err, bounds.ErrNoDemands)

	_, err = bounds.Analyze([]float64{0.1, -0.1}, 0)
	assert.ErrorIs(t, err, bounds.ErrNegativeDemand)

	_, err = bounds.Analyze([]float64{0, 0}, 1)
	assert.ErrorIs(t, err, bounds.ErrZeroDemand)

	_, err = bounds.Analyze([]float64{0.1}, -1)
	assert.ErrorIs(t, err, bounds.ErrNegativeThinkTime)
}

// TestAnalyze_Aggregates pins D, D_max, bottleneck index and N* on a
// hand-checked configuration.
func TestAnalyze_Aggregates(t *testing.T) {
	lim, err := bounds.Analyze([]float64{0.04, 0.06, 0.03}, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, 0.13, lim.TotalDemand, eps)
	assert.InDelta(t, 0.06, lim.MaxDemand, eps)
	assert.Equal(t, 1, lim.Bottleneck)
	assert.InDelta(t, (0.13+0.5)/0.06, lim.Saturation, eps)
}

// TestAnalyze_BottleneckTieKeepsFirst verifies argmax tie-breaking.
func TestAnalyze_BottleneckTieKeepsFirst(t *testing.T) {
	lim, err := bounds.Analyze([]float64{0.05, 0.05, 0.01}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, lim.Bottleneck, "first station wins demand ties")
}

// TestLimits_Envelopes checks both throughput formulas on either side of
// the saturation point, and the response envelopes.
func TestLimits_Envelopes(t *testing.T) {
	lim, err := bounds.Analyze([]float64{1, 1}, 2) // D=2, Dmax=1, N*=4
	require.NoError(t, err)
	assert.InDelta(t, 4.0, lim.Saturation, eps)

	// Below saturation the delay-line asymptote n/(D+Z) binds.
	assert.InDelta(t, 2.0/4.0, lim.OptimisticThroughput(2), eps)
	// Above saturation the bottleneck asymptote 1/Dmax binds.
	assert.InDelta(t, 1.0, lim.OptimisticThroughput(8), eps)

	assert.InDelta(t, 3.0/8.0, lim.PessimisticThroughput(3), eps) // 3/(3·2+2)
	assert.InDelta(t, 2.0, lim.OptimisticResponse(1), eps)        // max(2, 1−2)
	assert.InDelta(t, 6.0, lim.OptimisticResponse(8), eps)        // max(2, 8−2)
	assert.InDelta(t, 10.0, lim.PessimisticResponse(5), eps)      // 5·2
}

// TestLimits_PessimisticDegenerate covers n=0 with Z=0: defined as zero
// rather than a division by zero.
func TestLimits_PessimisticDegenerate(t *testing.T) {
	lim, err := bounds.Analyze([]float64{1}, 0)
	require.NoError(t, err)
	assert.Zero(t, lim.PessimisticThroughput(0))
}

// TestLimits_EnvelopeActuallyBounds cross-checks against the exact
// solver: for every population level the MVA trajectory must sit inside
// the operational envelopes.
func TestLimits_EnvelopeActuallyBounds(t *testing.T) {
	demands := []float64{0.04, 0.03, 0.06}
	const thinkTime = 1.0

	lim, err := bounds.Analyze(demands, thinkTime)
	require.NoError(t, err)

	opts := mva.DefaultExactOptions()
	opts.ThinkTime = thinkTime
	res, err := mva.Exact(60, demands, &opts)
	require.NoError(t, err)

	for i := range res.HistoryThroughput {
		n := i + 1
		x := res.HistoryThroughput[i]
		r := res.HistoryResponse[i]

		assert.LessOrEqual(t, x, lim.OptimisticThroughput(n)+eps, "X(%d) under optimistic bound", n)
		assert.GreaterOrEqual(t, x, lim.PessimisticThroughput(n)-eps, "X(%d) over pessimistic bound", n)
		assert.GreaterOrEqual(t, r, lim.OptimisticResponse(n)-eps, "R(%d) over optimistic bound", n)
		assert.LessOrEqual(t, r, lim.PessimisticResponse(n)+eps, "R(%d) under pessimistic bound", n)
	}
}
