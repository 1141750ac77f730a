package statistics

import (
	"testing"
	"time"

	"github.com/lox/klondike/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_Empty(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}

	assert.Zero(t, stats.WinRate())
	assert.Zero(t, stats.MeanMoves())
	assert.Zero(t, stats.MovesVariance())
	assert.Zero(t, stats.MeanFoundation())
	assert.Zero(t, stats.MeanDuration())
	lo, hi := stats.WinRateCI95()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
	assert.Error(t, stats.Validate())
}

func TestStatistics_Add(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	results := []GameResult{
		{Seed: 1, Verdict: solver.Won, Moves: 120, FoundationCards: 52, Duration: 2 * time.Millisecond},
		{Seed: 2, Verdict: solver.LostPassLimit, Moves: 90, FoundationCards: 10, StockPasses: 3, Duration: time.Millisecond},
		{Seed: 3, Verdict: solver.Blocked, Reason: solver.ReasonNoLegalMove, Moves: 30, FoundationCards: 4},
		{Seed: 4, Verdict: solver.Blocked, Reason: solver.ReasonRepeatedPosition, Moves: 60, FoundationCards: 6, Duration: 3 * time.Millisecond},
	}
	for _, r := range results {
		stats.Add(r)
	}

	require.NoError(t, stats.Validate())
	assert.Equal(t, 4, stats.Games)
	assert.Equal(t, 1, stats.Won)
	assert.Equal(t, 1, stats.Lost)
	assert.Equal(t, 2, stats.Blocked)
	assert.Equal(t, 1, stats.NoLegalMove)
	assert.Equal(t, 1, stats.RepeatedPosition)
	assert.InDelta(t, 0.25, stats.WinRate(), 1e-9)
	assert.InDelta(t, 75.0, stats.MeanMoves(), 1e-9)
	assert.InDelta(t, 18.0, stats.MeanFoundation(), 1e-9)
	assert.Equal(t, 1500*time.Microsecond, stats.MeanDuration())
	assert.Equal(t, int64(1), stats.Best.Seed)

	// moves 120, 90, 30, 60: mean 75, squared deviations 2025+225+2025+225
	assert.InDelta(t, 4500.0/3, stats.MovesVariance(), 1e-9)
}

func TestStatistics_BestPrefersLowerSeedOnTie(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	stats.Add(GameResult{Seed: 9, Verdict: solver.LostPassLimit, FoundationCards: 20})
	stats.Add(GameResult{Seed: 3, Verdict: solver.LostPassLimit, FoundationCards: 20})
	stats.Add(GameResult{Seed: 5, Verdict: solver.LostPassLimit, FoundationCards: 12})
	assert.Equal(t, int64(3), stats.Best.Seed)
}

func TestWinRateCI95(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	for i := range 100 {
		v := solver.LostPassLimit
		if i < 20 {
			v = solver.Won
		}
		stats.Add(GameResult{Seed: int64(i), Verdict: v})
	}
	lo, hi := stats.WinRateCI95()
	// 1.96 * sqrt(0.2*0.8/100) = 0.0784
	assert.InDelta(t, 0.1216, lo, 1e-4)
	assert.InDelta(t, 0.2784, hi, 1e-4)

	all := &Statistics{}
	all.Add(GameResult{Verdict: solver.Won})
	lo, hi = all.WinRateCI95()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestPercentile(t *testing.T) {
	t.Parallel()
	values := []float64{5, 1, 4, 2, 3}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 2},
		{0.5, 3},
		{0.9, 4.6},
		{1, 5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Percentile(values, tt.p), 1e-9, "p=%v", tt.p)
	}
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, values, "input must not be reordered")
	assert.InDelta(t, 2.5, Median([]float64{1, 2, 3, 4}), 1e-9)
	assert.Zero(t, Median(nil))
}

func TestValidate_DetectsMismatch(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	stats.Add(GameResult{Verdict: solver.Blocked, Reason: solver.ReasonMoveLimit})
	require.NoError(t, stats.Validate())

	stats.Won++
	assert.ErrorContains(t, stats.Validate(), "verdicts total")

	stats.Won--
	stats.MoveLimit--
	assert.ErrorContains(t, stats.Validate(), "blocked reasons")
}
