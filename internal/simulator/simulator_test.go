package simulator

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/klondike/internal/solver"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func testConfig(t *testing.T, games, workers int) Config {
	return Config{
		Games:       games,
		Seed:        12345,
		Workers:     workers,
		MaxMoves:    solver.DefaultMaxMoves,
		HistorySize: solver.DefaultHistorySize,
		Logger:      testLogger(),
		Clock:       quartz.NewMock(t),
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()
	sim := New(Config{Games: 3})
	assert.Positive(t, sim.config.Workers)
	assert.NotNil(t, sim.config.Logger)
	assert.NotNil(t, sim.config.Clock)
}

func TestRun(t *testing.T) {
	t.Parallel()
	stats, err := New(testConfig(t, 10, 4)).Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, stats.Validate())
	assert.Equal(t, 10, stats.Games)
	assert.Equal(t, 10, stats.Won+stats.Lost+stats.Blocked)
	// The mock clock never advances.
	assert.Zero(t, stats.TotalDuration)
}

func TestRun_IndependentOfWorkers(t *testing.T) {
	t.Parallel()
	serial, err := New(testConfig(t, 12, 1)).Run(context.Background())
	require.NoError(t, err)
	parallel, err := New(testConfig(t, 12, 6)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, serial.Moves, parallel.Moves)
	assert.Equal(t, serial.Foundation, parallel.Foundation)
	assert.Equal(t, serial.Best, parallel.Best)
	assert.Equal(t, serial.Won, parallel.Won)
}

func TestRun_Progress(t *testing.T) {
	t.Parallel()
	cfg := testConfig(t, 8, 3)
	var (
		mu    sync.Mutex
		calls []int
	)
	cfg.Progress = func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 8, total)
		calls = append(calls, done)
	}

	_, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, calls)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := New(testConfig(t, 50, 2)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, stats)
}

func TestRun_InvalidGames(t *testing.T) {
	t.Parallel()
	_, err := New(testConfig(t, 0, 1)).Run(context.Background())
	assert.Error(t, err)
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()
	stats, err := New(testConfig(t, 5, 2)).Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSummary(&buf, stats)
	out := buf.String()
	assert.Contains(t, out, "Games played: 5")
	assert.Contains(t, out, "=== MOVES ===")
	assert.Contains(t, out, "Best game: seed")
}
