package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/klondike/internal/randutil"
	"github.com/lox/klondike/internal/solver"
	"github.com/lox/klondike/internal/statistics"
	"github.com/lox/klondike/klondike"
)

// Config holds configuration for running simulations
type Config struct {
	Games       int
	Seed        int64
	Workers     int // defaults to GOMAXPROCS
	MaxMoves    int
	HistorySize int
	Logger      *log.Logger
	Clock       quartz.Clock // defaults to the real clock

	// Progress is called after each finished game. Calls are serialized.
	Progress func(done, total int)
}

// Simulator plays many seeded deals with the greedy solver
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run plays Games deals with seeds Seed, Seed+1, ... and returns the
// aggregated statistics. Results are added in seed order, so the output does
// not depend on Workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("invalid games count: %d", s.config.Games)
	}

	results := make([]statistics.GameResult, s.config.Games)
	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Games {
		if gctx.Err() != nil {
			break
		}
		seed := randutil.GameSeed(s.config.Seed, i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.playGame(seed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = result

			if s.config.Progress != nil {
				mu.Lock()
				done++
				s.config.Progress(done, s.config.Games)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation between the last Go and Wait leaves no error behind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playGame deals and solves one game
func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	start := s.config.Clock.Now()

	game, err := klondike.NewGameState(klondike.WithSeed(seed))
	if err != nil {
		return statistics.GameResult{}, err
	}
	sv := solver.New(game, solver.Config{
		MaxMoves:    s.config.MaxMoves,
		HistorySize: s.config.HistorySize,
		Logger:      s.config.Logger,
	})
	res := sv.Run()

	elapsed := s.config.Clock.Since(start)
	s.config.Logger.Debug("game finished", "seed", seed, "verdict", res.Verdict, "moves", res.Moves, "elapsed", elapsed)

	return statistics.GameResult{
		Seed:            seed,
		Verdict:         res.Verdict,
		Reason:          res.Reason,
		Moves:           res.Moves,
		FoundationCards: res.FoundationCards,
		StockPasses:     res.StockPasses,
		Duration:        elapsed,
	}, nil
}

// WriteSummary prints a summary of simulation results
func WriteSummary(w io.Writer, stats *statistics.Statistics) {
	low, high := stats.WinRateCI95()

	fmt.Fprintf(w, "\n=== RESULTS ===\n")
	fmt.Fprintf(w, "Games played: %d\n", stats.Games)
	fmt.Fprintf(w, "Won: %d (%.2f%%, 95%% CI [%.2f%%, %.2f%%])\n",
		stats.Won, stats.WinRate()*100, low*100, high*100)
	fmt.Fprintf(w, "Lost at pass limit: %d\n", stats.Lost)
	fmt.Fprintf(w, "Blocked: %d (no legal move %d, repeated position %d, move limit %d)\n",
		stats.Blocked, stats.NoLegalMove, stats.RepeatedPosition, stats.MoveLimit)

	fmt.Fprintf(w, "\n=== MOVES ===\n")
	fmt.Fprintf(w, "Mean: %.1f, Std Dev: %.1f, Median: %.1f\n",
		stats.MeanMoves(), stats.MovesStdDev(), statistics.Median(stats.Moves))
	fmt.Fprintf(w, "Percentiles: P5=%.0f, P25=%.0f, P75=%.0f, P95=%.0f\n",
		statistics.Percentile(stats.Moves, 0.05), statistics.Percentile(stats.Moves, 0.25),
		statistics.Percentile(stats.Moves, 0.75), statistics.Percentile(stats.Moves, 0.95))

	fmt.Fprintf(w, "\n=== FOUNDATIONS ===\n")
	fmt.Fprintf(w, "Mean cards: %.2f, Median: %.1f\n",
		stats.MeanFoundation(), statistics.Median(stats.Foundation))
	fmt.Fprintf(w, "Best game: seed %d, %d cards (%s)\n",
		stats.Best.Seed, stats.Best.FoundationCards, stats.Best.Verdict)
	fmt.Fprintf(w, "Mean time per game: %v\n", stats.MeanDuration())
}
