package statistics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lox/klondike/internal/solver"
)

// GameResult represents the outcome of a single solver game
type GameResult struct {
	Seed            int64 // RNG seed of the deal (for replay)
	Verdict         solver.Verdict
	Reason          solver.Reason
	Moves           int
	FoundationCards int
	StockPasses     int
	Duration        time.Duration
}

// Statistics aggregates many game results
type Statistics struct {
	Games int

	Won     int
	Lost    int // lost at the pass limit
	Blocked int

	// Blocked games by reason
	NoLegalMove      int
	RepeatedPosition int
	MoveLimit        int

	// Per-game samples for median/percentile calculation
	Moves      []float64
	Foundation []float64

	SumMoves      float64
	SumMoves2     float64 // Sum of squares for variance calculation
	SumFoundation float64

	TotalDuration time.Duration

	// Best game by foundation cards, lowest seed on ties
	Best    GameResult
	hasBest bool
}

// Add incorporates a game result into the statistics
func (s *Statistics) Add(r GameResult) {
	s.Games++
	switch r.Verdict {
	case solver.Won:
		s.Won++
	case solver.LostPassLimit:
		s.Lost++
	case solver.Blocked:
		s.Blocked++
		switch r.Reason {
		case solver.ReasonNoLegalMove:
			s.NoLegalMove++
		case solver.ReasonRepeatedPosition:
			s.RepeatedPosition++
		case solver.ReasonMoveLimit:
			s.MoveLimit++
		}
	}

	moves := float64(r.Moves)
	s.Moves = append(s.Moves, moves)
	s.SumMoves += moves
	s.SumMoves2 += moves * moves

	fc := float64(r.FoundationCards)
	s.Foundation = append(s.Foundation, fc)
	s.SumFoundation += fc

	s.TotalDuration += r.Duration

	if !s.hasBest || r.FoundationCards > s.Best.FoundationCards ||
		(r.FoundationCards == s.Best.FoundationCards && r.Seed < s.Best.Seed) {
		s.Best = r
		s.hasBest = true
	}
}

// WinRate returns the fraction of games won
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Games)
}

// WinRateCI95 returns the 95% normal-approximation confidence interval of
// the win rate, clamped to [0, 1].
func (s *Statistics) WinRateCI95() (float64, float64) {
	if s.Games == 0 {
		return 0, 0
	}
	p := s.WinRate()
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(s.Games))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// MeanMoves returns the mean number of moves per game
func (s *Statistics) MeanMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumMoves / float64(s.Games)
}

// MovesVariance returns the sample variance of moves per game
func (s *Statistics) MovesVariance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanMoves()
	return (s.SumMoves2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// MovesStdDev returns the sample standard deviation of moves per game
func (s *Statistics) MovesStdDev() float64 {
	return math.Sqrt(s.MovesVariance())
}

// MeanFoundation returns the mean number of cards on the foundations at the end of a game
func (s *Statistics) MeanFoundation() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumFoundation / float64(s.Games)
}

// MeanDuration returns the mean wall time per game
func (s *Statistics) MeanDuration() time.Duration {
	if s.Games == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.Games)
}

// Median returns the median of values
func Median(values []float64) float64 {
	return Percentile(values, 0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// interpolating between neighbours.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if total := s.Won + s.Lost + s.Blocked; total != s.Games {
		return fmt.Errorf("verdicts total (%d) does not match games (%d)", total, s.Games)
	}
	if reasons := s.NoLegalMove + s.RepeatedPosition + s.MoveLimit; reasons != s.Blocked {
		return fmt.Errorf("blocked reasons total (%d) does not match blocked games (%d)", reasons, s.Blocked)
	}
	if len(s.Moves) != s.Games || len(s.Foundation) != s.Games {
		return fmt.Errorf("sample lengths (%d, %d) do not match games (%d)", len(s.Moves), len(s.Foundation), s.Games)
	}
	if s.Best.FoundationCards > 52 {
		return fmt.Errorf("best game has %d foundation cards", s.Best.FoundationCards)
	}
	return nil
}
