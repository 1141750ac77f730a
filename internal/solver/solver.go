package solver

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/klondike/klondike"
)

// Verdict is how a solver run ended.
type Verdict int

const (
	Won Verdict = iota + 1
	LostPassLimit
	Blocked
)

func (v Verdict) String() string {
	switch v {
	case Won:
		return "won"
	case LostPassLimit:
		return "lost-pass-limit"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Reason refines a Blocked verdict.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonNoLegalMove: a full scan found nothing, including a draw.
	ReasonNoLegalMove
	// ReasonRepeatedPosition: the same position came up twice within the history window.
	ReasonRepeatedPosition
	// ReasonMoveLimit: Config.MaxMoves was reached.
	ReasonMoveLimit
)

func (r Reason) String() string {
	switch r {
	case ReasonNoLegalMove:
		return "no-legal-move"
	case ReasonRepeatedPosition:
		return "repeated-position"
	case ReasonMoveLimit:
		return "move-limit"
	default:
		return ""
	}
}

// Result is the outcome of Run.
type Result struct {
	Verdict         Verdict
	Reason          Reason
	Moves           int
	FoundationCards int
	StockPasses     int
}

func (r Result) String() string {
	if r.Reason != ReasonNone {
		return fmt.Sprintf("%s (%s) after %d moves, %d cards on foundations", r.Verdict, r.Reason, r.Moves, r.FoundationCards)
	}
	return fmt.Sprintf("%s after %d moves, %d cards on foundations", r.Verdict, r.Moves, r.FoundationCards)
}

const (
	DefaultHistorySize = 512
	DefaultMaxMoves    = 10000
)

// Config controls a Solver. The zero value disables the move cap and the
// position history.
type Config struct {
	// MaxMoves stops the run as Blocked after this many moves. 0 means no cap.
	MaxMoves int

	// HistorySize is how many recent positions are remembered for cycle
	// detection. 0 disables it.
	HistorySize int

	Logger *log.Logger

	// MoveLog receives one numbered line per move.
	MoveLog io.Writer
}

// DefaultConfig returns the limits used by the CLI.
func DefaultConfig() Config {
	return Config{
		MaxMoves:    DefaultMaxMoves,
		HistorySize: DefaultHistorySize,
	}
}

type tableauMove struct {
	src, dst int
}

// Solver plays a game greedily. Each step takes the first applicable move
// in priority order: waste to foundation, tableau to foundation, tableau run
// to tableau, waste to tableau, draw.
type Solver struct {
	game    *klondike.GameState
	cfg     Config
	logger  *log.Logger
	history *history

	lastTableau *tableauMove
	moves       int
}

// New creates a solver that mutates game in place.
func New(game *klondike.GameState, cfg Config) *Solver {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Solver{
		game:    game,
		cfg:     cfg,
		logger:  logger,
		history: newHistory(cfg.HistorySize),
	}
	s.history.visit(s.positionKey())
	return s
}

// Moves returns the number of moves applied so far
func (s *Solver) Moves() int { return s.moves }

// Run plays until the game is won, lost at the pass limit, or blocked.
func (s *Solver) Run() Result {
	for {
		switch {
		case s.game.IsWon():
			return s.result(Won, ReasonNone)
		case s.game.IsLost():
			return s.result(LostPassLimit, ReasonNone)
		case s.cfg.MaxMoves > 0 && s.moves >= s.cfg.MaxMoves:
			return s.result(Blocked, ReasonMoveLimit)
		}

		if _, ok := s.Step(); !ok {
			if s.game.IsLost() {
				return s.result(LostPassLimit, ReasonNone)
			}
			return s.result(Blocked, ReasonNoLegalMove)
		}

		if s.history.visit(s.positionKey()) {
			s.logger.Debug("position repeated", "moves", s.moves)
			return s.result(Blocked, ReasonRepeatedPosition)
		}
	}
}

func (s *Solver) result(v Verdict, r Reason) Result {
	res := Result{
		Verdict:         v,
		Reason:          r,
		Moves:           s.moves,
		FoundationCards: s.game.FoundationCount(),
		StockPasses:     s.game.StockPasses(),
	}
	s.logger.Debug("game over", "verdict", v, "reason", r, "moves", res.Moves, "foundation", res.FoundationCards)
	return res
}

// Suggest returns the move Step would make without making it.
func (s *Solver) Suggest() (Move, bool) {
	if m, ok := s.findMove(); ok {
		return m, true
	}
	if s.game.CanDraw() {
		return Move{Category: StockDraw}, true
	}
	return Move{}, false
}

// Step applies one move. It returns false when no move of any category,
// including a draw, was possible; a draw refused by the pass limit leaves
// the game reporting IsLost.
func (s *Solver) Step() (Move, bool) {
	m, ok := s.findMove()
	if ok {
		if err := s.game.Move(m.Source, m.Dest); err != nil {
			// findMove only returns moves CheckMove accepted.
			s.logger.Error("move rejected", "move", m, "err", err)
			return Move{}, false
		}
		if m.Category == TableauToTableau {
			src := m.Source.(klondike.FromTableau)
			dst := m.Dest.(klondike.ToTableau)
			s.lastTableau = &tableauMove{src: src.Pile, dst: dst.Pile}
		} else {
			s.lastTableau = nil
		}
	} else {
		passes := s.game.StockPasses()
		if !s.game.DrawFromStock() {
			return Move{}, false
		}
		top, _ := s.game.WasteTop()
		m = Move{
			Category: StockDraw,
			Cards:    []klondike.Card{top},
			Recycled: s.game.StockPasses() > passes,
			Pass:     s.game.StockPasses(),
		}
		s.lastTableau = nil
	}

	s.moves++
	s.record(m)
	return m, true
}

func (s *Solver) record(m Move) {
	if s.cfg.MoveLog != nil {
		fmt.Fprintf(s.cfg.MoveLog, "[%03d] %s\n", s.moves, m)
	}
	s.logger.Debug("move", "n", s.moves, "category", m.Category, "desc", m.String())
}

// findMove scans categories 1-4 in priority order and returns the first
// legal move. Draws are handled by the caller.
func (s *Solver) findMove() (Move, bool) {
	if m, ok := s.wasteToFoundation(); ok {
		return m, true
	}
	if m, ok := s.tableauToFoundation(); ok {
		return m, true
	}
	if m, ok := s.tableauToTableau(); ok {
		return m, true
	}
	if m, ok := s.wasteToTableau(); ok {
		return m, true
	}
	return Move{}, false
}

func (s *Solver) wasteToFoundation() (Move, bool) {
	top, ok := s.game.WasteTop()
	if !ok {
		return Move{}, false
	}
	for f := range klondike.NumFoundations {
		dst := klondike.ToFoundation{Pile: f}
		if s.game.CheckMove(klondike.FromWaste{}, dst) == nil {
			return Move{Category: WasteToFoundation, Source: klondike.FromWaste{}, Dest: dst, Cards: []klondike.Card{top}}, true
		}
	}
	return Move{}, false
}

func (s *Solver) tableauToFoundation() (Move, bool) {
	for t := range klondike.NumTableau {
		pile, _ := s.game.Tableau(t)
		if len(pile) == 0 || !pile[len(pile)-1].FaceUp {
			continue
		}
		src := klondike.FromTableau{Pile: t, Depth: 1}
		for f := range klondike.NumFoundations {
			dst := klondike.ToFoundation{Pile: f}
			if s.game.CheckMove(src, dst) == nil {
				return Move{Category: TableauToFoundation, Source: src, Dest: dst, Cards: pile[len(pile)-1:]}, true
			}
		}
	}
	return Move{}, false
}

// tableauToTableau tries, for each source pile, every face-up start index
// from the deepest up, against every other pile in index order.
func (s *Solver) tableauToTableau() (Move, bool) {
	var piles [klondike.NumTableau][]klondike.Card
	for t := range piles {
		piles[t], _ = s.game.Tableau(t)
	}

	for src, pile := range piles {
		for k := firstFaceUp(pile); k < len(pile); k++ {
			run := pile[k:]
			if !klondike.IsValidRun(run) {
				continue
			}
			for dst := range piles {
				if dst == src {
					continue
				}
				// Moving a whole column onto an empty pile changes nothing.
				if k == 0 && len(piles[dst]) == 0 {
					continue
				}
				if s.lastTableau != nil && s.lastTableau.src == dst && s.lastTableau.dst == src {
					s.logger.Debug("skipping reversal", "src", src, "dst", dst)
					continue
				}
				from := klondike.FromTableau{Pile: src, Depth: len(run)}
				to := klondike.ToTableau{Pile: dst}
				if s.game.CheckMove(from, to) == nil {
					return Move{Category: TableauToTableau, Source: from, Dest: to, Cards: run}, true
				}
			}
		}
	}
	return Move{}, false
}

func (s *Solver) wasteToTableau() (Move, bool) {
	top, ok := s.game.WasteTop()
	if !ok {
		return Move{}, false
	}
	for t := range klondike.NumTableau {
		dst := klondike.ToTableau{Pile: t}
		if s.game.CheckMove(klondike.FromWaste{}, dst) == nil {
			return Move{Category: WasteToTableau, Source: klondike.FromWaste{}, Dest: dst, Cards: []klondike.Card{top}}, true
		}
	}
	return Move{}, false
}

// positionKey identifies the board plus the remembered tableau move, since
// both decide what the solver does next.
func (s *Solver) positionKey() uint64 {
	key := s.game.Fingerprint()
	if s.lastTableau != nil {
		key ^= (uint64(s.lastTableau.src+1)<<4 | uint64(s.lastTableau.dst+1)) * 0x9e3779b97f4a7c15
	}
	return key
}

func firstFaceUp(pile []klondike.Card) int {
	for i, c := range pile {
		if c.FaceUp {
			return i
		}
	}
	return len(pile)
}
