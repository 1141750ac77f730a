package klondike

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lox/klondike/internal/randutil"
)

const (
	NumTableau     = 7
	NumFoundations = 4

	// MaxStockPasses is how many times the waste may be recycled into the stock.
	MaxStockPasses = 3
)

// GameState owns the thirteen piles of a Klondike game and enforces the move
// rules. It is mutated in place by a single caller; a new game needs a new
// GameState.
type GameState struct {
	tableau     [NumTableau]Pile
	foundations [NumFoundations]Pile
	stock       Pile
	waste       Pile

	stockPasses        int
	blockedByPassLimit bool
}

// Option configures where a new game's cards come from.
type Option func(*gameConfig)

type gameConfig struct {
	rng     *rand.Rand
	order   []Card
	layout  *Layout
	sources int
}

// WithRNG deals from a deck shuffled with rng.
func WithRNG(rng *rand.Rand) Option {
	return func(c *gameConfig) {
		c.rng = rng
		c.sources++
	}
}

// WithSeed deals from a deck shuffled with a deterministic RNG for seed.
func WithSeed(seed int64) Option {
	return func(c *gameConfig) {
		c.rng = randutil.New(seed)
		c.sources++
	}
}

// WithCardOrder deals from the given 52 cards without shuffling. The first
// 28 cards go to the tableau (pile 0 gets one, pile 1 two, ...), the rest
// become the stock with the last card on top.
func WithCardOrder(cards []Card) Option {
	return func(c *gameConfig) {
		c.order = cards
		c.sources++
	}
}

// WithLayout starts from an explicit position instead of a deal. Orientation
// of every card is taken as given.
func WithLayout(l Layout) Option {
	return func(c *gameConfig) {
		c.layout = &l
		c.sources++
	}
}

// NewGameState creates a dealt game. With no options the deck is shuffled
// with a time-seeded RNG.
//
//	// Deterministic deal
//	g, err := klondike.NewGameState(klondike.WithSeed(42))
//
//	// Fixed scenario
//	g, err := klondike.NewGameState(klondike.WithCardOrder(cards))
func NewGameState(opts ...Option) (*GameState, error) {
	cfg := &gameConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.sources > 1 {
		return nil, errors.New("klondike: only one of WithRNG, WithSeed, WithCardOrder, WithLayout may be given")
	}

	if cfg.layout != nil {
		return newFromLayout(*cfg.layout)
	}

	var deck *Deck
	switch {
	case cfg.order != nil:
		d, err := NewDeckFromCards(cfg.order)
		if err != nil {
			return nil, err
		}
		deck = d
	default:
		rng := cfg.rng
		if rng == nil {
			rng = randutil.New(time.Now().UnixNano())
		}
		deck = NewShuffledDeck(rng)
	}

	s := &GameState{}
	if err := s.deal(deck); err != nil {
		return nil, err
	}
	s.mustConserve()
	return s, nil
}

// deal lays out the tableau and moves the rest of the deck to the stock.
func (s *GameState) deal(deck *Deck) error {
	for i := range s.tableau {
		cards, err := deck.Draw(i + 1)
		if err != nil {
			return fmt.Errorf("dealing tableau %d: %w", i, err)
		}
		for j := range cards {
			cards[j].FaceUp = j == len(cards)-1
		}
		s.tableau[i].PushAll(cards)
	}

	rest, err := deck.Draw(deck.Remaining())
	if err != nil {
		return fmt.Errorf("dealing stock: %w", err)
	}
	for j := range rest {
		rest[j].FaceUp = false
	}
	s.stock.PushAll(rest)
	return nil
}

// Layout is an explicit snapshot of every pile, bottom card first.
type Layout struct {
	Tableau     [NumTableau][]Card
	Foundations [NumFoundations][]Card
	Stock       []Card
	Waste       []Card
	StockPasses int
}

func newFromLayout(l Layout) (*GameState, error) {
	if l.StockPasses < 0 || l.StockPasses > MaxStockPasses {
		return nil, fmt.Errorf("%w: stock passes %d", ErrOutOfRange, l.StockPasses)
	}
	s := &GameState{stockPasses: l.StockPasses}
	for i := range s.tableau {
		s.tableau[i].PushAll(l.Tableau[i])
	}
	for i := range s.foundations {
		s.foundations[i].PushAll(l.Foundations[i])
	}
	s.stock.PushAll(l.Stock)
	s.waste.PushAll(l.Waste)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Layout returns a copy of the current position
func (s *GameState) Layout() Layout {
	l := Layout{
		Stock:       s.stock.Cards(),
		Waste:       s.waste.Cards(),
		StockPasses: s.stockPasses,
	}
	for i := range s.tableau {
		l.Tableau[i] = s.tableau[i].Cards()
	}
	for i := range s.foundations {
		l.Foundations[i] = s.foundations[i].Cards()
	}
	return l
}

// Tableau returns a copy of tableau pile i, bottom first
func (s *GameState) Tableau(i int) ([]Card, error) {
	p, err := s.tableauPile(i)
	if err != nil {
		return nil, err
	}
	return p.Cards(), nil
}

// Foundation returns a copy of foundation pile i, bottom first
func (s *GameState) Foundation(i int) ([]Card, error) {
	p, err := s.foundationPile(i)
	if err != nil {
		return nil, err
	}
	return p.Cards(), nil
}

// Stock returns a copy of the stock, bottom first
func (s *GameState) Stock() []Card { return s.stock.Cards() }

// Waste returns a copy of the waste, bottom first
func (s *GameState) Waste() []Card { return s.waste.Cards() }

// StockLen returns the number of cards left in the stock
func (s *GameState) StockLen() int { return s.stock.Len() }

// WasteTop returns the exposed waste card
func (s *GameState) WasteTop() (Card, bool) { return s.waste.Peek() }

// StockPasses returns how many times the waste has been recycled
func (s *GameState) StockPasses() int { return s.stockPasses }

// FoundationCount returns the number of cards on all foundations
func (s *GameState) FoundationCount() int {
	n := 0
	for i := range s.foundations {
		n += s.foundations[i].Len()
	}
	return n
}

func (s *GameState) tableauPile(i int) (*Pile, error) {
	if i < 0 || i >= NumTableau {
		return nil, fmt.Errorf("%w: tableau %d", ErrOutOfRange, i)
	}
	return &s.tableau[i], nil
}

func (s *GameState) foundationPile(i int) (*Pile, error) {
	if i < 0 || i >= NumFoundations {
		return nil, fmt.Errorf("%w: foundation %d", ErrOutOfRange, i)
	}
	return &s.foundations[i], nil
}

// DrawFromStock turns the top stock card onto the waste. An empty stock is
// refilled from the waste first, at most MaxStockPasses times; the refill
// keeps the previous pass's draw order. It returns false when nothing could
// be drawn, and records the pass limit if that was the reason.
func (s *GameState) DrawFromStock() bool {
	if s.stock.IsEmpty() {
		if s.waste.IsEmpty() {
			return false
		}
		if s.stockPasses >= MaxStockPasses {
			s.blockedByPassLimit = true
			return false
		}
		s.recycleWaste()
	}

	cards, err := s.stock.Pop(1)
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrInvariantViolation, err))
	}
	c := cards[0]
	c.FaceUp = true
	s.waste.Push(c)
	s.mustConserve()
	return true
}

// CanDraw reports whether DrawFromStock would succeed.
func (s *GameState) CanDraw() bool {
	if !s.stock.IsEmpty() {
		return true
	}
	return !s.waste.IsEmpty() && s.stockPasses < MaxStockPasses
}

func (s *GameState) recycleWaste() {
	cards, _ := s.waste.Pop(s.waste.Len())
	for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
		cards[i], cards[j] = cards[j], cards[i]
	}
	for i := range cards {
		cards[i].FaceUp = false
	}
	s.stock.PushAll(cards)
	s.stockPasses++
}

// IsWon reports whether every foundation is complete
func (s *GameState) IsWon() bool {
	for i := range s.foundations {
		if s.foundations[i].Len() != NumRanks {
			return false
		}
	}
	return true
}

// IsLost reports whether a draw was refused because the pass limit was
// reached. A board with no legal move but cards left to draw is not lost.
func (s *GameState) IsLost() bool {
	return s.blockedByPassLimit
}

// Validate checks that the piles hold each of the 52 cards exactly once.
func (s *GameState) Validate() error {
	var seen [DeckSize]bool
	total := 0
	check := func(p *Pile, where string, idx int) error {
		for _, c := range p.cards {
			ci := c.Index()
			if ci < 0 {
				return fmt.Errorf("%w: malformed card %v in %s", ErrInvariantViolation, c, pileName(where, idx))
			}
			if seen[ci] {
				return fmt.Errorf("%w: %s duplicated in %s", ErrInvariantViolation, c, pileName(where, idx))
			}
			seen[ci] = true
			total++
		}
		return nil
	}

	for i := range s.tableau {
		if err := check(&s.tableau[i], "tableau", i); err != nil {
			return err
		}
	}
	for i := range s.foundations {
		if err := check(&s.foundations[i], "foundation", i); err != nil {
			return err
		}
	}
	if err := check(&s.stock, "stock", -1); err != nil {
		return err
	}
	if err := check(&s.waste, "waste", -1); err != nil {
		return err
	}
	if total != DeckSize {
		return fmt.Errorf("%w: %d cards on the board, want %d", ErrInvariantViolation, total, DeckSize)
	}
	return nil
}

// mustConserve panics if a mutation broke card conservation. Nothing done
// after that point could be trusted.
func (s *GameState) mustConserve() {
	if err := s.Validate(); err != nil {
		panic(err)
	}
}

func pileName(where string, idx int) string {
	if idx < 0 {
		return where
	}
	return fmt.Sprintf("%s %d", where, idx)
}
