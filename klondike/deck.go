package klondike

import (
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = NumSuits * NumRanks

// Deck represents a standard 52-card deck
type Deck struct {
	cards []Card
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates an unshuffled deck in suit-major order with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// NewShuffledDeck creates a deck and shuffles it with rng
func NewShuffledDeck(rng *rand.Rand) *Deck {
	d := NewDeck(rng)
	d.Shuffle()
	return d
}

// NewDeckFromCards creates a deck in the given order. The order must contain
// each of the 52 cards exactly once. Orientation is reset to face down.
func NewDeckFromCards(cards []Card) (*Deck, error) {
	if len(cards) != DeckSize {
		return nil, fmt.Errorf("%w: %d cards, want %d", ErrInvalidDeck, len(cards), DeckSize)
	}
	var seen [DeckSize]bool
	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for _, c := range cards {
		idx := c.Index()
		if idx < 0 {
			return nil, fmt.Errorf("%w: malformed card %v", ErrInvalidDeck, c)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: duplicate %s", ErrInvalidDeck, c)
		}
		seen[idx] = true
		d.cards = append(d.cards, NewCard(c.Rank, c.Suit))
	}
	return d, nil
}

// Shuffle shuffles the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	if d.rng == nil {
		panic("klondike: deck has no random source")
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the first n cards in current order
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: draw %d", ErrOutOfRange, n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: draw %d from deck of %d", ErrInsufficientCards, n, len(d.cards))
	}
	out := make([]Card, n)
	copy(out, d.cards[:n])
	d.cards = d.cards[n:]
	return out, nil
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards in order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
