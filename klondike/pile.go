package klondike

import (
	"fmt"
	"strings"
)

// Pile is an ordered stack of cards. Index 0 is the bottom and the last
// index is the exposed top card. A Pile holds no placement rules.
type Pile struct {
	cards []Card
}

// NewPile creates a pile holding a copy of the given cards, bottom first
func NewPile(cards ...Card) *Pile {
	p := &Pile{}
	p.PushAll(cards)
	return p
}

// Len returns the number of cards in the pile
func (p *Pile) Len() int { return len(p.cards) }

// IsEmpty reports whether the pile holds no cards
func (p *Pile) IsEmpty() bool { return len(p.cards) == 0 }

// Push places one card on top
func (p *Pile) Push(c Card) {
	p.cards = append(p.cards, c)
}

// PushAll places cards on top in the given order, so the last card ends up on top
func (p *Pile) PushAll(cards []Card) {
	p.cards = append(p.cards, cards...)
}

// Pop removes the top n cards and returns them bottom-first. The returned
// slice does not share storage with the pile.
func (p *Pile) Pop(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: pop %d", ErrOutOfRange, n)
	}
	if n > len(p.cards) {
		return nil, fmt.Errorf("%w: pop %d from pile of %d", ErrInsufficientCards, n, len(p.cards))
	}
	start := len(p.cards) - n
	out := make([]Card, n)
	copy(out, p.cards[start:])
	clear(p.cards[start:])
	p.cards = p.cards[:start]
	return out, nil
}

// Peek returns the top card
func (p *Pile) Peek() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// At returns the card at index i (0 = bottom)
func (p *Pile) At(i int) (Card, error) {
	if i < 0 || i >= len(p.cards) {
		return Card{}, fmt.Errorf("%w: card %d of %d", ErrOutOfRange, i, len(p.cards))
	}
	return p.cards[i], nil
}

// Cards returns a copy of the pile's cards, bottom first. An empty pile
// returns nil.
func (p *Pile) Cards() []Card {
	if len(p.cards) == 0 {
		return nil
	}
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Top returns a copy of the top n cards, bottom first, without removing them
func (p *Pile) Top(n int) ([]Card, error) {
	if n < 0 || n > len(p.cards) {
		return nil, fmt.Errorf("%w: top %d of pile of %d", ErrInsufficientCards, n, len(p.cards))
	}
	out := make([]Card, n)
	copy(out, p.cards[len(p.cards)-n:])
	return out, nil
}

// FirstFaceUp returns the index of the lowest face-up card, or Len() when none is face up
func (p *Pile) FirstFaceUp() int {
	for i, c := range p.cards {
		if c.FaceUp {
			return i
		}
	}
	return len(p.cards)
}

// flipTop turns the top card face up if it is face down
func (p *Pile) flipTop() bool {
	if len(p.cards) == 0 {
		return false
	}
	top := &p.cards[len(p.cards)-1]
	if top.FaceUp {
		return false
	}
	top.Flip()
	return true
}

func (p *Pile) setFaceUp(up bool) {
	for i := range p.cards {
		p.cards[i].FaceUp = up
	}
}

func (p *Pile) String() string {
	parts := make([]string, len(p.cards))
	for i, c := range p.cards {
		if c.FaceUp {
			parts[i] = c.String()
		} else {
			parts[i] = "[" + c.String() + "]"
		}
	}
	return "Pile(" + strings.Join(parts, " ") + ")"
}
