package klondike

import (
	"fmt"
	"strings"
)

// Rank is a card rank, Ace lowest.
type Rank uint8

// Rank constants (1-13 for A-K)
const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks per suit
const NumRanks = 13

// Suit is one of the four suits.
type Suit uint8

// Suit constants
const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NumSuits is the number of suits in a deck
const NumSuits = 4

// Color is the derived color of a suit.
type Color uint8

const (
	Red Color = iota
	Black
)

const (
	rankChars = "A23456789TJQK"
	suitChars = "hdcs"
)

var rankNames = [...]string{"", "ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "jack", "queen", "king"}
var suitNames = [...]string{"hearts", "diamonds", "clubs", "spades"}

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool { return r >= Ace && r <= King }

// String returns the long rank name ("ace", "10", "queen")
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankNames[r]
}

// Valid reports whether s is one of the 4 suits.
func (s Suit) Valid() bool { return s <= Spades }

func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitNames[s]
}

// Color returns Red for hearts and diamonds, Black otherwise.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Card is a playing card with its current orientation. Identity is the
// (Rank, Suit) pair; FaceUp changes as the card moves through the game.
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

// NewCard creates a face-down card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Color returns the card's suit color
func (c Card) Color() Color { return c.Suit.Color() }

// IsRed reports whether the card is a heart or diamond
func (c Card) IsRed() bool { return c.Color() == Red }

// Flip toggles the card's orientation.
func (c *Card) Flip() { c.FaceUp = !c.FaceUp }

// Same reports whether two cards share rank and suit, ignoring orientation.
func (c Card) Same(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// Index maps a card to 0-51 (suit-major). Invalid cards return -1.
func (c Card) Index() int {
	if !c.Rank.Valid() || !c.Suit.Valid() {
		return -1
	}
	return int(c.Suit)*NumRanks + int(c.Rank-1)
}

// String returns the short form, e.g. "Ah", "Td", "Ks"
func (c Card) String() string {
	if !c.Rank.Valid() || !c.Suit.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank-1]) + string(suitChars[c.Suit])
}

// Name returns the long form, e.g. "queen of hearts"
func (c Card) Name() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// OppositeColor reports whether the two cards differ in color
func OppositeColor(a, b Card) bool {
	return a.Color() != b.Color()
}

// OneRankBelow reports whether a is exactly one rank below b
func OneRankBelow(a, b Card) bool {
	return a.Rank+1 == b.Rank
}

// ParseCard parses a string like "Qh" or "10s" into a face-down Card
func ParseCard(s string) (Card, error) {
	if len(s) == 3 && s[:2] == "10" {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	r := strings.IndexByte(rankChars, upper(s[0]))
	if r < 0 {
		return Card{}, fmt.Errorf("%w: invalid rank %q", ErrInvalidCard, s[0])
	}
	su := strings.IndexByte(suitChars, lower(s[1]))
	if su < 0 {
		return Card{}, fmt.Errorf("%w: invalid suit %q", ErrInvalidCard, s[1])
	}
	return NewCard(Rank(r+1), Suit(su)), nil
}

// ParseCards parses a whitespace or comma separated list of cards
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\n' || r == '\t'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
