package klondike

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func card(t testing.TB, s string) Card {
	t.Helper()
	c, err := ParseCard(s)
	require.NoError(t, err)
	return c
}

func cards(t testing.TB, s string) []Card {
	t.Helper()
	cs, err := ParseCards(s)
	require.NoError(t, err)
	return cs
}

func up(cs []Card) []Card {
	out := make([]Card, len(cs))
	for i, c := range cs {
		c.FaceUp = true
		out[i] = c
	}
	return out
}

// fullOrder returns the given cards followed by every other card in
// canonical deck order.
func fullOrder(t testing.TB, prefix string) []Card {
	t.Helper()
	order := cards(t, prefix)
	var used [DeckSize]bool
	for _, c := range order {
		require.False(t, used[c.Index()], "duplicate %s in prefix", c)
		used[c.Index()] = true
	}
	for _, c := range NewDeck(nil).Cards() {
		if !used[c.Index()] {
			order = append(order, c)
		}
	}
	return order
}

// withRestInStock puts every card missing from l into the stock, face down.
func withRestInStock(l Layout) Layout {
	var used [DeckSize]bool
	mark := func(cs []Card) {
		for _, c := range cs {
			used[c.Index()] = true
		}
	}
	for _, p := range l.Tableau {
		mark(p)
	}
	for _, p := range l.Foundations {
		mark(p)
	}
	mark(l.Stock)
	mark(l.Waste)
	for _, c := range NewDeck(nil).Cards() {
		if !used[c.Index()] {
			l.Stock = append(l.Stock, c)
		}
	}
	return l
}

func fullFoundations() [NumFoundations][]Card {
	var f [NumFoundations][]Card
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			f[suit] = append(f[suit], Card{Rank: rank, Suit: suit, FaceUp: true})
		}
	}
	return f
}

func newLayoutGame(t testing.TB, l Layout) *GameState {
	t.Helper()
	g, err := NewGameState(WithLayout(l))
	require.NoError(t, err)
	return g
}
