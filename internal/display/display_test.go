package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/klondike/klondike"
)

func TestCard_Plain(t *testing.T) {
	t.Parallel()
	r := NewRendererFor(&bytes.Buffer{}, false)

	assert.Equal(t, "Qh", r.Card(klondike.Card{Rank: klondike.Queen, Suit: klondike.Hearts, FaceUp: true}))
	assert.Equal(t, "Ts", r.Card(klondike.Card{Rank: 10, Suit: klondike.Spades, FaceUp: true}))
	assert.Equal(t, "##", r.Card(klondike.Card{Rank: klondike.Ace, Suit: klondike.Clubs}))
}

func TestCard_ColorKeepsText(t *testing.T) {
	t.Parallel()
	r := NewRendererFor(&bytes.Buffer{}, true)
	out := r.Card(klondike.Card{Rank: klondike.King, Suit: klondike.Diamonds, FaceUp: true})
	assert.Contains(t, out, "Kd")
	assert.NotEqual(t, "Kd", out, "color output carries escape codes")
}

func TestBoard_Plain(t *testing.T) {
	t.Parallel()
	order, err := klondike.ParseCards(
		"Ah 2h 3h 4h 5h 6h 7h 8h 9h Th Jh Qh Kh " +
			"Ad 2d 3d 4d 5d 6d 7d 8d 9d Td Jd Qd Kd " +
			"Ac 2c 3c 4c 5c 6c 7c 8c 9c Tc Jc Qc Kc " +
			"As 2s 3s 4s 5s 6s 7s 8s 9s Ts Js Qs Ks")
	require.NoError(t, err)
	g, err := klondike.NewGameState(klondike.WithCardOrder(order))
	require.NoError(t, err)
	require.True(t, g.DrawFromStock())

	want := "" +
		"Stock: 23  Waste: Ks  Passes: 0/3\n" +
		"Foundations: -- -- -- --\n" +
		"\n" +
		" T0  T1  T2  T3  T4  T5  T6 \n" +
		" Ah  ##  ##  ##  ##  ##  ##\n" +
		"     3h  ##  ##  ##  ##  ##\n" +
		"         6h  ##  ##  ##  ##\n" +
		"             Th  ##  ##  ##\n" +
		"                 2d  ##  ##\n" +
		"                     8d  ##\n" +
		"                         2c\n"
	assert.Equal(t, want, NewRendererFor(&bytes.Buffer{}, false).Board(g))
}

func TestBoard_EmptyPileAndFoundations(t *testing.T) {
	t.Parallel()
	var l klondike.Layout
	for _, c := range klondike.NewDeck(nil).Cards() {
		c.FaceUp = true
		l.Foundations[c.Suit] = append(l.Foundations[c.Suit], c)
	}
	g, err := klondike.NewGameState(klondike.WithLayout(l))
	require.NoError(t, err)

	out := NewRendererFor(&bytes.Buffer{}, false).Board(g)
	assert.Contains(t, out, "Foundations: Kh Kd Kc Ks\n")
	assert.Contains(t, out, "Waste: --")
	assert.Contains(t, out, "\n --  --  --  --  --  --  --\n")
}
