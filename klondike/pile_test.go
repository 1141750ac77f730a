package klondike

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPilePushPop(t *testing.T) {
	t.Parallel()
	p := NewPile()
	assert.True(t, p.IsEmpty())

	p.Push(card(t, "Ks"))
	p.PushAll(cards(t, "Qh Jc"))
	require.Equal(t, 3, p.Len())

	top, ok := p.Peek()
	require.True(t, ok)
	assert.Equal(t, "Jc", top.String())

	run, err := p.Pop(2)
	require.NoError(t, err)
	assert.Equal(t, cards(t, "Qh Jc"), run, "pop keeps bottom-first order")
	assert.Equal(t, 1, p.Len())
}

func TestPilePopTooMany(t *testing.T) {
	t.Parallel()
	p := NewPile(cards(t, "Ah 2h")...)
	_, err := p.Pop(3)
	require.ErrorIs(t, err, ErrInsufficientCards)
	assert.Equal(t, 2, p.Len(), "failed pop must not truncate")
}

func TestPileDoesNotAlias(t *testing.T) {
	t.Parallel()
	src := cards(t, "Ah 2h 3h")
	p := NewPile(src...)
	src[0] = card(t, "Ks")
	first, err := p.At(0)
	require.NoError(t, err)
	assert.Equal(t, "Ah", first.String(), "pile must copy its input")

	out := p.Cards()
	out[1] = card(t, "Kd")
	second, _ := p.At(1)
	assert.Equal(t, "2h", second.String(), "Cards must return a copy")

	popped, err := p.Pop(1)
	require.NoError(t, err)
	p.Push(card(t, "9c"))
	assert.Equal(t, "3h", popped[0].String(), "popped run must not share storage")
}

func TestPileAtOutOfRange(t *testing.T) {
	t.Parallel()
	p := NewPile(card(t, "Ah"))
	_, err := p.At(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = p.At(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPileFirstFaceUp(t *testing.T) {
	t.Parallel()
	cs := cards(t, "Ah 2h 3h")
	cs[2].FaceUp = true
	p := NewPile(cs...)
	assert.Equal(t, 2, p.FirstFaceUp())
	assert.Equal(t, 0, NewPile().FirstFaceUp())
}

func TestPileFlipTop(t *testing.T) {
	t.Parallel()
	p := NewPile(cards(t, "Ah 2h")...)
	assert.True(t, p.flipTop())
	top, _ := p.Peek()
	assert.True(t, top.FaceUp)
	assert.False(t, p.flipTop(), "already face up")
	assert.False(t, NewPile().flipTop())
}
