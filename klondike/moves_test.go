package klondike

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// moveLayout:
//
//	tableau 0: [5s] Ks Qh Jc
//	tableau 1: (empty)
//	tableau 2: Kd
//	tableau 3: Ah
//	tableau 4: [9c] 2h
//	waste:     3h Qs
func moveLayout(t testing.TB) Layout {
	t.Helper()
	var l Layout
	l.Tableau[0] = append(cards(t, "5s"), up(cards(t, "Ks Qh Jc"))...)
	l.Tableau[2] = up(cards(t, "Kd"))
	l.Tableau[3] = up(cards(t, "Ah"))
	l.Tableau[4] = append(cards(t, "9c"), up(cards(t, "2h"))...)
	l.Waste = up(cards(t, "3h Qs"))
	return withRestInStock(l)
}

func TestMoveTableauRunToEmpty(t *testing.T) {
	t.Parallel()
	g := newLayoutGame(t, moveLayout(t))

	require.NoError(t, g.MoveTableauToTableau(0, 1, 3))
	t0, _ := g.Tableau(0)
	t1, _ := g.Tableau(1)
	require.Len(t, t0, 1)
	assert.True(t, t0[0].FaceUp, "new top is flipped")
	assert.Equal(t, up(cards(t, "Ks Qh Jc")), t1)
	assertConserved(t, g)
}

func TestMoveTableauRejections(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		src     int
		dst     int
		n       int
		wantErr error
	}{
		{"non-king run onto empty", 0, 1, 2, ErrIllegalPlacement},
		{"run including face-down card", 0, 1, 4, ErrIllegalPlacement},
		{"more cards than the pile holds", 0, 1, 5, ErrInsufficientCards},
		{"zero cards", 0, 1, 0, ErrOutOfRange},
		{"onto itself", 0, 0, 1, ErrIllegalPlacement},
		{"source out of range", 7, 1, 1, ErrOutOfRange},
		{"destination out of range", 0, -1, 1, ErrOutOfRange},
		{"from empty pile", 1, 2, 1, ErrInsufficientCards},
		{"same color onto king", 0, 2, 2, ErrIllegalPlacement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newLayoutGame(t, moveLayout(t))
			before := g.Layout()
			fp := g.Fingerprint()

			err := g.MoveTableauToTableau(tt.src, tt.dst, tt.n)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, g.Layout(), "rejected move must not mutate")
			assert.Equal(t, fp, g.Fingerprint())
		})
	}
}

func TestMoveTableauToFoundation(t *testing.T) {
	t.Parallel()
	g := newLayoutGame(t, moveLayout(t))

	require.NoError(t, g.MoveTableauToFoundation(3, 0))
	f0, _ := g.Foundation(0)
	assert.Equal(t, up(cards(t, "Ah")), f0)
	t3, _ := g.Tableau(3)
	assert.Empty(t, t3)

	require.NoError(t, g.MoveTableauToFoundation(4, 0))
	t4, _ := g.Tableau(4)
	require.Len(t, t4, 1)
	assert.True(t, t4[0].FaceUp, "9c exposed and flipped")

	assert.ErrorIs(t, g.MoveTableauToFoundation(0, 1), ErrIllegalPlacement)
	assert.ErrorIs(t, g.MoveTableauToFoundation(3, 1), ErrInsufficientCards)
	assert.ErrorIs(t, g.MoveTableauToFoundation(0, 4), ErrOutOfRange)
	assertConserved(t, g)
}

func TestMoveWaste(t *testing.T) {
	t.Parallel()
	g := newLayoutGame(t, moveLayout(t))

	assert.ErrorIs(t, g.MoveWasteToFoundation(0), ErrIllegalPlacement)
	require.NoError(t, g.MoveWasteToTableau(2))
	t2, _ := g.Tableau(2)
	assert.Equal(t, up(cards(t, "Kd Qs")), t2)

	top, ok := g.WasteTop()
	require.True(t, ok)
	assert.Equal(t, "3h", top.String())
	assert.ErrorIs(t, g.MoveWasteToTableau(1), ErrIllegalPlacement, "3h cannot start an empty pile")

	require.NoError(t, g.MoveTableauToFoundation(3, 1))
	require.NoError(t, g.MoveTableauToFoundation(4, 1))
	require.NoError(t, g.MoveWasteToFoundation(1))
	f1, _ := g.Foundation(1)
	assert.Len(t, f1, 3)

	assert.ErrorIs(t, g.MoveWasteToTableau(0), ErrInsufficientCards, "waste is empty")
	assert.ErrorIs(t, g.MoveWasteToFoundation(0), ErrInsufficientCards)
	assertConserved(t, g)
}

func TestMoveDispatchMatchesDirectCalls(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		src    Source
		dst    Destination
		direct func(g *GameState) error
	}{
		{
			name:   "tableau run to tableau",
			src:    FromTableau{Pile: 0, Depth: 3},
			dst:    ToTableau{Pile: 1},
			direct: func(g *GameState) error { return g.MoveTableauToTableau(0, 1, 3) },
		},
		{
			name:   "tableau to foundation",
			src:    FromTableau{Pile: 3, Depth: 1},
			dst:    ToFoundation{Pile: 2},
			direct: func(g *GameState) error { return g.MoveTableauToFoundation(3, 2) },
		},
		{
			name:   "waste to tableau",
			src:    FromWaste{},
			dst:    ToTableau{Pile: 2},
			direct: func(g *GameState) error { return g.MoveWasteToTableau(2) },
		},
		{
			name:   "waste to foundation rejected",
			src:    FromWaste{},
			dst:    ToFoundation{Pile: 0},
			direct: func(g *GameState) error { return g.MoveWasteToFoundation(0) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			viaMove := newLayoutGame(t, moveLayout(t))
			viaDirect := newLayoutGame(t, moveLayout(t))

			checkErr := viaMove.CheckMove(tt.src, tt.dst)
			moveErr := viaMove.Move(tt.src, tt.dst)
			directErr := tt.direct(viaDirect)

			assert.Equal(t, directErr == nil, moveErr == nil)
			assert.Equal(t, checkErr == nil, moveErr == nil, "CheckMove agrees with Move")
			assert.Equal(t, viaDirect.Layout(), viaMove.Layout())
		})
	}
}

func TestMoveFoundationDepth(t *testing.T) {
	t.Parallel()
	g := newLayoutGame(t, moveLayout(t))
	err := g.Move(FromTableau{Pile: 0, Depth: 2}, ToFoundation{Pile: 0})
	assert.ErrorIs(t, err, ErrIllegalPlacement)
	assert.ErrorIs(t, g.CheckMove(FromTableau{Pile: 0, Depth: 2}, ToFoundation{Pile: 0}), ErrIllegalPlacement)
}

func TestCheckMoveDoesNotMutate(t *testing.T) {
	t.Parallel()
	g := newLayoutGame(t, moveLayout(t))
	before := g.Layout()
	require.NoError(t, g.CheckMove(FromTableau{Pile: 0, Depth: 3}, ToTableau{Pile: 1}))
	assert.Equal(t, before, g.Layout())
}

func TestSourceDestinationStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "waste", FromWaste{}.String())
	assert.Equal(t, "tableau 2", FromTableau{Pile: 2, Depth: 1}.String())
	assert.Equal(t, "tableau 2 (3 cards)", FromTableau{Pile: 2, Depth: 3}.String())
	assert.Equal(t, "tableau 5", ToTableau{Pile: 5}.String())
	assert.Equal(t, "foundation 1", ToFoundation{Pile: 1}.String())
}
