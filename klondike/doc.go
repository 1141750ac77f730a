// Package klondike implements the rules of one-card-draw Klondike solitaire.
//
// The main type is GameState, which owns the seven tableau piles, four
// foundations, the stock and the waste, validates every move and keeps all
// 52 cards accounted for.
//
// # Basic Usage
//
// Deal a game and make moves:
//
//	g, err := klondike.NewGameState(klondike.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	g.DrawFromStock()
//	if err := g.Move(klondike.FromWaste{}, klondike.ToFoundation{Pile: 0}); err != nil {
//	    // errors.Is(err, klondike.ErrIllegalPlacement): nothing changed
//	}
//
// # Deterministic Deals
//
// Shuffling always uses an explicit random source. Pass WithRNG or WithSeed
// to reproduce a shuffle, or WithCardOrder to skip it entirely:
//
//	cards, _ := klondike.ParseCards("Ah 2h 3h ...")
//	g, err := klondike.NewGameState(klondike.WithCardOrder(cards))
//
// WithLayout starts from an arbitrary position, which is how tests build
// boards a deal could not produce.
//
// # Rules
//
// Placement rules are pure functions (CanPlaceTableau,
// CanPlaceTableauSequence, CanPlaceFoundation) over a card and a Pile. Move
// operations check them and return ErrIllegalPlacement without mutating when
// they fail. The stock may be recycled from the waste MaxStockPasses times;
// a draw refused by that limit makes IsLost report true.
package klondike
