package solver

import (
	"fmt"

	"github.com/lox/klondike/klondike"
)

// Category is a solver move category, in priority order.
type Category int

const (
	WasteToFoundation Category = iota + 1
	TableauToFoundation
	TableauToTableau
	WasteToTableau
	StockDraw
)

func (c Category) String() string {
	switch c {
	case WasteToFoundation:
		return "waste-to-foundation"
	case TableauToFoundation:
		return "tableau-to-foundation"
	case TableauToTableau:
		return "tableau-to-tableau"
	case WasteToTableau:
		return "waste-to-tableau"
	case StockDraw:
		return "stock-draw"
	default:
		return "unknown"
	}
}

// Move is one solver action. Source and Dest are nil for a stock draw.
type Move struct {
	Category Category
	Source   klondike.Source
	Dest     klondike.Destination

	// Cards moved, bottom first. For a draw, the card turned onto the waste.
	Cards []klondike.Card

	// Recycled is set on a draw that first turned the waste back into the stock.
	Recycled bool
	Pass     int
}

// String describes the move for the move log, e.g.
// "Tableau 3 -> Tableau 5 (3 cards from Kd)".
func (m Move) String() string {
	lead := "?"
	if len(m.Cards) > 0 {
		lead = m.Cards[0].String()
	}

	switch m.Category {
	case WasteToFoundation, WasteToTableau:
		return fmt.Sprintf("Waste (%s) -> %s", lead, title(m.Dest))
	case TableauToFoundation:
		return fmt.Sprintf("%s (%s) -> %s", title(m.Source), lead, title(m.Dest))
	case TableauToTableau:
		src, _ := m.Source.(klondike.FromTableau)
		dst, _ := m.Dest.(klondike.ToTableau)
		if len(m.Cards) == 1 {
			return fmt.Sprintf("Tableau %d (%s) -> Tableau %d", src.Pile, lead, dst.Pile)
		}
		return fmt.Sprintf("Tableau %d -> Tableau %d (%d cards from %s)", src.Pile, dst.Pile, len(m.Cards), lead)
	case StockDraw:
		if m.Recycled {
			return fmt.Sprintf("Stock Draw (%s, pass %d)", lead, m.Pass)
		}
		return fmt.Sprintf("Stock Draw (%s)", lead)
	default:
		return "unknown move"
	}
}

func title(v fmt.Stringer) string {
	switch x := v.(type) {
	case klondike.FromTableau:
		return fmt.Sprintf("Tableau %d", x.Pile)
	case klondike.ToTableau:
		return fmt.Sprintf("Tableau %d", x.Pile)
	case klondike.ToFoundation:
		return fmt.Sprintf("Foundation %d", x.Pile)
	case klondike.FromWaste:
		return "Waste"
	case nil:
		return "?"
	default:
		return v.String()
	}
}
