// Package display renders Klondike positions as text.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/klondike/klondike"
)

const (
	faceDown = "##"
	empty    = "--"
)

// Renderer draws boards with a fixed color profile
type Renderer struct {
	styles Styles
}

// NewRenderer creates a renderer writing styles for stdout. With color
// false every style renders as plain text.
func NewRenderer(color bool) *Renderer {
	return NewRendererFor(os.Stdout, color)
}

// NewRendererFor is NewRenderer for an arbitrary output
func NewRendererFor(w io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{styles: NewStyles(r)}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() Styles { return r.styles }

// Card renders one card, or ## when it is face down
func (r *Renderer) Card(c klondike.Card) string {
	if !c.FaceUp {
		return r.styles.FaceDown.Render(faceDown)
	}
	if c.IsRed() {
		return r.styles.CardRed.Render(c.String())
	}
	return r.styles.CardBlack.Render(c.String())
}

func (r *Renderer) top(cards []klondike.Card) string {
	if len(cards) == 0 {
		return r.styles.Empty.Render(empty)
	}
	return r.Card(cards[len(cards)-1])
}

// Board renders the stock and waste line, the foundation tops and the seven
// tableau columns, one card per row.
func (r *Renderer) Board(g *klondike.GameState) string {
	var b strings.Builder
	label := r.styles.Label.Render

	fmt.Fprintf(&b, "%s %2d  %s %s  %s %d/%d\n",
		label("Stock:"), g.StockLen(),
		label("Waste:"), r.top(g.Waste()),
		label("Passes:"), g.StockPasses(), klondike.MaxStockPasses)

	b.WriteString(label("Foundations:"))
	for i := range klondike.NumFoundations {
		f, _ := g.Foundation(i)
		b.WriteString(" " + r.top(f))
	}
	b.WriteString("\n\n")

	var piles [klondike.NumTableau][]klondike.Card
	height := 1
	for i := range piles {
		piles[i], _ = g.Tableau(i)
		height = max(height, len(piles[i]))
	}

	header := make([]string, klondike.NumTableau)
	for i := range header {
		header[i] = fmt.Sprintf(" T%d ", i)
	}
	b.WriteString(r.styles.Header.Render(strings.Join(header, "")) + "\n")

	for row := range height {
		var line strings.Builder
		for _, pile := range piles {
			switch {
			case row < len(pile):
				line.WriteString(" " + r.Card(pile[row]) + " ")
			case row == 0:
				line.WriteString(" " + r.styles.Empty.Render(empty) + " ")
			default:
				line.WriteString("    ")
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " ") + "\n")
	}
	return b.String()
}
