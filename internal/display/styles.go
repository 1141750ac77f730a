package display

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used to draw a board
type Styles struct {
	Header    lipgloss.Style
	Label     lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	FaceDown  lipgloss.Style
	Empty     lipgloss.Style
}

// NewStyles creates board styles bound to r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		FaceDown: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")),
		Empty: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
