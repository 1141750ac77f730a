package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/klondike/internal/config"
	"github.com/lox/klondike/internal/randutil"
	"github.com/lox/klondike/internal/tui"
)

// PlayCmd starts the interactive game
type PlayCmd struct {
	Seed *int64 `help:"Deal seed (random when omitted)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	}

	// Anything written to the terminal would corrupt the alternate screen.
	logger := g.Logger(io.Discard, config.DefaultLogLevel)

	model, err := tui.NewModel(tui.Config{
		Seed:     randutil.SeedOrNow(seed),
		Renderer: g.Renderer(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
