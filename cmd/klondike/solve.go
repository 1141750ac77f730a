package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lox/klondike/internal/config"
	"github.com/lox/klondike/internal/randutil"
	"github.com/lox/klondike/internal/solver"
	"github.com/lox/klondike/klondike"
)

// SolveCmd plays a single deal with the solver
type SolveCmd struct {
	Seed     *int64 `help:"Deal seed (random when omitted)"`
	Deck     string `help:"Explicit 52-card deal order, e.g. 'Ah 2h 3h ...'"`
	Board    bool   `help:"Print the board before and after solving"`
	MaxMoves int    `help:"Stop as blocked after this many moves (0 = no limit)" default:"10000"`
}

func (c *SolveCmd) Run(g *Globals) error {
	logger := g.Logger(os.Stderr, config.DefaultLogLevel)

	if c.Seed != nil && c.Deck != "" {
		return errors.New("--seed and --deck are mutually exclusive")
	}

	var opt klondike.Option
	if c.Deck != "" {
		cards, err := klondike.ParseCards(c.Deck)
		if err != nil {
			return fmt.Errorf("parsing --deck: %w", err)
		}
		opt = klondike.WithCardOrder(cards)
	} else {
		var seed int64
		if c.Seed != nil {
			seed = *c.Seed
		}
		seed = randutil.SeedOrNow(seed)
		logger.Info("Dealing", "seed", seed)
		opt = klondike.WithSeed(seed)
	}

	game, err := klondike.NewGameState(opt)
	if err != nil {
		return err
	}

	renderer := g.Renderer()
	if c.Board {
		fmt.Print(renderer.Board(game), "\n")
	}

	cfg := solver.DefaultConfig()
	cfg.MaxMoves = c.MaxMoves
	cfg.Logger = logger.WithPrefix("solver")
	cfg.MoveLog = os.Stdout
	result := solver.New(game, cfg).Run()

	if c.Board {
		fmt.Print("\n", renderer.Board(game))
	}
	fmt.Printf("\nResult: %s\n", result)
	return nil
}
