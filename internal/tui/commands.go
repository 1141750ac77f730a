package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/klondike/klondike"
)

// CommandKind identifies a player command
type CommandKind int

const (
	CmdDraw CommandKind = iota + 1
	CmdMove
	CmdHint
	CmdAuto
	CmdNew
	CmdHelp
	CmdQuit
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

// Command is a parsed line of player input
type Command struct {
	Kind   CommandKind
	Source klondike.Source
	Dest   klondike.Destination

	// AnyFoundation means the destination was a bare "f": the first
	// foundation that accepts the card is used.
	AnyFoundation bool
}

const helpText = `Commands:
  d, draw        turn the next stock card onto the waste
  w N            waste to tableau N
  w f[N]         waste to a foundation
  t S D [n]      move n cards (default 1) from tableau S to tableau D
  t S f[N]       tableau S to a foundation
  hint           show what the solver would do
  auto           let the solver make one move
  new            deal the next game
  q, quit        leave`

// ParseCommand parses one line of input
func ParseCommand(input string) (Command, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	name, args := fields[0], fields[1:]

	simple := map[string]CommandKind{
		"d": CmdDraw, "draw": CmdDraw,
		"hint": CmdHint, "auto": CmdAuto, "new": CmdNew,
		"help": CmdHelp, "?": CmdHelp,
		"q": CmdQuit, "quit": CmdQuit,
	}
	if kind, ok := simple[name]; ok {
		if len(args) > 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrBadArguments, name)
		}
		return Command{Kind: kind}, nil
	}

	switch name {
	case "w":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: usage w N | w f", ErrBadArguments)
		}
		cmd := Command{Kind: CmdMove, Source: klondike.FromWaste{}}
		if err := parseDest(args[0], &cmd); err != nil {
			return Command{}, err
		}
		return cmd, nil

	case "t":
		if len(args) < 2 || len(args) > 3 {
			return Command{}, fmt.Errorf("%w: usage t S D [n] | t S f", ErrBadArguments)
		}
		src, err := pileIndex(args[0], klondike.NumTableau)
		if err != nil {
			return Command{}, err
		}
		depth := 1
		if len(args) == 3 {
			if depth, err = strconv.Atoi(args[2]); err != nil || depth < 1 {
				return Command{}, fmt.Errorf("%w: card count %q", ErrBadArguments, args[2])
			}
		}
		cmd := Command{Kind: CmdMove, Source: klondike.FromTableau{Pile: src, Depth: depth}}
		if err := parseDest(args[1], &cmd); err != nil {
			return Command{}, err
		}
		if _, ok := cmd.Dest.(klondike.ToTableau); !ok && depth != 1 {
			return Command{}, fmt.Errorf("%w: only one card at a time goes to a foundation", ErrBadArguments)
		}
		return cmd, nil
	}

	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

func parseDest(arg string, cmd *Command) error {
	if rest, ok := strings.CutPrefix(arg, "f"); ok {
		if rest == "" {
			cmd.Dest = klondike.ToFoundation{}
			cmd.AnyFoundation = true
			return nil
		}
		i, err := pileIndex(rest, klondike.NumFoundations)
		if err != nil {
			return err
		}
		cmd.Dest = klondike.ToFoundation{Pile: i}
		return nil
	}
	i, err := pileIndex(arg, klondike.NumTableau)
	if err != nil {
		return err
	}
	cmd.Dest = klondike.ToTableau{Pile: i}
	return nil
}

func pileIndex(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 0 || i >= n {
		return 0, fmt.Errorf("%w: pile %q (want 0-%d)", ErrBadArguments, arg, n-1)
	}
	return i, nil
}
