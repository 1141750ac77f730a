package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Solve    SolveCmd         `cmd:"" help:"Play one deal with the greedy solver and print its moves"`
	Simulate SimulateCmd      `cmd:"" help:"Solve many seeded deals and report statistics"`
	Play     PlayCmd          `cmd:"" help:"Play interactively in the terminal"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("klondike"),
		kong.Description("Klondike solitaire engine, greedy solver and batch simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
