package main

import (
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/klondike/internal/config"
	"github.com/lox/klondike/internal/fileutil"
	"github.com/lox/klondike/internal/simulator"
	"github.com/lox/klondike/internal/statistics"
)

// SimulateCmd runs the solver over a batch of seeded deals
type SimulateCmd struct {
	Games    *int   `help:"Number of deals to play"`
	Seed     *int64 `help:"Seed of the first deal; deal i uses seed+i"`
	Workers  *int   `help:"Concurrent games (default GOMAXPROCS)"`
	Config   string `help:"HCL configuration file" type:"path" default:"klondike.hcl"`
	Out      string `help:"Also write the summary to this file" type:"path"`
	Progress bool   `help:"Show progress dots" default:"true" negatable:""`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading %s: %w", c.Config, err)
	}
	if c.Games != nil {
		cfg.Simulation.Games = *c.Games
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = *c.Seed
	}
	if c.Workers != nil {
		cfg.Simulation.Workers = *c.Workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := g.Logger(os.Stderr, cfg.Logging.Level)
	sim := cfg.Simulation
	logger.Info("Starting simulation",
		"games", sim.Games,
		"seed", sim.Seed,
		"workers", sim.Workers,
		"max_moves", sim.MaxMoves,
		"history_size", sim.HistorySize)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	simCfg := simulator.Config{
		Games:       sim.Games,
		Seed:        sim.Seed,
		Workers:     sim.Workers,
		MaxMoves:    sim.MaxMoves,
		HistorySize: sim.HistorySize,
		Logger:      logger.WithPrefix("simulator"),
		Clock:       quartz.NewReal(),
	}
	if c.Progress {
		progress := newProgressMonitor(os.Stderr)
		simCfg.Progress = progress.Update
		defer progress.Finish()
	}

	stats, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return err
	}

	simulator.WriteSummary(os.Stdout, stats)
	if c.Out != "" {
		err := fileutil.WriteAtomic(c.Out, 0o644, func(w io.Writer) error {
			writeReport(w, sim, stats)
			return nil
		})
		if err != nil {
			return fmt.Errorf("writing %s: %w", c.Out, err)
		}
		logger.Info("Wrote summary", "path", c.Out)
	}
	return nil
}

func writeReport(w io.Writer, sim *config.SimulationConfig, stats *statistics.Statistics) {
	fmt.Fprintf(w, "seed=%d games=%d max_moves=%d history_size=%d\n",
		sim.Seed, sim.Games, sim.MaxMoves, sim.HistorySize)
	simulator.WriteSummary(w, stats)
}
