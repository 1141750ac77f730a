package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/klondike/internal/display"
)

// Globals holds flags shared by every command
type Globals struct {
	LogLevel string `help:"Log level (debug, info, warn, error); overrides the config file"`
	NoColor  bool   `help:"Disable colored output"`
}

// AfterApply rejects an unknown --log-level before any command runs
func (g *Globals) AfterApply() error {
	if g.LogLevel == "" {
		return nil
	}
	if _, err := log.ParseLevel(g.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

// level returns the flag's level, falling back to fallback when unset
func (g *Globals) level(fallback string) log.Level {
	name := g.LogLevel
	if name == "" {
		name = fallback
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Logger builds the diagnostic logger for a command
func (g *Globals) Logger(w io.Writer, fallback string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           g.level(fallback),
		ReportTimestamp: true,
	})
}

// Renderer builds the board renderer for stdout
func (g *Globals) Renderer() *display.Renderer {
	return display.NewRenderer(!g.NoColor)
}

// setupSignalHandler returns a context cancelled on interrupt signals
func setupSignalHandler(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, stopping", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
