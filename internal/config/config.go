// Package config loads the CLI's HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultGames       = 1000
	DefaultSeed        = 1
	DefaultMaxMoves    = 10000
	DefaultHistorySize = 512
	DefaultLogLevel    = "info"
)

// Config represents the complete configuration file
type Config struct {
	Simulation *SimulationConfig `hcl:"simulation,block"`
	Logging    *LoggingConfig    `hcl:"logging,block"`
}

// SimulationConfig controls batch runs of the solver
type SimulationConfig struct {
	Games       int   `hcl:"games,optional"`
	Seed        int64 `hcl:"seed,optional"`
	Workers     int   `hcl:"workers,optional"`
	MaxMoves    int   `hcl:"max_moves,optional"`
	HistorySize int   `hcl:"history_size,optional"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	Level string `hcl:"level,optional"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; zero values in the file are filled with defaults too.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation == nil {
		c.Simulation = &SimulationConfig{}
	}
	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}

	s := c.Simulation
	if s.Games == 0 {
		s.Games = DefaultGames
	}
	if s.Seed == 0 {
		s.Seed = DefaultSeed
	}
	if s.Workers == 0 {
		s.Workers = runtime.GOMAXPROCS(0)
	}
	if s.MaxMoves == 0 {
		s.MaxMoves = DefaultMaxMoves
	}
	if s.HistorySize == 0 {
		s.HistorySize = DefaultHistorySize
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Games < 1 {
		return fmt.Errorf("invalid games: %d", s.Games)
	}
	if s.Workers < 1 {
		return fmt.Errorf("invalid workers: %d", s.Workers)
	}
	if s.MaxMoves < 0 {
		return fmt.Errorf("invalid max_moves: %d", s.MaxMoves)
	}
	if s.HistorySize < 0 {
		return fmt.Errorf("invalid history_size: %d", s.HistorySize)
	}
	if _, err := log.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	return nil
}
