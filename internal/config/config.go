// Package config loads simulator configuration from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/holdemsim/internal/bot"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/internal/simulator"
)

const (
	defaultLogLevel   = "info"
	defaultSmallBlind = 10
	defaultBigBlind   = 20
	defaultStack      = 1000
	defaultHands      = 1000
	defaultTables     = 1
	defaultStrategy   = "random"
	defaultPlayers    = 3

	maxPlayers = 10
)

// Config represents the complete simulator configuration
type Config struct {
	LogLevel   string              `hcl:"log_level,optional"`
	Table      *TableSettings      `hcl:"table,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Players    []PlayerConfig      `hcl:"player,block"`
}

// TableSettings contains the betting rules shared by every table
type TableSettings struct {
	SmallBlind    int `hcl:"small_blind,optional"`
	BigBlind      int `hcl:"big_blind,optional"`
	MinBet        int `hcl:"min_bet,optional"`
	StartingStack int `hcl:"starting_stack,optional"`
}

// SimulationSettings controls how many hands are played and where
// histories go
type SimulationSettings struct {
	Hands   int    `hcl:"hands,optional"`
	Tables  int    `hcl:"tables,optional"`
	Workers int    `hcl:"workers,optional"`
	Seed    int64  `hcl:"seed,optional"`
	History string `hcl:"history,optional"`
}

// PlayerConfig defines one seat
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
	Stack    int    `hcl:"stack,optional"`
}

// Default returns the default configuration: three random players.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse parses configuration from HCL source. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills in unset values
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = defaultSmallBlind
	}
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = max(defaultBigBlind, c.Table.SmallBlind)
	}
	if c.Table.MinBet == 0 {
		c.Table.MinBet = c.Table.SmallBlind
	}
	if c.Table.StartingStack == 0 {
		c.Table.StartingStack = defaultStack
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Hands == 0 {
		c.Simulation.Hands = defaultHands
	}
	if c.Simulation.Tables == 0 {
		c.Simulation.Tables = defaultTables
	}

	if len(c.Players) == 0 {
		for i := range defaultPlayers {
			c.Players = append(c.Players, PlayerConfig{Name: fmt.Sprintf("Agent %d", i+1)})
		}
	}
	for i := range c.Players {
		if c.Players[i].Strategy == "" {
			c.Players[i].Strategy = defaultStrategy
		}
		if c.Players[i].Stack == 0 {
			c.Players[i].Stack = c.Table.StartingStack
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	if c.Table.StartingStack <= 0 {
		return fmt.Errorf("table: starting stack must be positive")
	}

	if c.Simulation.Hands < 0 {
		return fmt.Errorf("simulation: hands must not be negative")
	}
	if c.Simulation.Tables < 1 {
		return fmt.Errorf("simulation: tables must be at least 1")
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation: workers must not be negative")
	}

	if len(c.Players) < 2 || len(c.Players) > maxPlayers {
		return fmt.Errorf("between 2 and %d players required, got %d", maxPlayers, len(c.Players))
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if seen[p.Name] {
			return fmt.Errorf("player %s: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if !bot.Known(p.Strategy) {
			return fmt.Errorf("player %s: invalid strategy %s", p.Name, p.Strategy)
		}
		if p.Stack <= 0 {
			return fmt.Errorf("player %s: stack must be positive", p.Name)
		}
	}

	return nil
}

// Rules returns the betting rules of the table block.
func (c *Config) Rules() game.Rules {
	return game.Rules{
		SmallBlind: c.Table.SmallBlind,
		BigBlind:   c.Table.BigBlind,
		MinBet:     c.Table.MinBet,
	}
}

// Simulator converts the configuration to a simulator run.
func (c *Config) Simulator(logger *log.Logger) simulator.Config {
	seats := make([]simulator.Seat, len(c.Players))
	for i, p := range c.Players {
		seats[i] = simulator.Seat{Name: p.Name, Strategy: p.Strategy, Stack: p.Stack}
	}
	return simulator.Config{
		Rules:   c.Rules(),
		Seats:   seats,
		Hands:   c.Simulation.Hands,
		Tables:  c.Simulation.Tables,
		Workers: c.Simulation.Workers,
		Seed:    c.Simulation.Seed,
		History: c.Simulation.History,
		Logger:  logger,
	}
}
