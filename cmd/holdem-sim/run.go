package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/config"
	"github.com/lox/holdemsim/internal/display"
	"github.com/lox/holdemsim/internal/simulator"
)

// RunCmd plays a batch of tables and prints a summary.
type RunCmd struct {
	Config   string `short:"c" default:"holdem.hcl" type:"path" help:"HCL configuration file (defaults apply when missing)"`
	Hands    int    `short:"n" help:"Hands per table (overrides config)"`
	Tables   int    `short:"t" help:"Number of independent tables (overrides config)"`
	Workers  int    `short:"w" help:"Tables played concurrently (overrides config)"`
	Seed     int64  `short:"s" help:"RNG seed (overrides config)"`
	History  string `type:"path" help:"Write PHH hand histories to this .phhs file (overrides config)"`
	LogLevel string `help:"Log level: debug, info, warn, error (overrides config)"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

func (cmd *RunCmd) Run() error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	cmd.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if cmd.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := simulator.Run(ctx, cfg.Simulator(logger))
	if err != nil {
		return err
	}

	fmt.Println(display.Report(report))
	return nil
}

// apply overrides config values with the flags that were set.
func (cmd *RunCmd) apply(cfg *config.Config) {
	if cmd.Hands > 0 {
		cfg.Simulation.Hands = cmd.Hands
	}
	if cmd.Tables > 0 {
		cfg.Simulation.Tables = cmd.Tables
	}
	if cmd.Workers > 0 {
		cfg.Simulation.Workers = cmd.Workers
	}
	if cmd.Seed != 0 {
		cfg.Simulation.Seed = cmd.Seed
	}
	if cmd.History != "" {
		cfg.Simulation.History = cmd.History
	}
	if cmd.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(cmd.LogLevel)
	}
}
