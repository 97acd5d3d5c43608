package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, game.Rules{SmallBlind: 10, BigBlind: 20, MinBet: 10}, c.Rules())
	assert.Equal(t, 1000, c.Simulation.Hands)
	assert.Equal(t, 1, c.Simulation.Tables)
	require.Len(t, c.Players, 3)
	for i, p := range c.Players {
		assert.Equal(t, "random", p.Strategy)
		assert.Equal(t, 1000, p.Stack)
		assert.Equal(t, []string{"Agent 1", "Agent 2", "Agent 3"}[i], p.Name)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	c, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	src := `
log_level = "debug"

table {
  small_blind    = 5
  big_blind      = 10
  min_bet        = 10
  starting_stack = 500
}

simulation {
  hands   = 250
  tables  = 4
  workers = 2
  seed    = 42
  history = "hands.phhs"
}

player "Alice" {
  strategy = "maniac"
  stack    = 800
}

player "Bob" {
  strategy = "call"
}

player "Carol" {}
`
	path := filepath.Join(t.TempDir(), "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, game.Rules{SmallBlind: 5, BigBlind: 10, MinBet: 10}, c.Rules())
	assert.Equal(t, &SimulationSettings{Hands: 250, Tables: 4, Workers: 2, Seed: 42, History: "hands.phhs"}, c.Simulation)
	assert.Equal(t, []PlayerConfig{
		{Name: "Alice", Strategy: "maniac", Stack: 800},
		{Name: "Bob", Strategy: "call", Stack: 500},
		{Name: "Carol", Strategy: "random", Stack: 500},
	}, c.Players)

	sim := c.Simulator(log.Default())
	assert.Equal(t, 250, sim.Hands)
	assert.Equal(t, int64(42), sim.Seed)
	require.Len(t, sim.Seats, 3)
	assert.Equal(t, "maniac", sim.Seats[0].Strategy)
	assert.NoError(t, sim.Validate())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`table {`), "broken.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")

	_, err = Parse([]byte(`unknown_attribute = 1`), "extra.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL")

	_, err = Parse([]byte(`player {}`), "unlabelled.hcl")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"negative small blind", func(c *Config) { c.Table.SmallBlind = -1 }},
		{"big blind below small", func(c *Config) { c.Table.BigBlind = 5 }},
		{"negative min bet", func(c *Config) { c.Table.MinBet = -10 }},
		{"negative hands", func(c *Config) { c.Simulation.Hands = -1 }},
		{"no tables", func(c *Config) { c.Simulation.Tables = 0 }},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -2 }},
		{"one player", func(c *Config) { c.Players = c.Players[:1] }},
		{"too many players", func(c *Config) {
			for i := range 8 {
				c.Players = append(c.Players, PlayerConfig{Name: string(rune('a' + i)), Strategy: "call", Stack: 100})
			}
		}},
		{"duplicate name", func(c *Config) { c.Players[1].Name = c.Players[0].Name }},
		{"unknown strategy", func(c *Config) { c.Players[0].Strategy = "shark" }},
		{"empty stack", func(c *Config) { c.Players[2].Stack = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
