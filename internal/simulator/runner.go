package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/holdemsim/internal/bot"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/internal/gameid"
	"github.com/lox/holdemsim/internal/phh"
	"github.com/lox/holdemsim/internal/randutil"
	"github.com/lox/holdemsim/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Seat describes one participant at every table of a run.
type Seat struct {
	Name     string
	Strategy string
	Stack    int
}

// Config holds configuration for a batch of independent tables.
type Config struct {
	Rules   game.Rules
	Seats   []Seat
	Hands   int // per table
	Tables  int
	Workers int // defaults to GOMAXPROCS
	Seed    int64
	History string // .phhs path; empty disables history
	Logger  *log.Logger
	Clock   quartz.Clock
}

// TableSummary is the end state of one table.
type TableSummary struct {
	Name   string
	Hands  int
	Stacks map[string]int
}

// Report is the merged outcome of a run.
type Report struct {
	Stats   *statistics.Table
	Tables  []TableSummary
	Hands   int
	Elapsed time.Duration
	History string
}

// Validate checks the configuration can be run.
func (c Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if len(c.Seats) < 2 {
		return fmt.Errorf("at least 2 seats required, got %d", len(c.Seats))
	}
	seen := make(map[string]bool, len(c.Seats))
	for _, seat := range c.Seats {
		if seen[seat.Name] {
			return fmt.Errorf("duplicate seat name %q", seat.Name)
		}
		seen[seat.Name] = true
		if seat.Stack <= 0 {
			return fmt.Errorf("seat %q: stack must be positive, got %d", seat.Name, seat.Stack)
		}
		if !bot.Known(seat.Strategy) {
			return fmt.Errorf("seat %q: %w %q", seat.Name, bot.ErrUnknownStrategy, seat.Strategy)
		}
	}
	if c.Hands < 0 {
		return errors.New("hands must not be negative")
	}
	return nil
}

// Run plays cfg.Tables independent tables in parallel. Each table is seeded
// from cfg.Seed and its index, so results do not depend on the worker count.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Tables <= 0 {
		cfg.Tables = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}

	start := cfg.Clock.Now()
	cfg.Logger.Info("Starting simulation",
		"tables", cfg.Tables,
		"hands", cfg.Hands,
		"workers", cfg.Workers,
		"seed", cfg.Seed)

	sessions := make([]*Session, cfg.Tables)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range sessions {
		g.Go(func() error {
			s, err := NewTableSession(cfg, i)
			if err != nil {
				return err
			}
			sessions[i] = s
			return s.Play(ctx, cfg.Hands)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Stats: statistics.NewTable(cfg.Rules.BigBlind)}
	var history []*phh.HandHistory
	for _, s := range sessions {
		report.Stats.Merge(s.Stats())
		report.Hands += s.Hands()
		summary := TableSummary{Name: s.Name(), Hands: s.Hands(), Stacks: make(map[string]int)}
		for _, p := range s.Players() {
			summary.Stacks[p.Name] = p.Stack
		}
		report.Tables = append(report.Tables, summary)
		history = append(history, s.History()...)
	}
	if err := report.Stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	if cfg.History != "" {
		if err := phh.WriteFile(cfg.History, history); err != nil {
			return nil, fmt.Errorf("writing hand history: %w", err)
		}
		report.History = cfg.History
	}

	report.Elapsed = cfg.Clock.Since(start)
	cfg.Logger.Info("Simulation complete", "hands", report.Hands, "elapsed", report.Elapsed)
	return report, nil
}

// NewTableSession seats the configured players at table index. The table's
// deck, strategies and hand IDs draw from streams derived from cfg.Seed.
func NewTableSession(cfg Config, index int) (*Session, error) {
	seed := randutil.Derive(cfg.Seed, index)
	rng := randutil.New(seed)
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	players := make([]*game.Participant, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		strategy, err := bot.New(seat.Strategy, randutil.New(randutil.Derive(seed, i+1)), logger.With("player", seat.Name))
		if err != nil {
			return nil, fmt.Errorf("seat %q: %w", seat.Name, err)
		}
		players[i] = game.NewParticipant(i, seat.Name, seat.Stack, strategy)
	}

	opts := []SessionOption{
		WithSessionLogger(logger),
		WithClock(cfg.Clock),
		WithIDGenerator(gameid.NewGenerator(randutil.New(randutil.Derive(seed, 0)), cfg.Clock)),
	}
	if cfg.History != "" {
		opts = append(opts, WithHistory())
	}
	return NewSession(fmt.Sprintf("table-%d", index+1), players, cfg.Rules, rng, opts...), nil
}
