// Package simulator plays sessions of hands at one or more tables and
// collects their statistics and hand histories.
package simulator

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/internal/gameid"
	"github.com/lox/holdemsim/internal/phh"
	"github.com/lox/holdemsim/internal/statistics"
	"github.com/lox/holdemsim/poker"
)

// Session is one table playing consecutive hands with a fixed set of
// participants. Stacks carry over from hand to hand.
type Session struct {
	name    string
	players []*game.Participant
	rules   game.Rules
	rng     *rand.Rand
	button  int
	played  int

	clock  quartz.Clock
	ids    *gameid.Generator
	logger *log.Logger

	stats   *statistics.Table
	record  bool
	history []*phh.HandHistory
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger sets the logger for the session and the hands it plays.
func WithSessionLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClock sets the clock used for hand timestamps and IDs.
func WithClock(clock quartz.Clock) SessionOption {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithIDGenerator sets the hand ID generator.
func WithIDGenerator(ids *gameid.Generator) SessionOption {
	return func(s *Session) {
		s.ids = ids
	}
}

// WithHistory keeps a PHH record of every hand played.
func WithHistory() SessionOption {
	return func(s *Session) {
		s.record = true
	}
}

// NewSession creates a session. The first hand is dealt with the button on
// players[0]. rng shuffles every deck and must not be shared with another
// session.
func NewSession(name string, players []*game.Participant, rules game.Rules, rng *rand.Rand, opts ...SessionOption) *Session {
	if len(players) < 2 {
		panic("at least 2 players required")
	}
	if err := rules.Validate(); err != nil {
		panic(err)
	}
	if rng == nil {
		panic("rng is required")
	}

	s := &Session{
		name:    name,
		players: players,
		rules:   rules,
		rng:     rng,
		stats:   statistics.NewTable(rules.BigBlind),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.logger = s.logger.With("table", name)
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.ids == nil {
		s.ids = gameid.NewGenerator(nil, s.clock)
	}
	return s
}

// Play plays up to hands more hands. It stops early, without error, once
// fewer than two participants have chips. The context is checked between
// hands; a hand in progress always completes.
func (s *Session) Play(ctx context.Context, hands int) error {
	for i := 0; i < hands; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if n := s.withChips(); n < 2 {
			s.logger.Info("Session over", "hands", s.played, "players_with_chips", n)
			return nil
		}
		if err := s.playHand(); err != nil {
			return fmt.Errorf("table %s hand %d: %w", s.name, s.played+1, err)
		}
	}
	return nil
}

func (s *Session) playHand() error {
	id := s.ids.Generate()
	res, err := game.PlayHand(s.players, s.button, s.rules, poker.NewDeck(s.rng),
		game.WithID(id), game.WithLogger(s.logger))
	if err != nil {
		return err
	}
	s.played++
	s.stats.Record(res, s.players)
	if s.record {
		s.history = append(s.history, phh.FromHand(res, s.players, s.rules, s.name, s.clock.Now()))
	}
	s.button = s.nextButton(res.Button)
	return nil
}

// nextButton returns the first participant after from with chips.
func (s *Session) nextButton(from int) int {
	n := len(s.players)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if s.players[idx].Stack > 0 {
			return idx
		}
	}
	return from
}

func (s *Session) withChips() int {
	n := 0
	for _, p := range s.players {
		if p.Stack > 0 {
			n++
		}
	}
	return n
}

// Name returns the table name.
func (s *Session) Name() string { return s.name }

// Hands returns the number of hands played so far.
func (s *Session) Hands() int { return s.played }

// Button returns the index of the participant holding the button for the
// next hand.
func (s *Session) Button() int { return s.button }

// Players returns the participants in seating order.
func (s *Session) Players() []*game.Participant { return s.players }

// Stats returns the statistics recorded so far.
func (s *Session) Stats() *statistics.Table { return s.stats }

// History returns the PHH records kept with WithHistory.
func (s *Session) History() []*phh.HandHistory { return s.history }
