package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/poker"
)

// CardSupplier deals cards off the top of a shuffled deck.
type CardSupplier interface {
	Deal(n int) ([]poker.Card, error)
}

// Hand plays one hand of No-Limit Hold'em over a set of participants.
type Hand struct {
	id      string
	players []*Participant
	button  int
	rules   Rules
	deck    CardSupplier
	logger  *log.Logger
}

// HandResult records what happened in a finished hand.
type HandResult struct {
	ID      string
	Button  int // index of the button participant
	Board   []poker.Card
	Streets []Street // streets that were played
	Actions []ActionRecord
	// Pot is the total contributed before it was distributed.
	Pot          int
	Showdown     bool
	Winners      []int // seats that received chips
	Distribution Distribution
	Ranks        map[int]poker.HandRank // by seat, showdown only
	HoleCards    map[int][]poker.Card   // by seat, dealt participants only
	StartStacks  []int
	EndStacks    []int
}

// Net returns the chip change of the participant at index i.
func (r *HandResult) Net(i int) int { return r.EndStacks[i] - r.StartStacks[i] }

// NewHand creates a hand. button is an index into players; when that
// participant has no chips the button moves to the next one who does.
//
// Example usage:
//
//	deck := poker.NewDeck(randutil.New(42))
//	h := NewHand(players, 0, Rules{SmallBlind: 5, BigBlind: 10, MinBet: 10}, deck,
//	    WithLogger(logger), WithID("hand-1"))
//	result, err := h.Play()
func NewHand(players []*Participant, button int, rules Rules, deck CardSupplier, opts ...HandOption) *Hand {
	if len(players) < 2 {
		panic("at least 2 players required")
	}
	if button < 0 || button >= len(players) {
		panic("button position out of range")
	}
	if deck == nil {
		panic("deck is required for hand creation")
	}

	cfg := &handConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.id != "" {
		logger = logger.With("hand", cfg.id)
	}

	return &Hand{
		id:      cfg.id,
		players: players,
		button:  button,
		rules:   rules,
		deck:    deck,
		logger:  logger,
	}
}

// PlayHand creates and plays a hand in one call.
func PlayHand(players []*Participant, button int, rules Rules, deck CardSupplier, opts ...HandOption) (*HandResult, error) {
	return NewHand(players, button, rules, deck, opts...).Play()
}

// Play resets the participants, deals, runs every street and settles the
// pot. Stacks are updated in place.
func (h *Hand) Play() (*HandResult, error) {
	res := &HandResult{
		ID:        h.id,
		HoleCards: make(map[int][]poker.Card),
	}

	dealt := 0
	for _, p := range h.players {
		p.Reset()
		res.StartStacks = append(res.StartStacks, p.Stack)
		if p.InHand() {
			dealt++
		}
	}
	if dealt < 2 {
		return nil, fmt.Errorf("%w: %d", ErrNotEnoughPlayers, dealt)
	}
	total := sumStacks(h.players)

	for _, p := range h.players {
		if !p.InHand() {
			continue
		}
		cards, err := h.deck.Deal(2)
		if err != nil {
			return nil, fmt.Errorf("dealing hole cards: %w", err)
		}
		p.HoleCards = cards
		res.HoleCards[p.Seat] = cards
	}

	br := NewBettingRound(h.players, h.buttonIndex(), h.rules, h.logger)
	res.Button = br.button

	pot := 0
	for _, street := range Streets {
		if n := street.cardsToDeal(); n > 0 {
			cards, err := h.deck.Deal(n)
			if err != nil {
				return nil, fmt.Errorf("dealing the %s: %w", street, err)
			}
			res.Board = append(res.Board, cards...)
		}

		// Pre-flop always runs for the blinds. Later streets with fewer than
		// two participants able to act just run the board out.
		if street != Preflop && countActive(h.players) < 2 {
			continue
		}

		sr := br.Run(street, res.Board, pot, 0)
		res.Streets = append(res.Streets, street)
		res.Actions = append(res.Actions, sr.Actions...)
		if sr.HandOver {
			res.Pot = sr.Awarded
			res.Distribution = Distribution{sr.Winner.Seat: sr.Awarded}
			return h.finish(res, total)
		}
		pot = sr.Pot
	}

	res.Pot = pot
	res.Showdown = true
	sd, err := Showdown(h.players, res.Board, pot)
	if err != nil {
		return nil, err
	}
	sd.Distribution.Apply(h.players)
	res.Distribution = sd.Distribution
	res.Ranks = sd.Ranks
	return h.finish(res, total)
}

func (h *Hand) finish(res *HandResult, total int) (*HandResult, error) {
	for _, p := range h.players {
		res.EndStacks = append(res.EndStacks, p.Stack)
	}
	if after := sumStacks(h.players); after != total {
		return res, fmt.Errorf("%w: %d chips before, %d after", ErrChipsNotConserved, total, after)
	}
	res.Winners = res.Distribution.Seats()

	h.logger.Info("Hand complete",
		"pot", res.Pot,
		"showdown", res.Showdown,
		"winners", res.Winners)
	return res, nil
}

// buttonIndex returns the button, moved forward past participants sitting out.
func (h *Hand) buttonIndex() int {
	n := len(h.players)
	for i := 0; i < n; i++ {
		idx := (h.button + i) % n
		if h.players[idx].InHand() {
			return idx
		}
	}
	return h.button
}

func countActive(players []*Participant) int {
	n := 0
	for _, p := range players {
		if p.CanAct() {
			n++
		}
	}
	return n
}

func sumStacks(players []*Participant) int {
	total := 0
	for _, p := range players {
		total += p.Stack
	}
	return total
}
