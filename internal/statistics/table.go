package statistics

import (
	"fmt"
	"slices"

	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/poker"
)

// Table aggregates results across every player at one or more tables.
type Table struct {
	BigBlind  int
	Hands     int
	Showdowns int
	FoldOuts  int

	MaxPotChips int
	TotalChips  int // sum of all pots

	// Categories counts every hand shown down; Winning counts the hands
	// that took at least one pot.
	Categories map[poker.Category]int
	Winning    map[poker.Category]int

	Players map[string]*Statistics
}

// NewTable creates an empty aggregate for the given big blind.
func NewTable(bigBlind int) *Table {
	if bigBlind <= 0 {
		panic("statistics: big blind must be positive")
	}
	return &Table{
		BigBlind:   bigBlind,
		Categories: make(map[poker.Category]int),
		Winning:    make(map[poker.Category]int),
		Players:    make(map[string]*Statistics),
	}
}

// Record adds a finished hand. players must be the participants the hand
// was played with, in the same order.
func (t *Table) Record(res *game.HandResult, players []*game.Participant) {
	t.Hands++
	t.TotalChips += res.Pot
	t.MaxPotChips = max(t.MaxPotChips, res.Pot)
	if res.Showdown {
		t.Showdowns++
	} else {
		t.FoldOuts++
	}

	for seat, rank := range res.Ranks {
		t.Categories[rank.Category]++
		if res.Distribution[seat] > 0 {
			t.Winning[rank.Category]++
		}
	}

	for i, p := range players {
		if res.StartStacks[i] == 0 {
			continue // sat out
		}
		net := res.Net(i)
		_, shown := res.Ranks[p.Seat]
		t.player(p.Name).Add(HandResult{
			NetChips:       net,
			NetBB:          float64(net) / float64(t.BigBlind),
			WentToShowdown: shown,
			Won:            res.Distribution[p.Seat] > 0,
			FinalPotSize:   res.Pot,
			FinalStack:     res.EndStacks[i],
		})
	}
}

func (t *Table) player(name string) *Statistics {
	s, ok := t.Players[name]
	if !ok {
		s = &Statistics{}
		t.Players[name] = s
	}
	return s
}

// Merge folds o into t. Both must use the same big blind.
func (t *Table) Merge(o *Table) {
	t.Hands += o.Hands
	t.Showdowns += o.Showdowns
	t.FoldOuts += o.FoldOuts
	t.TotalChips += o.TotalChips
	t.MaxPotChips = max(t.MaxPotChips, o.MaxPotChips)
	for c, n := range o.Categories {
		t.Categories[c] += n
	}
	for c, n := range o.Winning {
		t.Winning[c] += n
	}
	for name, s := range o.Players {
		t.player(name).Merge(s)
	}
}

// Names returns the player names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Players))
	for name := range t.Players {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// AveragePot returns the mean pot in chips.
func (t *Table) AveragePot() float64 {
	if t.Hands == 0 {
		return 0
	}
	return float64(t.TotalChips) / float64(t.Hands)
}

// Validate checks that chips only moved between players and that every
// player's ledger balances.
func (t *Table) Validate() error {
	if t.Showdowns+t.FoldOuts != t.Hands {
		return fmt.Errorf("showdowns (%d) and fold-outs (%d) do not add up to %d hands",
			t.Showdowns, t.FoldOuts, t.Hands)
	}
	net := 0
	for _, name := range t.Names() {
		s := t.Players[name]
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		net += s.NetChips
	}
	if net != 0 {
		return fmt.Errorf("net chips across players sum to %d", net)
	}
	return nil
}
