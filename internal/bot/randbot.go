package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
)

// RandBot picks uniformly among a small set of actions. Its raise sizes are
// drawn without regard to the minimum raise or its own stack, so some of its
// raises are illegal and get folded by the engine.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) Decide(v game.View) game.Action {
	if v.Stack <= 0 {
		return game.FoldAction()
	}

	var choices []game.ActionKind
	switch {
	case v.CanCheck():
		choices = []game.ActionKind{game.Check, game.Raise}
	case v.Stack <= v.MinBet:
		choices = []game.ActionKind{game.Fold, game.Call}
	default:
		choices = []game.ActionKind{game.Fold, game.Call, game.Raise}
	}

	var action game.Action
	switch choices[r.rng.IntN(len(choices))] {
	case game.Fold:
		action = game.FoldAction()
	case game.Check:
		action = game.CheckAction()
	case game.Call:
		action = game.CallAction()
	case game.Raise:
		lo := v.CurrentBet + v.MinBet
		hi := max(3*v.CurrentBet, lo)
		action = game.RaiseTo(lo + r.rng.IntN(hi-lo+1))
	}

	r.logger.Debug("rand-bot decision", "player", v.Name, "action", action)
	return action
}
