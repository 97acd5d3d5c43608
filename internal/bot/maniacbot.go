package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
)

// ManiacBot is an extremely aggressive bot that shoves frequently
type ManiacBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewManiacBot creates a new ManiacBot instance
func NewManiacBot(rng *rand.Rand, logger *log.Logger) *ManiacBot {
	return &ManiacBot{rng: rng, logger: logger}
}

func (m *ManiacBot) Decide(v game.View) game.Action {
	canRaise := v.MaxRaiseTo() > v.CurrentBet

	if v.CanCheck() {
		// Maniacs prefer to bet
		if !canRaise || m.rng.Float64() >= 0.85 {
			return game.CheckAction()
		}
		if v.Stack <= 20*v.MinBet || m.rng.Float64() < 0.3 {
			m.logger.Debug("maniac shove", "player", v.Name, "stack", v.Stack)
			return game.RaiseTo(v.MaxRaiseTo())
		}
		return game.RaiseTo(m.potSized(v))
	}

	// Facing a bet: 40% shove, 40% call, 20% fold
	r := m.rng.Float64()
	switch {
	case r < 0.4 && canRaise:
		m.logger.Debug("maniac shove over bet", "player", v.Name, "to_call", v.ToCall)
		return game.RaiseTo(v.MaxRaiseTo())
	case r < 0.8:
		return game.CallAction()
	default:
		return game.FoldAction()
	}
}

// potSized is a pot-sized raise target, clamped to what is legal and affordable.
func (m *ManiacBot) potSized(v game.View) int {
	target := v.CurrentBet + v.ToCall + v.Pot
	return min(max(target, v.MinRaiseTo), v.MaxRaiseTo())
}
