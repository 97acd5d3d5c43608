package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/poker"
)

// ChartBot implements a simple push-fold pre-flop chart and check/call post-flop
type ChartBot struct {
	logger *log.Logger
}

// NewChartBot creates a new ChartBot instance
func NewChartBot(logger *log.Logger) *ChartBot {
	return &ChartBot{logger: logger}
}

func (c *ChartBot) Decide(v game.View) game.Action {
	if v.Street == game.Preflop {
		// Push premium hands when short
		if premium(v.HoleCards) && v.Stack <= 20*v.MinBet && v.MaxRaiseTo() > v.CurrentBet {
			c.logger.Debug("chart-bot push", "player", v.Name, "cards", poker.FormatCards(v.HoleCards))
			return game.RaiseTo(v.MaxRaiseTo())
		}
		// Otherwise limp or see a free flop, fold to raises
		if v.CanCheck() {
			return game.CheckAction()
		}
		if v.CurrentBet <= v.MinBet {
			return game.CallAction()
		}
		return game.FoldAction()
	}

	if v.CanCheck() {
		return game.CheckAction()
	}
	return game.CallAction()
}

// premium matches TT+ and two broadway cards of king or better.
func premium(hole []poker.Card) bool {
	if len(hole) != 2 {
		return false
	}
	a, b := hole[0].Rank, hole[1].Rank
	return (a == b && a >= poker.Ten) || (a >= poker.King && b >= poker.King)
}
