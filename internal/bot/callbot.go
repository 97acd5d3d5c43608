package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
)

// CallBot is a calling station: it checks when it can and calls everything else.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger}
}

func (c *CallBot) Decide(v game.View) game.Action {
	if v.CanCheck() {
		return game.CheckAction()
	}
	if v.ToCall >= v.Stack {
		c.logger.Debug("call-bot calling all-in", "player", v.Name, "to_call", v.ToCall, "stack", v.Stack)
	}
	return game.CallAction()
}
