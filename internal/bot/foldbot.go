package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
)

// FoldBot is a simple bot that always folds (or checks when possible)
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger}
}

func (f *FoldBot) Decide(v game.View) game.Action {
	if v.CanCheck() {
		return game.CheckAction()
	}
	return game.FoldAction()
}
