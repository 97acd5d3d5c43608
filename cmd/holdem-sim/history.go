package main

import (
	"errors"
	"fmt"

	"github.com/lox/holdemsim/internal/display"
	"github.com/lox/holdemsim/internal/phh"
)

// HistoryCmd is the root command for PHH utilities.
type HistoryCmd struct {
	Render HistoryRenderCmd `cmd:"render" help:"Print the hands of a PHH session file"`
}

// HistoryRenderCmd prints hands from a .phhs file.
type HistoryRenderCmd struct {
	File  string `arg:"" name:"file" type:"existingfile" help:"Path to session.phhs file"`
	Limit int    `help:"Maximum number of hands to render (0 = all)"`
}

func (cmd HistoryRenderCmd) Run() error {
	if cmd.File == "" {
		return errors.New("history render requires a file path")
	}

	hands, err := phh.ReadFile(cmd.File)
	if err != nil {
		return err
	}
	if len(hands) == 0 {
		return fmt.Errorf("no hands found in %s", cmd.File)
	}

	limit := cmd.Limit
	if limit <= 0 || limit > len(hands) {
		limit = len(hands)
	}
	for i := range limit {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(display.HandHistory(hands[i]))
	}
	return nil
}
