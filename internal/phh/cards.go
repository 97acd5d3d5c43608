package phh

import (
	"strings"

	"github.com/lox/holdemsim/poker"
)

// FormatCards renders cards in PHH notation (e.g. "AsTd").
func FormatCards(cards []poker.Card) string {
	return poker.FormatCards(cards)
}

// SplitCards splits a run of two-character PHH cards ("AsTd7h").
func SplitCards(run string) []string {
	var out []string
	for i := 0; i+2 <= len(run); i += 2 {
		out = append(out, run[i:i+2])
	}
	return out
}

// ParseCards parses a run of PHH cards. Unknown cards ("??") are an error.
func ParseCards(run string) ([]poker.Card, error) {
	parts := SplitCards(run)
	cards := make([]poker.Card, 0, len(parts))
	for _, part := range parts {
		c, err := poker.ParseCard(part)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// boardFromActions collects the community cards dealt by "d db" actions.
func boardFromActions(actions []string) []string {
	var board []string
	for _, action := range actions {
		if run, ok := strings.CutPrefix(action, "d db "); ok {
			board = append(board, SplitCards(strings.TrimSpace(run))...)
		}
	}
	return board
}
