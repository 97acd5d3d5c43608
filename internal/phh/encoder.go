package phh

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/lox/holdemsim/internal/fileutil"
	"github.com/lox/holdemsim/internal/game"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	// Use tabs for arrays to match human expectations
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeSession writes hands as numbered sections ([1], [2], ...), the
// .phhs layout.
func EncodeSession(w io.Writer, hands []*HandHistory) error {
	for i, hand := range hands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%d]\n", i+1); err != nil {
			return err
		}
		if err := Encode(w, hand); err != nil {
			return fmt.Errorf("phh: hand %d: %w", i+1, err)
		}
	}
	return nil
}

// WriteFile writes hands to path as a .phhs session, atomically.
func WriteFile(path string, hands []*HandHistory) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return EncodeSession(w, hands)
	})
}

// ReadFile decodes a .phhs session written by WriteFile. Hands come back in
// section order with Board filled from the deal actions.
func ReadFile(path string) ([]HandHistory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a sectioned PHH session.
func Decode(r io.Reader) ([]HandHistory, error) {
	sections := make(map[string]HandHistory)
	if _, err := toml.NewDecoder(r).Decode(&sections); err != nil {
		return nil, fmt.Errorf("phh: decode session: %w", err)
	}

	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareSectionKeys)

	hands := make([]HandHistory, 0, len(keys))
	for _, key := range keys {
		hand := sections[key]
		if hand.HandID == "" {
			hand.HandID = key
		}
		hand.Board = boardFromActions(hand.Actions)
		hands = append(hands, hand)
	}
	return hands, nil
}

func compareSectionKeys(a, b string) int {
	ai, errA := strconv.Atoi(a)
	bi, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return ai - bi
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// FormatAction converts an action log entry to a PHH action string. player
// is the zero-based PHH position and total the street contribution after the
// action. Blind posts are carried by blinds_or_straddles and are not emitted.
func FormatAction(player int, event game.Event, total int) (string, bool) {
	p := fmt.Sprintf("p%d", player+1)
	switch event {
	case game.EventFold:
		return p + " f", true
	case game.EventCheck, game.EventCall:
		return p + " cc", true
	case game.EventRaise:
		if total <= 0 {
			return "", false
		}
		return fmt.Sprintf("%s cbr %d", p, total), true
	case game.EventSmallBlind, game.EventBigBlind:
		return "", false
	default:
		return fmt.Sprintf("# %s %s %d", p, event, total), true
	}
}
