package phh

import (
	"fmt"
	"time"

	"github.com/lox/holdemsim/internal/game"
)

// FromHand converts a finished hand to PHH. players are the participants the
// hand was played with, in seating order. Participants that sat the hand out
// are omitted. PHH positions start at the small blind and end on the button.
func FromHand(res *game.HandResult, players []*game.Participant, rules game.Rules, table string, at time.Time) *HandHistory {
	// Seating order of the dealt-in participants, rotated to start at the
	// small blind.
	var dealt []int
	for i := range players {
		if res.StartStacks[i] > 0 {
			dealt = append(dealt, i)
		}
	}
	start := 0
	for pos, idx := range dealt {
		if idx == res.Button {
			start = pos + 1
			if len(dealt) == 2 {
				start = pos
			}
			break
		}
	}
	order := make([]int, len(dealt))
	for i := range dealt {
		order[i] = dealt[(start+i)%len(dealt)]
	}

	n := len(order)
	hist := &HandHistory{
		Variant:           Variant,
		Table:             table,
		SeatCount:         len(players),
		Seats:             make([]int, n),
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            rules.MinBet,
		StartingStacks:    make([]int, n),
		FinishingStacks:   make([]int, n),
		Winnings:          make([]int, n),
		Actions:           make([]string, 0, n+len(res.Actions)+4),
		Players:           make([]string, n),
		HandID:            res.ID,
		Board:             SplitCards(FormatCards(res.Board)),
		Timestamp:         at,
	}

	position := make(map[int]int, n) // seat -> PHH position
	for pos, idx := range order {
		p := players[idx]
		position[p.Seat] = pos
		hist.Seats[pos] = p.Seat + 1
		hist.Players[pos] = p.Name
		hist.StartingStacks[pos] = res.StartStacks[idx]
		hist.FinishingStacks[pos] = res.EndStacks[idx]
		hist.Winnings[pos] = res.Distribution[p.Seat]
		hist.Actions = append(hist.Actions, fmt.Sprintf("d dh p%d %s", pos+1, FormatCards(res.HoleCards[p.Seat])))
	}

	boardDealt := 0
	for _, street := range game.Streets {
		if size := street.BoardSize(); size > boardDealt && size <= len(res.Board) {
			hist.Actions = append(hist.Actions, "d db "+FormatCards(res.Board[boardDealt:size]))
			boardDealt = size
		}
		for _, rec := range res.Actions {
			if rec.Street != street {
				continue
			}
			pos := position[rec.Seat]
			if rec.Event == game.EventSmallBlind || rec.Event == game.EventBigBlind {
				hist.BlindsOrStraddles[pos] = rec.Paid
			}
			if formatted, ok := FormatAction(pos, rec.Event, rec.Total); ok {
				hist.Actions = append(hist.Actions, formatted)
			}
		}
	}

	if res.Showdown {
		for pos, idx := range order {
			seat := players[idx].Seat
			if _, shown := res.Ranks[seat]; shown {
				hist.Actions = append(hist.Actions, fmt.Sprintf("p%d sm %s", pos+1, FormatCards(res.HoleCards[seat])))
			}
		}
	}

	populateTimeFields(hist)
	return hist
}
