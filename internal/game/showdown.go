package game

import (
	"fmt"
	"maps"
	"slices"

	"github.com/lox/holdemsim/poker"
)

// Distribution maps seat numbers to the chips they win.
type Distribution map[int]int

// Total sums every award.
func (d Distribution) Total() int {
	total := 0
	for _, amount := range d {
		total += amount
	}
	return total
}

// Apply credits every award to the matching participant's stack.
func (d Distribution) Apply(players []*Participant) {
	for _, p := range players {
		p.Stack += d[p.Seat]
	}
}

// Seats returns the winning seats in ascending order.
func (d Distribution) Seats() []int {
	return slices.Sorted(maps.Keys(d))
}

// ShowdownResult details a settled showdown.
type ShowdownResult struct {
	Pots         []Pot
	Ranks        map[int]poker.HandRank // by seat
	Winners      [][]int                // seats per pot
	Distribution Distribution
}

// Settle awards pot to the best hands among the participants still in.
func Settle(players []*Participant, board []poker.Card, pot int) (Distribution, error) {
	res, err := Showdown(players, board, pot)
	if err != nil {
		return nil, err
	}
	return res.Distribution, nil
}

// Showdown is Settle with the evaluated hands and per-pot winners kept.
func Showdown(players []*Participant, board []poker.Card, pot int) (*ShowdownResult, error) {
	res := &ShowdownResult{
		Ranks:        make(map[int]poker.HandRank),
		Distribution: make(Distribution),
	}

	var contenders []*Participant
	for _, p := range players {
		if p.InHand() {
			contenders = append(contenders, p)
		}
	}
	switch {
	case len(contenders) == 0 && pot > 0:
		return nil, ErrNoContenders
	case len(contenders) == 0:
		return res, nil
	case len(contenders) == 1:
		res.Distribution[contenders[0].Seat] = pot
		res.Winners = [][]int{{contenders[0].Seat}}
		return res, nil
	}

	res.Pots = BuildPots(players)
	if total := TotalPot(res.Pots); total != pot {
		return nil, fmt.Errorf("%w: tiers hold %d, pot is %d", ErrPotMismatch, total, pot)
	}

	for _, p := range contenders {
		cards := make([]poker.Card, 0, 7)
		cards = append(cards, p.HoleCards...)
		cards = append(cards, board...)
		rank, err := poker.Evaluate(cards)
		if err != nil {
			return nil, fmt.Errorf("evaluating %s: %w", p.Name, err)
		}
		res.Ranks[p.Seat] = rank
	}

	for _, tier := range res.Pots {
		var winners []int
		best := -1
		for _, idx := range tier.Eligible {
			seat := players[idx].Seat
			score := res.Ranks[seat].Score
			switch {
			case score > best:
				best = score
				winners = []int{seat}
			case score == best:
				winners = append(winners, seat)
			}
		}
		share := tier.Amount / len(winners)
		for _, seat := range winners {
			res.Distribution[seat] += share
		}
		// Odd chips go to the first winner in seating order.
		res.Distribution[winners[0]] += tier.Amount - share*len(winners)
		res.Winners = append(res.Winners, winners)
	}
	return res, nil
}
