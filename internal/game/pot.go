package game

import (
	"slices"
)

// Pot is one tier of the pot. Eligible holds indexes into the participant
// slice the pot was built from, in seating order.
type Pot struct {
	Amount   int
	Cap      int // contribution level this tier covers up to
	Eligible []int
}

// BuildPots splits the hand's contributions into a main pot and side pots.
// A tier opens at every distinct all-in level; chips above the highest
// all-in form the last tier. Folded chips count toward every tier they
// reached but folded participants are never eligible. A tier nobody
// eligible contributed to is merged into the tier below.
func BuildPots(players []*Participant) []Pot {
	var levels []int
	top := 0
	for _, p := range players {
		top = max(top, p.TotalBet)
		if p.Status == AllIn && p.TotalBet > 0 {
			levels = append(levels, p.TotalBet)
		}
	}
	if top == 0 {
		return nil
	}
	levels = append(levels, top)
	slices.Sort(levels)
	levels = slices.Compact(levels)

	var pots []Pot
	carry, prev := 0, 0
	for _, level := range levels {
		pot := Pot{Amount: carry, Cap: level}
		carry = 0
		for i, p := range players {
			pot.Amount += min(max(p.TotalBet-prev, 0), level-prev)
			if p.InHand() && p.TotalBet >= level {
				pot.Eligible = append(pot.Eligible, i)
			}
		}
		prev = level

		switch {
		case len(pot.Eligible) > 0:
			pots = append(pots, pot)
		case len(pots) > 0:
			pots[len(pots)-1].Amount += pot.Amount
		default:
			carry = pot.Amount
		}
	}
	if carry > 0 && len(pots) > 0 {
		pots[len(pots)-1].Amount += carry
	}
	return pots
}

// TotalPot sums the amounts of pots.
func TotalPot(pots []Pot) int {
	total := 0
	for _, p := range pots {
		total += p.Amount
	}
	return total
}
