package game

import (
	"fmt"

	"github.com/lox/holdemsim/poker"
)

// Status is a participant's standing within the current hand.
type Status uint8

const (
	Active Status = iota
	Folded
	AllIn
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Folded:
		return "folded"
	case AllIn:
		return "all-in"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Participant represents a seated player
type Participant struct {
	Seat      int
	Name      string
	Stack     int
	Bet       int // contribution on the current street
	TotalBet  int // contribution over the whole hand
	HoleCards []poker.Card
	Status    Status
	Strategy  Strategy
}

// NewParticipant seats a player with the given stack.
func NewParticipant(seat int, name string, stack int, strategy Strategy) *Participant {
	if stack < 0 {
		panic(fmt.Sprintf("game: negative stack %d for %s", stack, name))
	}
	return &Participant{
		Seat:     seat,
		Name:     name,
		Stack:    stack,
		Strategy: strategy,
	}
}

// Reset clears per-hand state. A participant without chips sits the hand out.
func (p *Participant) Reset() {
	p.Bet = 0
	p.TotalBet = 0
	p.HoleCards = nil
	p.Status = Active
	if p.Stack == 0 {
		p.Status = Folded
	}
}

// CanAct reports whether the participant may still make decisions.
func (p *Participant) CanAct() bool { return p.Status == Active }

// InHand reports whether the participant can still win chips.
func (p *Participant) InHand() bool { return p.Status != Folded }

// commit moves up to amount chips from the stack into the participant's
// contributions and returns what was actually paid. Emptying the stack makes
// the participant all-in.
func (p *Participant) commit(amount int) int {
	if amount <= 0 {
		return 0
	}
	paid := min(amount, p.Stack)
	p.Stack -= paid
	p.Bet += paid
	p.TotalBet += paid
	if p.Stack == 0 {
		p.Status = AllIn
	}
	return paid
}

func (p *Participant) String() string {
	return fmt.Sprintf("%s(seat %d, stack %d, %s)", p.Name, p.Seat, p.Stack, p.Status)
}
