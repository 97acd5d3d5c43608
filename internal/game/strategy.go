package game

import "github.com/lox/holdemsim/poker"

// View is the read-only snapshot a Strategy decides from. Slices are copies.
type View struct {
	Street     Street
	Seat       int
	Name       string
	HoleCards  []poker.Card
	Board      []poker.Card
	Pot        int
	CurrentBet int
	MinBet     int
	// MinRaiseTo is the conventional full-raise target. Any fundable raise
	// above CurrentBet is legal.
	MinRaiseTo int
	ToCall     int
	Stack      int
	Bet        int
	// Opponents counts other participants still in the hand.
	Opponents int
}

// CanCheck reports whether checking is legal.
func (v View) CanCheck() bool { return v.ToCall == 0 }

// MaxRaiseTo is the largest raise target the participant can fund.
func (v View) MaxRaiseTo() int { return v.Bet + v.Stack }

// Strategy chooses an action for the participant to act.
type Strategy interface {
	Decide(View) Action
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc func(View) Action

func (f StrategyFunc) Decide(v View) Action { return f(v) }
