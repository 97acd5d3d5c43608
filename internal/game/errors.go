package game

import "errors"

var (
	// ErrIllegalAction marks an action that violates the betting rules. The
	// engine recovers by folding the offender.
	ErrIllegalAction = errors.New("illegal action")

	// ErrInsufficientFunds marks a blind, call or raise larger than the
	// participant's stack. Blinds and calls are capped at the stack (all-in);
	// raises are folded.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrPotMismatch is returned when the side pots built from contributions
	// do not add up to the pot being settled.
	ErrPotMismatch = errors.New("pot does not match contributions")

	// ErrChipsNotConserved is returned when a hand changes the total number of
	// chips at the table.
	ErrChipsNotConserved = errors.New("chips not conserved")

	// ErrNotEnoughPlayers is returned when fewer than two participants have chips.
	ErrNotEnoughPlayers = errors.New("not enough players with chips")

	// ErrNoContenders is returned when settling a pot nobody can win.
	ErrNoContenders = errors.New("no participant left to award")
)
