// Package game implements No-Limit Texas Hold'em betting and settlement.
//
// The main types are BettingRound, which drives a single street of
// sequential action to closure, and Hand, which deals cards, advances the
// streets and settles the pot at showdown.
//
// # Basic Usage
//
// Play one hand with injected strategies:
//
//	players := []*game.Participant{
//	    game.NewParticipant(0, "Alice", 1000, bot.NewCallBot(logger)),
//	    game.NewParticipant(1, "Bob", 1000, bot.NewFoldBot(logger)),
//	}
//	deck := poker.NewDeck(randutil.New(42))
//	h := game.NewHand(players, 0, game.Rules{SmallBlind: 5, BigBlind: 10, MinBet: 10}, deck)
//	result, err := h.Play()
//
// A single street can be driven directly, which is how the betting rules
// are tested:
//
//	br := game.NewBettingRound(players, button, rules, logger)
//	res := br.Run(game.Flop, board, pot, 0)
//
// # Architecture
//
//   - Participant: per-player mutable state (stack, contributions, status)
//   - Strategy: injected decision function, sees a read-only View
//   - BettingRound: blinds, action queue, raise reopening, closure
//   - BuildPots / Settle: tiered side pots and showdown distribution
//   - Hand: orchestrates streets and asserts chip conservation
//
// Strategies that return an illegal action lose their turn: the action is
// coerced to a fold and logged, it is never returned as an error.
package game
