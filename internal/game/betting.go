package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/poker"
)

// Rules holds the forced bets and the minimum bet unit of a table.
type Rules struct {
	SmallBlind int
	BigBlind   int
	MinBet     int
}

// Validate checks the rules are playable.
func (r Rules) Validate() error {
	switch {
	case r.SmallBlind <= 0:
		return fmt.Errorf("small blind must be positive, got %d", r.SmallBlind)
	case r.BigBlind < r.SmallBlind:
		return fmt.Errorf("big blind %d is smaller than small blind %d", r.BigBlind, r.SmallBlind)
	case r.MinBet <= 0:
		return fmt.Errorf("min bet must be positive, got %d", r.MinBet)
	}
	return nil
}

// StreetResult is the outcome of one betting street.
type StreetResult struct {
	Street     Street
	Pot        int
	CurrentBet int
	// HandOver is set when a single participant remains. Winner has then
	// been credited Awarded chips and Pot is zero.
	HandOver bool
	Winner   *Participant
	Awarded  int
	Actions  []ActionRecord
}

// BettingRound drives the streets of one hand for a fixed set of
// participants. Participants are mutated in place.
type BettingRound struct {
	players []*Participant
	button  int
	rules   Rules
	logger  *log.Logger
	guard   int
}

// NewBettingRound creates a betting round over players in seating order.
// button is an index into players.
func NewBettingRound(players []*Participant, button int, rules Rules, logger *log.Logger) *BettingRound {
	if len(players) < 2 {
		panic("game: betting round needs at least 2 participants")
	}
	if button < 0 || button >= len(players) {
		panic(fmt.Sprintf("game: button %d out of range", button))
	}
	if rules.MinBet <= 0 {
		panic("game: min bet must be positive")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BettingRound{
		players: players,
		button:  button,
		rules:   rules,
		logger:  logger,
		guard:   maxActionsPerStreet(players),
	}
}

// maxActionsPerStreet bounds the decisions taken on one street. Every raise
// lifts the current bet by at least one chip, so no legal sequence gets close.
func maxActionsPerStreet(players []*Participant) int {
	chips := 0
	for _, p := range players {
		chips += p.Stack + p.Bet
	}
	return len(players) * (chips + 2)
}

// Run plays one street to closure. For post-flop streets callers pass a
// currentBet of zero; pre-flop the blinds are posted first.
func (br *BettingRound) Run(street Street, board []poker.Card, pot, currentBet int) StreetResult {
	res := StreetResult{Street: street}
	for _, p := range br.players {
		p.Bet = 0
	}

	minRaise := br.rules.MinBet
	start := br.button + 1
	if street == Preflop {
		minRaise = max(minRaise, br.rules.BigBlind)
		var bb int
		pot, currentBet, bb = br.postBlinds(&res, pot, currentBet)
		start = bb + 1
	}

	if w := br.soleSurvivor(); w != nil {
		return br.award(res, w, pot, currentBet)
	}

	queue := br.queueFrom(start, -1)
	steps := 0
	for len(queue) > 0 {
		if br.settled(currentBet) {
			break
		}
		idx := queue[0]
		queue = queue[1:]
		p := br.players[idx]
		if !p.CanAct() {
			continue
		}

		declared := br.decide(p, street, board, pot, currentBet, minRaise)
		steps++
		rec, raised := br.apply(p, street, declared, steps > br.guard, &currentBet, &minRaise)
		pot += rec.Paid
		res.Actions = append(res.Actions, rec)

		br.logger.Debug("Player action",
			"street", street,
			"player", p.Name,
			"action", rec.Event,
			"paid", rec.Paid,
			"pot", pot,
			"current_bet", currentBet)

		if raised {
			queue = br.queueFrom(idx+1, idx)
		}
		if w := br.soleSurvivor(); w != nil {
			return br.award(res, w, pot, currentBet)
		}
	}

	res.Pot = pot
	res.CurrentBet = currentBet
	return res
}

func (br *BettingRound) award(res StreetResult, winner *Participant, pot, currentBet int) StreetResult {
	winner.Stack += pot
	br.logger.Debug("Hand over", "street", res.Street, "winner", winner.Name, "pot", pot)
	res.HandOver = true
	res.Winner = winner
	res.Awarded = pot
	res.Pot = 0
	res.CurrentBet = currentBet
	return res
}

// postBlinds posts both blinds and returns the new pot, the opening current
// bet and the big blind's index.
func (br *BettingRound) postBlinds(res *StreetResult, pot, currentBet int) (int, int, int) {
	sb, bb := br.blindSeats()
	for _, blind := range []struct {
		idx    int
		amount int
		event  Event
	}{
		{sb, br.rules.SmallBlind, EventSmallBlind},
		{bb, br.rules.BigBlind, EventBigBlind},
	} {
		p := br.players[blind.idx]
		paid := p.commit(blind.amount)
		if paid < blind.amount {
			br.logger.Debug("Short blind",
				"player", p.Name,
				"blind", blind.amount,
				"posted", paid,
				"error", fmt.Errorf("%w: stack %d", ErrInsufficientFunds, paid))
		}
		pot += paid
		currentBet = max(currentBet, p.Bet)
		res.Actions = append(res.Actions, ActionRecord{
			Street: Preflop,
			Seat:   p.Seat,
			Name:   p.Name,
			Event:  blind.event,
			Paid:   paid,
			Total:  p.Bet,
			AllIn:  p.Status == AllIn,
		})
	}
	return pot, currentBet, bb
}

// blindSeats returns the small and big blind indexes. Heads-up the button is
// the small blind.
func (br *BettingRound) blindSeats() (sb, bb int) {
	dealt := 0
	for _, p := range br.players {
		if p.InHand() {
			dealt++
		}
	}
	if dealt == 2 {
		sb = br.seatFrom(br.button)
	} else {
		sb = br.seatFrom(br.button + 1)
	}
	bb = br.seatFrom(sb + 1)
	return sb, bb
}

// seatFrom returns the first index at or after from holding a participant
// still in the hand.
func (br *BettingRound) seatFrom(from int) int {
	n := len(br.players)
	for i := 0; i < n; i++ {
		idx := (from + i) % n
		if br.players[idx].InHand() {
			return idx
		}
	}
	return from % n
}

// queueFrom lists Active participants in seat order starting at from,
// leaving out skip.
func (br *BettingRound) queueFrom(from, skip int) []int {
	n := len(br.players)
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		idx := (from + i) % n
		if idx != skip && br.players[idx].CanAct() {
			queue = append(queue, idx)
		}
	}
	return queue
}

// settled reports whether nobody is left who could still change the street.
func (br *BettingRound) settled(currentBet int) bool {
	var active []*Participant
	for _, p := range br.players {
		if p.CanAct() {
			active = append(active, p)
		}
	}
	switch len(active) {
	case 0:
		return true
	case 1:
		return active[0].Bet >= currentBet
	default:
		return false
	}
}

func (br *BettingRound) soleSurvivor() *Participant {
	var last *Participant
	for _, p := range br.players {
		if p.InHand() {
			if last != nil {
				return nil
			}
			last = p
		}
	}
	return last
}

func (br *BettingRound) decide(p *Participant, street Street, board []poker.Card, pot, currentBet, minRaise int) Action {
	if p.Strategy == nil {
		return FoldAction()
	}
	opponents := -1
	for _, o := range br.players {
		if o.InHand() {
			opponents++
		}
	}
	return p.Strategy.Decide(View{
		Street:     street,
		Seat:       p.Seat,
		Name:       p.Name,
		HoleCards:  append([]poker.Card(nil), p.HoleCards...),
		Board:      append([]poker.Card(nil), board...),
		Pot:        pot,
		CurrentBet: currentBet,
		MinBet:     br.rules.MinBet,
		MinRaiseTo: currentBet + minRaise,
		ToCall:     max(0, currentBet-p.Bet),
		Stack:      p.Stack,
		Bet:        p.Bet,
		Opponents:  opponents,
	})
}

// apply executes declared for p, folding instead when it is illegal or
// the street has exceeded its action guard.
func (br *BettingRound) apply(p *Participant, street Street, declared Action, overGuard bool, currentBet, minRaise *int) (ActionRecord, bool) {
	rec := ActionRecord{Street: street, Seat: p.Seat, Name: p.Name, Declared: declared}

	act, err := legalize(p, declared, *currentBet)
	if err == nil && overGuard && act.Kind() != Fold {
		err = fmt.Errorf("%w: more than %d actions on the %s", ErrIllegalAction, br.guard, street)
	}
	if err != nil {
		br.logger.Warn("Coerced action to fold",
			"player", p.Name,
			"street", street,
			"declared", declared,
			"error", err)
		act = FoldAction()
		rec.Coerced = true
	}

	raised := false
	switch act.Kind() {
	case Fold:
		p.Status = Folded
	case Check:
	case Call:
		rec.Paid = p.commit(*currentBet - p.Bet)
	case Raise:
		to := act.Amount()
		rec.Paid = p.commit(to - p.Bet)
		// Only a raise of at least the last increment moves the
		// suggested minimum offered to the next strategy.
		if inc := to - *currentBet; inc >= *minRaise {
			*minRaise = inc
		}
		*currentBet = to
		raised = true
	}

	rec.Event = eventOf(act.Kind())
	rec.Total = p.Bet
	rec.AllIn = p.Status == AllIn
	return rec, raised
}

// legalize validates a against the betting state. Any fundable raise above
// the current bet is legal. A call with nothing owed becomes a check.
func legalize(p *Participant, a Action, currentBet int) (Action, error) {
	owed := currentBet - p.Bet
	switch a.Kind() {
	case Fold:
		return a, nil
	case Check:
		if owed > 0 {
			return a, fmt.Errorf("%w: check facing a bet of %d", ErrIllegalAction, owed)
		}
		return a, nil
	case Call:
		if owed <= 0 {
			return CheckAction(), nil
		}
		return a, nil
	case Raise:
		to := a.Amount()
		if to <= currentBet {
			return a, fmt.Errorf("%w: raise to %d does not exceed current bet %d", ErrIllegalAction, to, currentBet)
		}
		need := to - p.Bet
		if need > p.Stack {
			return a, fmt.Errorf("%w: raise to %d needs %d, stack is %d", ErrInsufficientFunds, to, need, p.Stack)
		}
		return a, nil
	default:
		return a, fmt.Errorf("%w: unknown action %v", ErrIllegalAction, a.Kind())
	}
}
