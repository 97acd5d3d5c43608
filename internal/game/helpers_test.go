package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

var testRules = Rules{SmallBlind: 10, BigBlind: 20, MinBet: 20}

// seatPlayers seats P0..Pn with the given stacks, ready to play a hand.
func seatPlayers(stacks ...int) []*Participant {
	players := make([]*Participant, len(stacks))
	for i, s := range stacks {
		players[i] = NewParticipant(i, fmt.Sprintf("P%d", i), s, checkOrFold())
		players[i].Reset()
	}
	return players
}

// scripted plays the given actions in order, then checks or folds.
func scripted(actions ...Action) Strategy {
	i := 0
	return StrategyFunc(func(v View) Action {
		if i >= len(actions) {
			return checkOrFold().Decide(v)
		}
		a := actions[i]
		i++
		return a
	})
}

func checkOrFold() Strategy {
	return StrategyFunc(func(v View) Action {
		if v.CanCheck() {
			return CheckAction()
		}
		return FoldAction()
	})
}

func alwaysCall() Strategy {
	return StrategyFunc(func(View) Action { return CallAction() })
}

// chaotic returns legal and illegal actions at random.
func chaotic(rng *rand.Rand) Strategy {
	return StrategyFunc(func(v View) Action {
		switch rng.IntN(6) {
		case 0:
			return FoldAction()
		case 1:
			return CheckAction()
		case 2, 3:
			return CallAction()
		case 4:
			return RaiseTo(v.MinRaiseTo + rng.IntN(3)*v.MinBet)
		default:
			return RaiseTo(v.MaxRaiseTo())
		}
	})
}

func stacksOf(players []*Participant) int {
	total := 0
	for _, p := range players {
		total += p.Stack
	}
	return total
}

func events(recs []ActionRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = fmt.Sprintf("%d:%s", r.Seat, r.Event)
	}
	return out
}
