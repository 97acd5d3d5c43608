package game

import "fmt"

// ActionKind identifies what a participant chose to do.
type ActionKind uint8

const (
	Fold ActionKind = iota
	Check
	Call
	Raise
)

func (k ActionKind) String() string {
	switch k {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return fmt.Sprintf("action(%d)", uint8(k))
	}
}

// Action is a decision returned by a Strategy. Only Raise carries a payload:
// the total street contribution the participant is raising to. The zero value
// is a fold.
type Action struct {
	kind ActionKind
	to   int
}

func FoldAction() Action  { return Action{kind: Fold} }
func CheckAction() Action { return Action{kind: Check} }
func CallAction() Action  { return Action{kind: Call} }

// RaiseTo raises the current bet to the given street total.
func RaiseTo(amount int) Action { return Action{kind: Raise, to: amount} }

func (a Action) Kind() ActionKind { return a.kind }

// Amount returns the raise target, or zero for non-raise actions.
func (a Action) Amount() int {
	if a.kind != Raise {
		return 0
	}
	return a.to
}

func (a Action) String() string {
	if a.kind == Raise {
		return fmt.Sprintf("raise %d", a.to)
	}
	return a.kind.String()
}

// Event is an entry type in the hand's action log. It extends ActionKind with
// forced bets.
type Event uint8

const (
	EventFold Event = iota
	EventCheck
	EventCall
	EventRaise
	EventSmallBlind
	EventBigBlind
)

func (e Event) String() string {
	switch e {
	case EventSmallBlind:
		return "post_small_blind"
	case EventBigBlind:
		return "post_big_blind"
	case EventFold, EventCheck, EventCall, EventRaise:
		return ActionKind(e).String()
	default:
		return fmt.Sprintf("event(%d)", uint8(e))
	}
}

// ActionRecord is one applied action, after any coercion.
type ActionRecord struct {
	Street Street
	Seat   int
	Name   string
	Event  Event
	// Paid is the chips moved from stack to pot by this action.
	Paid int
	// Total is the participant's street contribution after the action.
	Total int
	AllIn bool
	// Coerced is set when the declared action was illegal and replaced.
	Coerced  bool
	Declared Action
}

func eventOf(k ActionKind) Event { return Event(k) }
