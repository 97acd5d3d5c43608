package game

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

// Streets lists the four betting streets in order.
var Streets = [...]Street{Preflop, Flop, Turn, River}

func (s Street) String() string {
	if s < Preflop || s > Showdown {
		return "unknown"
	}
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// BoardSize is the number of community cards visible during the street.
func (s Street) BoardSize() int {
	switch s {
	case Preflop:
		return 0
	case Flop:
		return 3
	case Turn:
		return 4
	default:
		return 5
	}
}

// cardsToDeal is the number of community cards released when the street opens.
func (s Street) cardsToDeal() int {
	switch s {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}
