package poker

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidInput is returned when the evaluator is handed anything other
// than seven distinct, well-formed cards.
var ErrInvalidInput = errors.New("invalid evaluator input")

// Category enumerates the ten hand classes ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category in ascending strength.
var Categories = [...]Category{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// BandWidth is the size of the score band reserved for each category.
// Category c owns scores [(c+1)*BandWidth, (c+2)*BandWidth).
const BandWidth = 1_000_000

// BandBase returns the lowest score a hand of category c can have.
func BandBase(c Category) int {
	return (int(c) + 1) * BandWidth
}

// HandRank is the evaluation of a five card hand. Higher scores are stronger
// and scores alone order hands across categories.
type HandRank struct {
	Category Category
	Score    int
	Cards    [5]Card // ordered by significance: made cards first, then kickers
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 on a tie.
func Compare(a, b HandRank) int {
	switch {
	case a.Score > b.Score:
		return 1
	case a.Score < b.Score:
		return -1
	default:
		return 0
	}
}

// String returns a short description such as "Full House (KKK99)".
func (h HandRank) String() string {
	ranks := make([]byte, 0, 5)
	for _, c := range h.Cards {
		ranks = append(ranks, c.Rank.String()[0])
	}
	return fmt.Sprintf("%s (%s)", h.Category, ranks)
}

// Evaluate returns the best five card hand obtainable from exactly seven cards.
//
// All 21 five card subsets are scored and the maximum kept. Among subsets with
// equal score the one with the lowest canonical card order wins, so the result
// does not depend on the order of the input.
func Evaluate(cards []Card) (HandRank, error) {
	if len(cards) != 7 {
		return HandRank{}, fmt.Errorf("%w: need 7 cards, got %d", ErrInvalidInput, len(cards))
	}
	seen := make(map[Card]bool, 7)
	for _, c := range cards {
		if !c.Valid() {
			return HandRank{}, fmt.Errorf("%w: malformed card %v", ErrInvalidInput, c)
		}
		if seen[c] {
			return HandRank{}, fmt.Errorf("%w: duplicate card %s", ErrInvalidInput, c)
		}
		seen[c] = true
	}

	var best HandRank
	found := false
	var five [5]Card
	// Each subset drops the pair of indices (i, j).
	for i := 0; i < 7; i++ {
		for j := i + 1; j < 7; j++ {
			n := 0
			for k, c := range cards {
				if k != i && k != j {
					five[n] = c
					n++
				}
			}
			hr := EvaluateFive(five)
			if !found || hr.Score > best.Score || (hr.Score == best.Score && canonicalLess(hr.Cards, best.Cards)) {
				best = hr
				found = true
			}
		}
	}
	return best, nil
}

// EvaluateFive classifies exactly five cards.
func EvaluateFive(cards [5]Card) HandRank {
	var rankCounts [Ace + 1]int
	var suitCounts [4]int
	for _, c := range cards {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
	}

	flush := slices.Contains(suitCounts[:], 5)
	straightTop := straightHigh(rankCounts)

	// Ranks grouped by multiplicity, biggest groups first, higher rank first.
	groups := make([]Rank, 0, 5)
	for count := 4; count >= 1; count-- {
		for r := Ace; r >= Two; r-- {
			if rankCounts[r] == count {
				groups = append(groups, r)
			}
		}
	}
	top := rankCounts[groups[0]]

	var cat Category
	var tiebreak []Rank
	switch {
	case flush && straightTop == Ace:
		cat = RoyalFlush
	case flush && straightTop > 0:
		cat, tiebreak = StraightFlush, []Rank{straightTop}
	case top == 4:
		cat, tiebreak = FourOfAKind, groups
	case top == 3 && len(groups) == 2:
		cat, tiebreak = FullHouse, groups
	case flush:
		cat, tiebreak = Flush, groups
	case straightTop > 0:
		cat, tiebreak = Straight, []Rank{straightTop}
	case top == 3:
		cat, tiebreak = ThreeOfAKind, groups
	case top == 2 && len(groups) == 3:
		cat, tiebreak = TwoPair, groups
	case top == 2:
		cat, tiebreak = OnePair, groups
	default:
		cat, tiebreak = HighCard, groups
	}

	return HandRank{
		Category: cat,
		Score:    BandBase(cat) + encodeRanks(tiebreak),
		Cards:    orderBySignificance(cards, rankCounts, straightTop),
	}
}

// straightHigh returns the top card of a five distinct rank run, Five for the
// wheel, or 0 when the ranks do not form a straight.
func straightHigh(counts [Ace + 1]int) Rank {
	for r := Two; r <= Ace; r++ {
		if counts[r] > 1 {
			return 0
		}
	}
	for top := Ace; top >= Six; top-- {
		if counts[top] == 1 && counts[top-1] == 1 && counts[top-2] == 1 && counts[top-3] == 1 && counts[top-4] == 1 {
			return top
		}
	}
	if counts[Ace] == 1 && counts[Two] == 1 && counts[Three] == 1 && counts[Four] == 1 && counts[Five] == 1 {
		return Five
	}
	return 0
}

// encodeRanks packs ranks most significant first in base 15. Five ranks fit
// below 15^5 = 759375, inside a single band.
func encodeRanks(ranks []Rank) int {
	v := 0
	for _, r := range ranks {
		v = v*15 + int(r)
	}
	return v
}

func orderBySignificance(cards [5]Card, counts [Ace + 1]int, straightTop Rank) [5]Card {
	out := cards
	rankKey := func(r Rank) int {
		// Ace plays low in the wheel.
		if straightTop == Five && r == Ace {
			return 1
		}
		return int(r)
	}
	slices.SortFunc(out[:], func(a, b Card) int {
		if ca, cb := counts[a.Rank], counts[b.Rank]; ca != cb {
			return cb - ca
		}
		if ka, kb := rankKey(a.Rank), rankKey(b.Rank); ka != kb {
			return kb - ka
		}
		return int(a.Suit) - int(b.Suit)
	})
	return out
}

func canonicalLess(a, b [5]Card) bool {
	for i := range a {
		if a[i] != b[i] {
			if a[i].Rank != b[i].Rank {
				return a[i].Rank > b[i].Rank
			}
			return a[i].Suit < b[i].Suit
		}
	}
	return false
}
