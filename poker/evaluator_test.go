package poker

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func mustEvaluate(t *testing.T, s string) HandRank {
	t.Helper()
	hr, err := Evaluate(MustParseCards(s))
	if err != nil {
		t.Fatalf("Evaluate(%s): %v", s, err)
	}
	return hr
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		cards     string
		category  Category
		score     int // checked when non-zero
		bestCards string
	}{
		{name: "royal flush", cards: "As Ks Qs Js Ts 2d 3c", category: RoyalFlush, score: 10_000_000, bestCards: "AsKsQsJsTs"},
		{name: "straight flush six high", cards: "2s 3s 4s 5s 6s Kd Qh", category: StraightFlush, score: BandBase(StraightFlush) + 6, bestCards: "6s5s4s3s2s"},
		{name: "steel wheel", cards: "As 2s 3s 4s 5s Kd Qh", category: StraightFlush, score: BandBase(StraightFlush) + 5, bestCards: "5s4s3s2sAs"},
		{name: "four of a kind", cards: "9c 9d 9h 9s Ad 2c 3h", category: FourOfAKind, score: BandBase(FourOfAKind) + 9*15 + 14},
		{name: "full house", cards: "Kc Kd Kh Qs Qd 2c 3h", category: FullHouse, score: BandBase(FullHouse) + 13*15 + 12},
		{name: "full house from two trips", cards: "Kc Kd Kh Qs Qd Qh 3h", category: FullHouse, score: BandBase(FullHouse) + 13*15 + 12},
		{name: "flush", cards: "Ah Jh 9h 6h 3h Kd Qc", category: Flush},
		{name: "six card flush keeps top five", cards: "Ah Kh 9h 6h 3h 2h Qc", category: Flush, score: BandBase(Flush) + encodeRanks([]Rank{Ace, King, Nine, Six, Three})},
		{name: "straight", cards: "9c Td Jh Qs Kd 2c 3h", category: Straight, score: BandBase(Straight) + 13},
		{name: "broadway is not royal without flush", cards: "As Kd Qh Js Tc 2d 3h", category: Straight, score: BandBase(Straight) + 14},
		{name: "wheel straight", cards: "As 2d 3c 4h 5s Kh 9d", category: Straight, score: BandBase(Straight) + 5, bestCards: "5s4h3c2dAs"},
		{name: "three of a kind", cards: "7c 7d 7h As Kd 2c 4h", category: ThreeOfAKind, score: BandBase(ThreeOfAKind) + (7*15+14)*15 + 13},
		{name: "two pair", cards: "Jc Jd 4h 4s Ad 2c 8h", category: TwoPair, score: BandBase(TwoPair) + (11*15+4)*15 + 14},
		{name: "three pairs play best two", cards: "Ac Ad Kc Kd Qc Qd 2h", category: TwoPair, score: BandBase(TwoPair) + (14*15+13)*15 + 12},
		{name: "one pair", cards: "Tc Td 2h 5s 8d Jc Ah", category: OnePair},
		{name: "high card", cards: "2c 5d 9h Js Kd Ah 3c", category: HighCard, score: BandBase(HighCard) + encodeRanks([]Rank{Ace, King, Jack, Nine, Five})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hr := mustEvaluate(t, tt.cards)
			if hr.Category != tt.category {
				t.Fatalf("category = %v, want %v", hr.Category, tt.category)
			}
			if tt.score != 0 && hr.Score != tt.score {
				t.Errorf("score = %d, want %d", hr.Score, tt.score)
			}
			if tt.bestCards != "" && FormatCards(hr.Cards[:]) != tt.bestCards {
				t.Errorf("best cards = %s, want %s", FormatCards(hr.Cards[:]), tt.bestCards)
			}
		})
	}
}

func TestEvaluateTieBreaks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		winner string
		loser  string
	}{
		{name: "higher pair beats better kickers", winner: "4c 4d 7h 6s 5d 2c 9h", loser: "3c 3d Ah Ks Qd 2c 8h"},
		{name: "pair first kicker", winner: "Kc Kd Ah 9s 7d 4c 2h", loser: "Ks Kh Qh 9d 7c 4s 2d"},
		{name: "high card fifth kicker", winner: "Ah Kd 9c 7s 5h 3d 2c", loser: "As Kc 9d 7h 4s 3c 2d"},
		{name: "two pair kicker", winner: "Ac Ad Kc Kd Qh 3s 2d", loser: "Ah As Kh Ks Jd 3c 2c"},
		{name: "two pair second pair", winner: "Ac Ad Kc Kd 3h 4s 6d", loser: "Ah As Qh Qs Kd 3c 2c"},
		{name: "trips kicker", winner: "7c 7d 7h As Kd 2c 4h", loser: "7s 7d 7h Ac Qd 2c 4h"},
		{name: "full house trips outrank pair", winner: "3c 3d 3h Ks Kd 5c 9h", loser: "2c 2d 2h As Ad 5c 9h"},
		{name: "full house pair breaks tie", winner: "Kc Kd Kh As Ad 5c 9h", loser: "Kc Kd Kh Qs Qd 5c 9h"},
		{name: "quads kicker", winner: "9c 9d 9h 9s Ad 2c 3h", loser: "9c 9d 9h 9s Kd 2c 3h"},
		{name: "flush fifth card", winner: "Ah Jh 9h 6h 3h Kd Qc", loser: "Ah Jh 9h 6h 2h Kd Qc"},
		{name: "six high straight beats wheel", winner: "2c 3d 4h 5s 6d Kc Kh", loser: "As 2d 3c 4h 5s Kh 9d"},
		{name: "straight flush beats steel wheel", winner: "2s 3s 4s 5s 6s Kd Qh", loser: "As 2s 3s 4s 5s Kd Qh"},
		{name: "royal beats king high straight flush", winner: "As Ks Qs Js Ts 2d 3c", loser: "9s Ks Qs Js Ts 2d 3c"},
		{name: "weakest flush beats best straight", winner: "2h 3h 4h 5h 7h Kd Qc", loser: "As Kd Qh Js Tc 2d 3h"},
		{name: "weakest full house beats best flush", winner: "2c 2d 2h 3s 3d 5c 9h", loser: "Ah Kh Qh Jh 9h Kd Qc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := mustEvaluate(t, tt.winner)
			l := mustEvaluate(t, tt.loser)
			if Compare(w, l) != 1 || Compare(l, w) != -1 {
				t.Errorf("expected %v (%d) to beat %v (%d)", w, w.Score, l, l.Score)
			}
		})
	}
}

func TestEvaluateBoardPlaysTie(t *testing.T) {
	t.Parallel()
	a := mustEvaluate(t, "As Ks Qd Jh 9c 2d 3h")
	b := mustEvaluate(t, "As Ks Qd Jh 9c 4d 5h")
	if Compare(a, b) != 0 {
		t.Errorf("expected tie, got %v (%d) vs %v (%d)", a, a.Score, b, b.Score)
	}
}

func TestEvaluateInvalidInput(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards []Card
	}{
		{name: "six cards", cards: MustParseCards("As Ks Qs Js Ts 2d")},
		{name: "eight cards", cards: MustParseCards("As Ks Qs Js Ts 2d 3c 4c")},
		{name: "empty", cards: nil},
		{name: "duplicate", cards: MustParseCards("As As Qs Js Ts 2d 3c")},
		{name: "malformed", cards: append(MustParseCards("As Ks Qs Js Ts 2d"), Card{Rank: 1, Suit: Spades})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Evaluate(tt.cards); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestBandConstants(t *testing.T) {
	t.Parallel()
	want := map[Category]int{
		HighCard:      1_000_000,
		OnePair:       2_000_000,
		TwoPair:       3_000_000,
		ThreeOfAKind:  4_000_000,
		Straight:      5_000_000,
		Flush:         6_000_000,
		FullHouse:     7_000_000,
		FourOfAKind:   8_000_000,
		StraightFlush: 9_000_000,
		RoyalFlush:    10_000_000,
	}
	for cat, base := range want {
		if BandBase(cat) != base {
			t.Errorf("BandBase(%v) = %d, want %d", cat, BandBase(cat), base)
		}
	}
	// The largest possible tie-break must stay inside a single band.
	if top := encodeRanks([]Rank{Ace, Ace, Ace, Ace, Ace}); top >= BandWidth {
		t.Errorf("tie-break %d overflows band width %d", top, BandWidth)
	}
}

func randomSeven(rng *rand.Rand) []Card {
	d := NewDeck(rng)
	cards, _ := d.Deal(7)
	return cards
}

func TestEvaluateScoreBands(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 5000; i++ {
		cards := randomSeven(rng)
		hr, err := Evaluate(cards)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lo := BandBase(hr.Category)
		if hr.Score < lo || hr.Score >= lo+BandWidth {
			t.Fatalf("%s: score %d outside band of %v [%d,%d)", FormatCards(cards), hr.Score, hr.Category, lo, lo+BandWidth)
		}
		if hr.Category == RoyalFlush && hr.Score != lo {
			t.Fatalf("royal flush score %d, want %d", hr.Score, lo)
		}
	}
}

func TestEvaluateOrderIndependent(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(99, 1))
	for i := 0; i < 500; i++ {
		cards := randomSeven(rng)
		want, _ := Evaluate(cards)
		for j := 0; j < 5; j++ {
			shuffled := append([]Card(nil), cards...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			got, _ := Evaluate(shuffled)
			if got != want {
				t.Fatalf("order changed result: %v vs %v for %s", got, want, FormatCards(shuffled))
			}
		}
	}
}

func TestEvaluateFiveMatchesSeven(t *testing.T) {
	t.Parallel()
	// Two dead low cards that cannot improve the hand leave the five card score intact.
	five := [5]Card{}
	copy(five[:], MustParseCards("Ah Kh Qh Jh 9h"))
	direct := EvaluateFive(five)
	seven := mustEvaluate(t, "Ah Kh Qh Jh 9h 2c 3d")
	if direct.Score != seven.Score {
		t.Errorf("EvaluateFive = %d, Evaluate = %d", direct.Score, seven.Score)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	hands := make([][]Card, 1024)
	for i := range hands {
		hands[i] = randomSeven(rng)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Evaluate(hands[i%len(hands)])
	}
}
