package game

import (
	"errors"
	rand "math/rand/v2"
	"slices"
	"testing"

	"github.com/lox/holdemsim/poker"
)

func stackedDeck(cards string) *poker.Deck {
	return poker.NewStackedDeck(poker.MustParseCards(cards)...)
}

func TestPlayHandShowdown(t *testing.T) {
	t.Parallel()
	players := seatPlayers(1000, 1000)
	for _, p := range players {
		p.Strategy = alwaysCall()
	}
	deck := stackedDeck("As Ad Kh Kc 2c 7d 9h Js Qd")

	res, err := PlayHand(players, 0, testRules, deck, WithLogger(quietLogger()), WithID("h1"))
	if err != nil {
		t.Fatal(err)
	}

	if res.ID != "h1" {
		t.Errorf("id = %q", res.ID)
	}
	if !res.Showdown {
		t.Error("expected a showdown")
	}
	if got := poker.FormatCards(res.Board); got != "2c7d9hJsQd" {
		t.Errorf("board = %s", got)
	}
	if !slices.Equal(res.Streets, []Street{Preflop, Flop, Turn, River}) {
		t.Errorf("streets = %v", res.Streets)
	}
	if res.Pot != 40 || !slices.Equal(res.Winners, []int{0}) {
		t.Errorf("pot %d won by %v, want 40 by seat 0", res.Pot, res.Winners)
	}
	if players[0].Stack != 1020 || players[1].Stack != 980 {
		t.Errorf("stacks = %d, %d", players[0].Stack, players[1].Stack)
	}
	if res.Net(0) != 20 || res.Net(1) != -20 {
		t.Errorf("net = %d, %d", res.Net(0), res.Net(1))
	}
	if res.Ranks[0].Category != poker.OnePair {
		t.Errorf("winner rank = %v", res.Ranks[0])
	}
	if got := poker.FormatCards(res.HoleCards[1]); got != "KhKc" {
		t.Errorf("seat 1 hole cards = %s", got)
	}
}

func TestPlayHandFoldOut(t *testing.T) {
	t.Parallel()
	players := seatPlayers(1000, 1000, 1000)

	res, err := PlayHand(players, 0, testRules, poker.NewDeck(rand.New(rand.NewPCG(1, 2))))
	if err != nil {
		t.Fatal(err)
	}

	if res.Showdown {
		t.Error("fold-out should not reach showdown")
	}
	if !slices.Equal(res.Streets, []Street{Preflop}) || len(res.Board) != 0 {
		t.Errorf("streets %v board %v", res.Streets, res.Board)
	}
	if !slices.Equal(res.Winners, []int{2}) || res.Pot != 30 {
		t.Errorf("pot %d won by %v, want 30 by the big blind", res.Pot, res.Winners)
	}
	if got := []int{players[0].Stack, players[1].Stack, players[2].Stack}; !slices.Equal(got, []int{1000, 990, 1010}) {
		t.Errorf("stacks = %v", got)
	}
}

func TestPlayHandRunsOutTheBoard(t *testing.T) {
	t.Parallel()
	players := seatPlayers(100, 100)
	players[0].Strategy = scripted(RaiseTo(100))
	players[1].Strategy = alwaysCall()
	deck := stackedDeck("As Ad Kh Kc 2c 7d 9h Js Qd")

	res, err := PlayHand(players, 0, testRules, deck)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(res.Streets, []Street{Preflop}) {
		t.Errorf("streets = %v, want only preflop betting", res.Streets)
	}
	if len(res.Board) != 5 || !res.Showdown {
		t.Errorf("board %v showdown %v", res.Board, res.Showdown)
	}
	if players[0].Stack != 200 || players[1].Stack != 0 {
		t.Errorf("stacks = %d, %d", players[0].Stack, players[1].Stack)
	}
}

func TestPlayHandSitsOutEmptyStacks(t *testing.T) {
	t.Parallel()
	players := seatPlayers(1000, 0, 1000)

	res, err := PlayHand(players, 1, testRules, poker.NewDeck(rand.New(rand.NewPCG(3, 4))))
	if err != nil {
		t.Fatal(err)
	}

	if res.Button != 2 {
		t.Errorf("button = %d, want it moved to seat 2", res.Button)
	}
	if _, ok := res.HoleCards[1]; ok {
		t.Error("seat without chips was dealt in")
	}
	if got := []int{players[0].Stack, players[1].Stack, players[2].Stack}; !slices.Equal(got, []int{1010, 0, 990}) {
		t.Errorf("stacks = %v", got)
	}
}

func TestPlayHandErrors(t *testing.T) {
	t.Parallel()

	t.Run("not enough players", func(t *testing.T) {
		t.Parallel()
		_, err := PlayHand(seatPlayers(1000, 0), 0, testRules, poker.NewStackedDeck())
		if !errors.Is(err, ErrNotEnoughPlayers) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("deck exhausted", func(t *testing.T) {
		t.Parallel()
		deck := poker.NewStackedDeck()
		if _, err := deck.Deal(46); err != nil {
			t.Fatal(err)
		}
		players := seatPlayers(1000, 1000)
		for _, p := range players {
			p.Strategy = alwaysCall()
		}
		_, err := PlayHand(players, 0, testRules, deck)
		if !errors.Is(err, poker.ErrDeckExhausted) {
			t.Errorf("err = %v", err)
		}
	})
}

func TestPlayHandConservesChips(t *testing.T) {
	t.Parallel()
	for seed := uint64(0); seed < 300; seed++ {
		rng := rand.New(rand.NewPCG(seed, 99))
		stacks := make([]int, 2+rng.IntN(8))
		for i := range stacks {
			stacks[i] = rng.IntN(600)
		}
		players := seatPlayers(stacks...)
		for _, p := range players {
			p.Strategy = chaotic(rng)
		}
		total := stacksOf(players)

		res, err := PlayHand(players, rng.IntN(len(players)), testRules, poker.NewDeck(rng), WithLogger(quietLogger()))
		if errors.Is(err, ErrNotEnoughPlayers) {
			continue
		}
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if got := stacksOf(players); got != total {
			t.Fatalf("seed %d: %d chips after, %d before", seed, got, total)
		}
		if res.Distribution.Total() != res.Pot {
			t.Fatalf("seed %d: distributed %d of a %d pot", seed, res.Distribution.Total(), res.Pot)
		}
		net := 0
		for i := range players {
			net += res.Net(i)
		}
		if net != 0 {
			t.Fatalf("seed %d: net chips sum to %d", seed, net)
		}
	}
}

func TestThreeWayChecksThroughEveryStreet(t *testing.T) {
	t.Parallel()
	players := seatPlayers(1000, 1000, 1000)
	opening := map[Street]int{}
	for _, p := range players {
		p.Strategy = StrategyFunc(func(v View) Action {
			if _, seen := opening[v.Street]; !seen {
				opening[v.Street] = v.CurrentBet
			}
			return CallAction()
		})
	}

	res, err := PlayHand(players, 0, testRules, poker.NewDeck(rand.New(rand.NewPCG(1, 2))), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}

	want := map[Street]int{Preflop: 20, Flop: 0, Turn: 0, River: 0}
	for street, bet := range want {
		if got, ok := opening[street]; !ok || got != bet {
			t.Errorf("%v opened at %d (seen %v), want %d", street, got, ok, bet)
		}
	}

	byStreet := map[Street][]string{}
	for _, rec := range res.Actions {
		byStreet[rec.Street] = append(byStreet[rec.Street], events([]ActionRecord{rec})[0])
	}
	wantEvents := map[Street][]string{
		Preflop: {"1:post_small_blind", "2:post_big_blind", "0:call", "1:call", "2:check"},
		Flop:    {"1:check", "2:check", "0:check"},
		Turn:    {"1:check", "2:check", "0:check"},
		River:   {"1:check", "2:check", "0:check"},
	}
	for street, evs := range wantEvents {
		if !slices.Equal(byStreet[street], evs) {
			t.Errorf("%v actions = %v, want %v", street, byStreet[street], evs)
		}
	}

	if !res.Showdown || res.Pot != 60 {
		t.Errorf("showdown %v with pot %d, want a showdown for 60", res.Showdown, res.Pot)
	}
	if got := stacksOf(players); got != 3000 {
		t.Errorf("chips not conserved: %d", got)
	}
}
