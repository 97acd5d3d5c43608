package poker

import (
	"errors"
	"math/rand/v2"
)

// ErrDeckExhausted is returned when more cards are requested than remain.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a standard 52-card deck
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// NewStackedDeck returns a deck that deals the given cards first, in order,
// followed by the remaining cards of the pack in a fixed order. Used to
// script deals in tests and replays.
func NewStackedDeck(top ...Card) *Deck {
	d := &Deck{}
	seen := make(map[Card]bool, len(top))
	i := 0
	for _, c := range top {
		if seen[c] || i >= len(d.cards) {
			continue
		}
		seen[c] = true
		d.cards[i] = c
		i++
	}
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			if !seen[c] {
				d.cards[i] = c
				i++
			}
		}
	}
	return d
}

// Shuffle shuffles the deck using Fisher-Yates and rewinds it.
func (d *Deck) Shuffle() {
	d.next = 0
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, ErrDeckExhausted
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
