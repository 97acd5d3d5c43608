package poker

import (
	"errors"
	"fmt"
	"strings"
)

// Suit is one of the four card suits.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the suit symbol.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the lowercase suit letter used in compact notation.
func (s Suit) Letter() byte {
	if int(s) < len(suitLetters) {
		return suitLetters[s]
	}
	return '?'
}

// Rank is a card rank from Two (2) to Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	rankChars   = "23456789TJQKA"
	suitLetters = "shdc"
)

// String returns the single character form of the rank (T for ten).
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankChars[r-Two : r-Two+1]
}

// Valid reports whether the rank lies in 2..14.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card is an immutable playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the compact form, e.g. "As" or "Td".
func (c Card) String() string {
	return c.Rank.String() + string(c.Suit.Letter())
}

// Symbol returns the display form with the suit symbol, e.g. "A♠".
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.String()
}

// Valid reports whether the card has an in-range rank and suit.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit <= Clubs
}

var errBadCard = errors.New("invalid card")

// ParseCard parses "As", "10h", "td" or "A♠" into a Card.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", errBadCard, s)
	}

	rankPart := strings.ToUpper(string(runes[:len(runes)-1]))
	if rankPart == "10" {
		rankPart = "T"
	}
	idx := strings.Index(rankChars, rankPart)
	if len(rankPart) != 1 || idx < 0 {
		return Card{}, fmt.Errorf("%w: bad rank in %q", errBadCard, s)
	}

	var suit Suit
	switch runes[len(runes)-1] {
	case 's', 'S', '♠':
		suit = Spades
	case 'h', 'H', '♥':
		suit = Hearts
	case 'd', 'D', '♦':
		suit = Diamonds
	case 'c', 'C', '♣':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: bad suit in %q", errBadCard, s)
	}

	return Card{Rank: Two + Rank(idx), Suit: suit}, nil
}

// MustParseCard is ParseCard that panics on error. Intended for tests and fixtures.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses a whitespace separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards that panics on error.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards in compact form without separators, e.g. "AsKd".
func FormatCards(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
