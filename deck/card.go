// Package deck models the standard 52-card deck the game deals from.
package deck

import "fmt"

// Suit is one of the four French suits.
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists all suits in the deck's canonical order.
var Suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

// Symbol returns the one-rune suit symbol for display and logs.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Rank is a card face: "A", "2".."10", "J", "Q", "K".
type Rank string

// Ranks lists all ranks in the deck's canonical order (Ace first).
var Ranks = [13]Rank{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Card is an immutable playing card. ID is stable for the lifetime of a
// session and unique across the 52 cards ("hearts_A", "spades_10", ...).
// Value uses poker ordering with Ace high (2..10 face value, J=11, Q=12,
// K=13, A=14); the hand evaluator treats the Ace as low only inside the
// A-2-3-4-5 wheel.
type Card struct {
	ID    string `json:"id"`
	Suit  Suit   `json:"suit"`
	Rank  Rank   `json:"rank"`
	Value int    `json:"value"`
}

// String renders the card compactly, e.g. "A♥" or "10♠".
func (c Card) String() string {
	return string(c.Rank) + c.Suit.Symbol()
}

// RankValue maps a rank to its Ace-high poker value.
func RankValue(r Rank) int {
	switch r {
	case "A":
		return 14
	case "K":
		return 13
	case "Q":
		return 12
	case "J":
		return 11
	case "10":
		return 10
	case "9":
		return 9
	case "8":
		return 8
	case "7":
		return 7
	case "6":
		return 6
	case "5":
		return 5
	case "4":
		return 4
	case "3":
		return 3
	case "2":
		return 2
	default:
		return 0
	}
}

// MakeCard builds the canonical card for a (suit, rank) pair.
func MakeCard(s Suit, r Rank) Card {
	return Card{
		ID:    fmt.Sprintf("%s_%s", s, r),
		Suit:  s,
		Rank:  r,
		Value: RankValue(r),
	}
}
