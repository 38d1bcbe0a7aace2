package hand

import (
	"math/rand"
	"testing"

	"github.com/paulhankin/poker"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/deck"
)

// toOracle converts a card to the paulhankin/poker encoding: suits are
// 0..3 in club, diamond, heart, spade order and the Ace is rank 1.
func toOracle(t *testing.T, c deck.Card) poker.Card {
	t.Helper()
	var suit poker.Suit
	switch c.Suit {
	case deck.Clubs:
		suit = 0
	case deck.Diamonds:
		suit = 1
	case deck.Hearts:
		suit = 2
	case deck.Spades:
		suit = 3
	}
	rank := c.Value
	if rank == 14 {
		rank = 1
	}
	card, err := poker.MakeCard(suit, poker.Rank(rank))
	if err != nil {
		t.Fatalf("oracle rejected card %s: %v", c.ID, err)
	}
	return card
}

func oracleScore(t *testing.T, cards []deck.Card) int16 {
	t.Helper()
	var hand [5]poker.Card
	for i, c := range cards {
		hand[i] = toOracle(t, c)
	}
	return poker.Eval5(&hand)
}

// TestBeatsAgreesWithOracle cross-checks the hand ordering against an
// independent evaluator over many random pairs of hands.
func TestBeatsAgreesWithOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	full := deck.New()

	for trial := 0; trial < 2000; trial++ {
		shuffled := deck.ShuffleWith(rng, full)
		handA := shuffled[:5]
		handB := shuffled[5:10]

		resA, err := Evaluate(handA)
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", trial, err)
		}
		resB, err := Evaluate(handB)
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", trial, err)
		}

		scoreA := oracleScore(t, handA)
		scoreB := oracleScore(t, handB)

		switch {
		case scoreA > scoreB:
			if !resA.Beats(resB) || resB.Beats(resA) {
				t.Fatalf("trial %d: oracle says %v > %v but Beats disagrees (%v vs %v)",
					trial, handA, handB, resA.Category, resB.Category)
			}
		case scoreB > scoreA:
			if !resB.Beats(resA) || resA.Beats(resB) {
				t.Fatalf("trial %d: oracle says %v > %v but Beats disagrees (%v vs %v)",
					trial, handB, handA, resB.Category, resA.Category)
			}
		default:
			if resA.Beats(resB) || resB.Beats(resA) {
				t.Fatalf("trial %d: oracle says %v ties %v but Beats disagrees (%v vs %v)",
					trial, handA, handB, resA.Category, resB.Category)
			}
		}
	}
}
