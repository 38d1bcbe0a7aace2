package hand

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/deck"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/ruleerrors"
)

func cardsOf(specs ...[2]string) []deck.Card {
	cards := make([]deck.Card, len(specs))
	for i, s := range specs {
		cards[i] = deck.MakeCard(deck.Suit(s[0]), deck.Rank(s[1]))
	}
	return cards
}

func TestEvaluateCategories(t *testing.T) {
	cases := []struct {
		name   string
		cards  []deck.Card
		want   Category
		points int
	}{
		{
			name: "royal flush",
			cards: cardsOf(
				[2]string{"hearts", "10"}, [2]string{"hearts", "J"}, [2]string{"hearts", "Q"},
				[2]string{"hearts", "K"}, [2]string{"hearts", "A"},
			),
			want:   RoyalFlush,
			points: 5000,
		},
		{
			name: "straight flush",
			cards: cardsOf(
				[2]string{"clubs", "5"}, [2]string{"clubs", "6"}, [2]string{"clubs", "7"},
				[2]string{"clubs", "8"}, [2]string{"clubs", "9"},
			),
			want:   StraightFlush,
			points: 2500,
		},
		{
			name: "steel wheel is a straight flush, not royal",
			cards: cardsOf(
				[2]string{"spades", "A"}, [2]string{"spades", "2"}, [2]string{"spades", "3"},
				[2]string{"spades", "4"}, [2]string{"spades", "5"},
			),
			want:   StraightFlush,
			points: 2500,
		},
		{
			name: "four of a kind",
			cards: cardsOf(
				[2]string{"hearts", "7"}, [2]string{"diamonds", "7"}, [2]string{"clubs", "7"},
				[2]string{"spades", "7"}, [2]string{"hearts", "2"},
			),
			want:   FourOfAKind,
			points: 1500,
		},
		{
			name: "full house",
			cards: cardsOf(
				[2]string{"hearts", "9"}, [2]string{"diamonds", "9"}, [2]string{"clubs", "9"},
				[2]string{"spades", "4"}, [2]string{"hearts", "4"},
			),
			want:   FullHouse,
			points: 1000,
		},
		{
			name: "flush",
			cards: cardsOf(
				[2]string{"diamonds", "2"}, [2]string{"diamonds", "6"}, [2]string{"diamonds", "9"},
				[2]string{"diamonds", "J"}, [2]string{"diamonds", "K"},
			),
			want:   Flush,
			points: 750,
		},
		{
			name: "straight",
			cards: cardsOf(
				[2]string{"hearts", "8"}, [2]string{"diamonds", "9"}, [2]string{"clubs", "10"},
				[2]string{"spades", "J"}, [2]string{"hearts", "Q"},
			),
			want:   Straight,
			points: 500,
		},
		{
			name: "wheel straight with ace low",
			cards: cardsOf(
				[2]string{"hearts", "A"}, [2]string{"diamonds", "2"}, [2]string{"clubs", "3"},
				[2]string{"spades", "4"}, [2]string{"hearts", "5"},
			),
			want:   Straight,
			points: 500,
		},
		{
			name: "ace high straight unsuited",
			cards: cardsOf(
				[2]string{"hearts", "10"}, [2]string{"diamonds", "J"}, [2]string{"clubs", "Q"},
				[2]string{"spades", "K"}, [2]string{"hearts", "A"},
			),
			want:   Straight,
			points: 500,
		},
		{
			name: "three of a kind",
			cards: cardsOf(
				[2]string{"hearts", "Q"}, [2]string{"diamonds", "Q"}, [2]string{"clubs", "Q"},
				[2]string{"spades", "7"}, [2]string{"hearts", "2"},
			),
			want:   ThreeOfAKind,
			points: 300,
		},
		{
			name: "two pair",
			cards: cardsOf(
				[2]string{"hearts", "J"}, [2]string{"diamonds", "J"}, [2]string{"clubs", "4"},
				[2]string{"spades", "4"}, [2]string{"hearts", "9"},
			),
			want:   TwoPair,
			points: 150,
		},
		{
			name: "one pair",
			cards: cardsOf(
				[2]string{"hearts", "8"}, [2]string{"diamonds", "8"}, [2]string{"clubs", "K"},
				[2]string{"spades", "5"}, [2]string{"hearts", "2"},
			),
			want:   OnePair,
			points: 50,
		},
		{
			name: "high card",
			cards: cardsOf(
				[2]string{"hearts", "2"}, [2]string{"diamonds", "5"}, [2]string{"clubs", "9"},
				[2]string{"spades", "J"}, [2]string{"hearts", "K"},
			),
			want:   HighCard,
			points: 10,
		},
		{
			name: "almost straight is high card",
			cards: cardsOf(
				[2]string{"hearts", "2"}, [2]string{"diamonds", "3"}, [2]string{"clubs", "4"},
				[2]string{"spades", "5"}, [2]string{"hearts", "7"},
			),
			want:   HighCard,
			points: 10,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Evaluate(tc.cards)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Category != tc.want {
				t.Errorf("expected %v, got %v", tc.want, res.Category)
			}
			if res.Points != tc.points {
				t.Errorf("expected %d points, got %d", tc.points, res.Points)
			}
		})
	}
}

func TestEvaluateOrderInvariant(t *testing.T) {
	cards := cardsOf(
		[2]string{"hearts", "9"}, [2]string{"diamonds", "9"}, [2]string{"clubs", "9"},
		[2]string{"spades", "4"}, [2]string{"hearts", "4"},
	)
	base, err := Evaluate(cards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		perm := make([]deck.Card, len(cards))
		copy(perm, cards)
		rng.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })

		res, err := Evaluate(perm)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Category != base.Category || res.Points != base.Points || res.strength != base.strength {
			t.Fatalf("permutation %d changed the result: %+v vs %+v", i, res, base)
		}
		for j := range res.RankedCards {
			if res.RankedCards[j].ID != base.RankedCards[j].ID {
				t.Fatalf("permutation %d changed ranked order at %d: %s vs %s",
					i, j, res.RankedCards[j].ID, base.RankedCards[j].ID)
			}
		}
	}
}

func TestEvaluateFourOfAKindAnyKicker(t *testing.T) {
	quads := cardsOf(
		[2]string{"hearts", "7"}, [2]string{"diamonds", "7"},
		[2]string{"clubs", "7"}, [2]string{"spades", "7"},
	)
	fifths := cardsOf(
		[2]string{"hearts", "2"}, [2]string{"spades", "A"}, [2]string{"diamonds", "K"},
	)
	for _, fifth := range fifths {
		res, err := Evaluate(append(append([]deck.Card{}, quads...), fifth))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Category != FourOfAKind {
			t.Errorf("kicker %s: expected Four of a Kind, got %v", fifth.ID, res.Category)
		}
		if res.Points != 1500 {
			t.Errorf("kicker %s: expected 1500 points, got %d", fifth.ID, res.Points)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	short := cardsOf(
		[2]string{"hearts", "2"}, [2]string{"diamonds", "5"}, [2]string{"clubs", "9"},
	)
	if _, err := Evaluate(short); !errors.Is(err, ruleerrors.ErrInvalidHandSize) {
		t.Errorf("expected ErrInvalidHandSize for 3 cards, got %v", err)
	}

	long := cardsOf(
		[2]string{"hearts", "2"}, [2]string{"diamonds", "5"}, [2]string{"clubs", "9"},
		[2]string{"spades", "J"}, [2]string{"hearts", "K"}, [2]string{"hearts", "3"},
	)
	if _, err := Evaluate(long); !errors.Is(err, ruleerrors.ErrInvalidHandSize) {
		t.Errorf("expected ErrInvalidHandSize for 6 cards, got %v", err)
	}

	dup := cardsOf(
		[2]string{"hearts", "2"}, [2]string{"hearts", "2"}, [2]string{"clubs", "9"},
		[2]string{"spades", "J"}, [2]string{"hearts", "K"},
	)
	if _, err := Evaluate(dup); !errors.Is(err, ruleerrors.ErrDuplicateCard) {
		t.Errorf("expected ErrDuplicateCard, got %v", err)
	}
}

func TestRankedCardsSignificanceOrder(t *testing.T) {
	res, err := Evaluate(cardsOf(
		[2]string{"spades", "4"}, [2]string{"hearts", "9"}, [2]string{"diamonds", "9"},
		[2]string{"hearts", "4"}, [2]string{"clubs", "9"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Full house: the trip nines lead, the pair of fours follow.
	for i := 0; i < 3; i++ {
		if res.RankedCards[i].Rank != "9" {
			t.Errorf("position %d: expected rank 9, got %s", i, res.RankedCards[i].Rank)
		}
	}
	for i := 3; i < 5; i++ {
		if res.RankedCards[i].Rank != "4" {
			t.Errorf("position %d: expected rank 4, got %s", i, res.RankedCards[i].Rank)
		}
	}
}

func TestRankedCardsWheelAceLast(t *testing.T) {
	res, err := Evaluate(cardsOf(
		[2]string{"hearts", "A"}, [2]string{"diamonds", "2"}, [2]string{"clubs", "3"},
		[2]string{"spades", "4"}, [2]string{"hearts", "5"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []deck.Rank{"5", "4", "3", "2", "A"}
	for i, r := range want {
		if res.RankedCards[i].Rank != r {
			t.Errorf("position %d: expected %s, got %s", i, r, res.RankedCards[i].Rank)
		}
	}
}

func TestBeatsCategoryDominates(t *testing.T) {
	pair, err := Evaluate(cardsOf(
		[2]string{"hearts", "A"}, [2]string{"diamonds", "A"}, [2]string{"clubs", "9"},
		[2]string{"spades", "5"}, [2]string{"hearts", "2"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twoPair, err := Evaluate(cardsOf(
		[2]string{"hearts", "3"}, [2]string{"diamonds", "3"}, [2]string{"clubs", "2"},
		[2]string{"spades", "2"}, [2]string{"hearts", "8"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !twoPair.Beats(pair) {
		t.Error("expected the lowest two pair to beat the highest one pair")
	}
	if pair.Beats(twoPair) {
		t.Error("one pair must not beat two pair")
	}
}

func TestBeatsWithinCategory(t *testing.T) {
	kings, err := Evaluate(cardsOf(
		[2]string{"hearts", "K"}, [2]string{"diamonds", "K"}, [2]string{"clubs", "9"},
		[2]string{"spades", "5"}, [2]string{"hearts", "2"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	queens, err := Evaluate(cardsOf(
		[2]string{"hearts", "Q"}, [2]string{"diamonds", "Q"}, [2]string{"clubs", "9"},
		[2]string{"spades", "5"}, [2]string{"hearts", "2"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !kings.Beats(queens) {
		t.Error("expected pair of kings to beat pair of queens")
	}
	if queens.Beats(kings) {
		t.Error("pair of queens must not beat pair of kings")
	}
	if kings.Beats(kings) {
		t.Error("a hand must not beat itself")
	}
}

func TestBeatsWheelLosesToSixHighStraight(t *testing.T) {
	wheel, err := Evaluate(cardsOf(
		[2]string{"hearts", "A"}, [2]string{"diamonds", "2"}, [2]string{"clubs", "3"},
		[2]string{"spades", "4"}, [2]string{"hearts", "5"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sixHigh, err := Evaluate(cardsOf(
		[2]string{"hearts", "2"}, [2]string{"diamonds", "3"}, [2]string{"clubs", "4"},
		[2]string{"spades", "5"}, [2]string{"hearts", "6"},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !sixHigh.Beats(wheel) {
		t.Error("expected six high straight to beat the wheel")
	}
	if wheel.Beats(sixHigh) {
		t.Error("the wheel must not beat a six high straight")
	}
}

func TestCategoryPointsDescend(t *testing.T) {
	order := []Category{
		RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
		Straight, ThreeOfAKind, TwoPair, OnePair, HighCard,
	}
	for i := 0; i < len(order)-1; i++ {
		if order[i].Points() <= order[i+1].Points() {
			t.Errorf("%v (%d) should outscore %v (%d)",
				order[i], order[i].Points(), order[i+1], order[i+1].Points())
		}
	}
}
