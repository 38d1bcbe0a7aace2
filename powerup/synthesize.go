package powerup

import (
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/deck"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/ruleerrors"
)

// Hand patterns the grant power-ups can synthesize.
const (
	HandPair        = "pair"
	HandTwoPair     = "two_pair"
	HandThreeOfKind = "three_of_a_kind"
	HandStraight    = "straight"
	HandFlush       = "flush"
	HandFullHouse   = "full_house"
)

// SynthesizeHand deterministically picks the minimal set of cards from the
// deck satisfying handType: 2 for a pair, 4 for two pair, 3 for three of a
// kind, 5 for the rest. The scan follows deck order, so the same deck always
// yields the same cards. Returns ErrInsufficientDeck when the deck cannot
// satisfy the pattern.
func SynthesizeHand(handType string, cards []deck.Card) ([]deck.Card, error) {
	switch handType {
	case HandPair:
		return nOfAKind(cards, 2)
	case HandTwoPair:
		return twoPair(cards)
	case HandThreeOfKind:
		return nOfAKind(cards, 3)
	case HandStraight:
		return straight(cards)
	case HandFlush:
		return flush(cards)
	case HandFullHouse:
		return fullHouse(cards)
	default:
		return nil, ruleerrors.ErrUnknownPowerUp
	}
}

// nOfAKind returns the first rank to accumulate n cards in deck order.
func nOfAKind(cards []deck.Card, n int) ([]deck.Card, error) {
	byValue := make(map[int][]deck.Card)
	for _, c := range cards {
		byValue[c.Value] = append(byValue[c.Value], c)
		if len(byValue[c.Value]) == n {
			return append([]deck.Card(nil), byValue[c.Value]...), nil
		}
	}
	return nil, ruleerrors.ErrInsufficientDeck
}

// twoPair returns the first two ranks to each accumulate a pair.
func twoPair(cards []deck.Card) ([]deck.Card, error) {
	byValue := make(map[int][]deck.Card)
	var pairs [][]deck.Card
	for _, c := range cards {
		byValue[c.Value] = append(byValue[c.Value], c)
		if len(byValue[c.Value]) == 2 {
			pairs = append(pairs, byValue[c.Value][:2])
			if len(pairs) == 2 {
				out := append([]deck.Card(nil), pairs[0]...)
				return append(out, pairs[1]...), nil
			}
		}
	}
	return nil, ruleerrors.ErrInsufficientDeck
}

// straight tries candidate runs from the wheel upward and returns the first
// one the deck can fill, taking the earliest card of each value.
func straight(cards []deck.Card) ([]deck.Card, error) {
	firstByValue := make(map[int]deck.Card, 14)
	for _, c := range cards {
		if _, ok := firstByValue[c.Value]; !ok {
			firstByValue[c.Value] = c
		}
	}
	for high := 5; high <= 14; high++ {
		values := straightValues(high)
		out := make([]deck.Card, 0, 5)
		for _, v := range values {
			c, ok := firstByValue[v]
			if !ok {
				out = nil
				break
			}
			out = append(out, c)
		}
		if len(out) == 5 {
			return out, nil
		}
	}
	return nil, ruleerrors.ErrInsufficientDeck
}

// straightValues lists the five values of the run topping out at high;
// high 5 is the wheel (Ace counted low).
func straightValues(high int) [5]int {
	if high == 5 {
		return [5]int{14, 2, 3, 4, 5}
	}
	return [5]int{high - 4, high - 3, high - 2, high - 1, high}
}

// flush returns the first suit to accumulate five cards in deck order.
func flush(cards []deck.Card) ([]deck.Card, error) {
	bySuit := make(map[deck.Suit][]deck.Card, 4)
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
		if len(bySuit[c.Suit]) == 5 {
			return append([]deck.Card(nil), bySuit[c.Suit]...), nil
		}
	}
	return nil, ruleerrors.ErrInsufficientDeck
}

// fullHouse pairs the first rank to reach three cards with the first other
// rank to reach two.
func fullHouse(cards []deck.Card) ([]deck.Card, error) {
	triple, err := nOfAKind(cards, 3)
	if err != nil {
		return nil, err
	}
	tripleValue := triple[0].Value
	byValue := make(map[int][]deck.Card)
	for _, c := range cards {
		if c.Value == tripleValue {
			continue
		}
		byValue[c.Value] = append(byValue[c.Value], c)
		if len(byValue[c.Value]) == 2 {
			return append(triple, byValue[c.Value]...), nil
		}
	}
	return nil, ruleerrors.ErrInsufficientDeck
}
