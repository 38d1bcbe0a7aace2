package deck

import (
	"crypto/rand"
	"log/slog"
	"math/big"
	mathrand "math/rand"
)

// New returns the full 52-card deck in deterministic order: suits in
// Suits order, ranks Ace through King within each suit.
func New() []Card {
	cards := make([]Card, 0, 52)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, MakeCard(s, r))
		}
	}
	return cards
}

// Shuffle returns a new uniformly shuffled copy of cards. The input slice is
// never mutated. Randomness comes from crypto/rand so repeated deals carry no
// observable bias.
func Shuffle(cards []Card) []Card {
	return shuffle(cards, secureIntn)
}

// ShuffleWith is Shuffle with an explicit random source, for deterministic
// replays and tests.
func ShuffleWith(rng *mathrand.Rand, cards []Card) []Card {
	return shuffle(cards, rng.Intn)
}

// shuffle is a Fisher-Yates over a copy of cards.
func shuffle(cards []Card, intn func(int) int) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// secureIntn returns an unbiased random int in [0, n) from crypto/rand.
func secureIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms; fall
		// back to the seeded math/rand source rather than aborting a deal.
		return mathrand.Intn(n)
	}
	return int(v.Int64())
}

// IndexOf returns the position of the card with the given id, or -1.
func IndexOf(cards []Card, id string) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Sanitize removes any card whose ID already appeared earlier in the slice,
// preserving order. A non-zero duplicate count indicates a deck bookkeeping
// defect; Sanitize logs it and the caller decides whether to escalate.
func Sanitize(cards []Card) ([]Card, int) {
	seen := make(map[string]struct{}, len(cards))
	out := cards[:0:0]
	dupes := 0
	for _, c := range cards {
		if _, ok := seen[c.ID]; ok {
			dupes++
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	if dupes > 0 {
		slog.Error("deck contained duplicate card ids", "tag", "deck", "duplicates", dupes)
	}
	return out, dupes
}
