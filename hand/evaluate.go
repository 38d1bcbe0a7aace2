package hand

import (
	"sort"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/deck"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/ruleerrors"
)

// Size is the number of cards in a complete poker hand.
const Size = 5

// Result is the outcome of evaluating a complete hand. RankedCards holds
// the input cards reordered by tie-break significance: grouped ranks first
// (larger groups before smaller, higher ranks before lower), kickers last.
type Result struct {
	Category    Category
	RankedCards []deck.Card
	Points      int

	strength uint32
}

// Beats reports whether r is a strictly better hand than other. Category
// dominates; hands of the same category compare by the ranks of their
// grouped cards and kickers.
func (r Result) Beats(other Result) bool {
	if r.Category != other.Category {
		return r.Category > other.Category
	}
	return r.strength > other.strength
}

// Evaluate classifies exactly five cards into a poker hand category and its
// point value. The result does not depend on input order. Returns
// ruleerrors.ErrInvalidHandSize for any other card count and
// ruleerrors.ErrDuplicateCard if two cards share an id.
func Evaluate(cards []deck.Card) (Result, error) {
	if len(cards) != Size {
		return Result{}, ruleerrors.ErrInvalidHandSize
	}
	seen := make(map[string]bool, Size)
	for _, c := range cards {
		if seen[c.ID] {
			return Result{}, ruleerrors.ErrDuplicateCard
		}
		seen[c.ID] = true
	}

	values := make([]int, Size)
	rankCounts := make(map[int]int, Size)
	suitCounts := make(map[deck.Suit]int, 4)
	for i, c := range cards {
		values[i] = c.Value
		rankCounts[c.Value]++
		suitCounts[c.Suit]++
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	flush := len(suitCounts) == 1
	wheel := isWheel(values)
	straight := wheel || isStraight(values)

	groups := groupRanks(rankCounts)
	category := classify(groups, straight, flush, wheel, values[0])

	ranked := orderBySignificance(cards, rankCounts, wheel)

	return Result{
		Category:    category,
		RankedCards: ranked,
		Points:      category.Points(),
		strength:    packStrength(ranked, wheel),
	}, nil
}

// rankGroup is a distinct rank and how many cards hold it.
type rankGroup struct {
	value int
	count int
}

func groupRanks(rankCounts map[int]int) []rankGroup {
	groups := make([]rankGroup, 0, len(rankCounts))
	for v, n := range rankCounts {
		groups = append(groups, rankGroup{value: v, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})
	return groups
}

func classify(groups []rankGroup, straight, flush, wheel bool, high int) Category {
	switch {
	case straight && flush:
		if high == deck.RankValue("A") && !wheel {
			return RoyalFlush
		}
		return StraightFlush
	case groups[0].count == 4:
		return FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case groups[0].count == 3:
		return ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		return TwoPair
	case groups[0].count == 2:
		return OnePair
	default:
		return HighCard
	}
}

// isStraight expects values sorted descending.
func isStraight(values []int) bool {
	for i := 0; i < len(values)-1; i++ {
		if values[i]-values[i+1] != 1 {
			return false
		}
	}
	return true
}

// isWheel detects A-2-3-4-5, the only straight where the Ace plays low.
// Expects values sorted descending.
func isWheel(values []int) bool {
	return values[0] == deck.RankValue("A") &&
		values[1] == 5 && values[2] == 4 && values[3] == 3 && values[4] == 2
}

// orderBySignificance sorts cards so that larger rank groups come first,
// higher ranks before lower within equal group sizes. In a wheel the Ace
// counts as 1 and sorts last.
func orderBySignificance(cards []deck.Card, rankCounts map[int]int, wheel bool) []deck.Card {
	ranked := make([]deck.Card, len(cards))
	copy(ranked, cards)
	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := tieValue(ranked[i], wheel), tieValue(ranked[j], wheel)
		ci, cj := rankCounts[ranked[i].Value], rankCounts[ranked[j].Value]
		if ci != cj {
			return ci > cj
		}
		return vi > vj
	})
	return ranked
}

func tieValue(c deck.Card, wheel bool) int {
	if wheel && c.Rank == "A" {
		return 1
	}
	return c.Value
}

// packStrength folds the tie-break values into a single comparable integer,
// four bits per card in significance order.
func packStrength(ranked []deck.Card, wheel bool) uint32 {
	var s uint32
	for _, c := range ranked {
		s = s<<4 | uint32(tieValue(c, wheel))
	}
	return s
}
