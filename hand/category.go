package hand

// Category classifies a five card poker hand, ordered weakest to strongest.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the display name of a Category.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "unknown"
	}
}

// Points returns the base score awarded for making the hand.
func (c Category) Points() int {
	switch c {
	case RoyalFlush:
		return 5000
	case StraightFlush:
		return 2500
	case FourOfAKind:
		return 1500
	case FullHouse:
		return 1000
	case Flush:
		return 750
	case Straight:
		return 500
	case ThreeOfAKind:
		return 300
	case TwoPair:
		return 150
	case OnePair:
		return 50
	default:
		return 10
	}
}
