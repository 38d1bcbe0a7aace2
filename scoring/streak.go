package scoring

import "github.com/sjoves/poker-shootout-crazygames-v2-sub001/hand"

// StreakTracker follows the better-hand streak: every submitted hand is
// compared to the one before it, and strictly better hands grow the streak.
// An equal or worse hand resets it before that hand is scored.
type StreakTracker struct {
	last    hand.Result
	started bool
	count   int
}

// Observe records a submitted hand and returns the multiplier for its
// base points: 1x off streak, then 1.2x, 1.5x, and 2x from the third
// consecutive improvement on.
func (t *StreakTracker) Observe(res hand.Result) float64 {
	if t.started && res.Beats(t.last) {
		t.count++
	} else {
		t.count = 0
	}
	t.last = res
	t.started = true
	return StreakMultiplier(t.count)
}

// Count returns the current streak length.
func (t *StreakTracker) Count() int {
	return t.count
}

// Reset clears the streak and forgets the previous hand, as happens on
// level transitions.
func (t *StreakTracker) Reset() {
	t.last = hand.Result{}
	t.started = false
	t.count = 0
}

// StreakMultiplier maps a streak length to its scoring multiplier.
func StreakMultiplier(streak int) float64 {
	switch {
	case streak <= 0:
		return 1
	case streak == 1:
		return 1.2
	case streak == 2:
		return 1.5
	default:
		return 2.0
	}
}
