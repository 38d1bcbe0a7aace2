package game

import "time"

// inputDebounce swallows duplicate pick events from double-fired pointer
// input. Each session owns its own last-accepted timestamp; nothing is
// shared across sessions.
type inputDebounce struct {
	window time.Duration
	lastID string
	lastAt time.Time
}

func newInputDebounce(windowMS int) inputDebounce {
	return inputDebounce{window: time.Duration(windowMS) * time.Millisecond}
}

// accept reports whether a pick of cardID at now should be processed.
// A repeat of the same card inside the window is dropped.
func (d *inputDebounce) accept(cardID string, now time.Time) bool {
	if d.window > 0 && cardID == d.lastID && now.Sub(d.lastAt) < d.window {
		return false
	}
	d.lastID = cardID
	d.lastAt = now
	return true
}

func (d *inputDebounce) reset() {
	d.lastID = ""
	d.lastAt = time.Time{}
}
