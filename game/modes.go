package game

import (
	"fmt"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/config"
)

// Mode is the closed set of game modes.
type Mode int

const (
	ModeClassic Mode = iota
	ModeBlitz
	ModeSSC
)

// String returns the protocol string for a Mode.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeBlitz:
		return "blitz"
	case ModeSSC:
		return "ssc"
	default:
		return "unknown"
	}
}

// ParseMode maps a protocol string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "classic":
		return ModeClassic, nil
	case "blitz":
		return ModeBlitz, nil
	case "ssc":
		return ModeSSC, nil
	default:
		return 0, fmt.Errorf("unknown game mode %q", s)
	}
}

// ModeConfig is the per-mode rule set. It is resolved exactly once, when the
// game starts, so no handler branches on the mode afterwards.
type ModeConfig struct {
	Countdown       bool // TimeRemaining counts down; reaching zero ends the game
	InitialTimeSec  int  // starting countdown (per level in SSC)
	ReplenishDeck   bool // deal a fresh deck when fewer than 5 cards remain
	Levels          bool // level goals, stars, bonus rounds
	Streaks         bool // better-hand streak multiplier
	PowerUps        bool // power-up economy enabled
	TimeBonusOnEnd  bool // apply the elapsed-time bonus at game over
	LeftoverPenalty bool // subtract the leftover-card penalty at game over
	LimitVisible    bool // only a phase-sized prefix of the deck is selectable
}

func modeConfigFor(m Mode, cfg *config.Config) ModeConfig {
	switch m {
	case ModeBlitz:
		return ModeConfig{
			Countdown:      true,
			InitialTimeSec: cfg.BlitzTimeSec,
			ReplenishDeck:  true,
		}
	case ModeSSC:
		return ModeConfig{
			Countdown:      true,
			InitialTimeSec: cfg.LevelTimeSec,
			ReplenishDeck:  true,
			Levels:         true,
			Streaks:        true,
			PowerUps:       true,
			LimitVisible:   true,
		}
	default: // Classic: untimed, one deck, end-of-game finalization
		return ModeConfig{
			TimeBonusOnEnd:  true,
			LeftoverPenalty: true,
		}
	}
}
