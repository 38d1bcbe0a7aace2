package scoring

import "math"

// Rules holds the tunable scoring parameters. Zero values are never valid;
// construct with DefaultRules and override from config.
type Rules struct {
	TimeBonusMax           int
	TimeBonusDecayPerSec   int
	LeftoverPenaltyPerCard int
	LevelGoalBase          int
	LevelGoalStep          int
	BonusPointMultiplier   float64
	BonusTimePointsPerSec  int
}

// DefaultRules returns the standard live tuning.
func DefaultRules() Rules {
	return Rules{
		TimeBonusMax:           1000,
		TimeBonusDecayPerSec:   5,
		LeftoverPenaltyPerCard: 25,
		LevelGoalBase:          1000,
		LevelGoalStep:          500,
		BonusPointMultiplier:   2.0,
		BonusTimePointsPerSec:  10,
	}
}

// TimeBonus rewards fast completion in Classic mode. Non-increasing in
// elapsed seconds, floored at zero.
func (r Rules) TimeBonus(elapsedSec int) int {
	bonus := r.TimeBonusMax - r.TimeBonusDecayPerSec*elapsedSec
	if bonus < 0 {
		return 0
	}
	return bonus
}

// LeftoverPenalty charges for cards still in the deck when a Classic
// five-card game ends.
func (r Rules) LeftoverPenalty(remainingCards int) int {
	if remainingCards < 0 {
		return 0
	}
	return r.LeftoverPenaltyPerCard * remainingCards
}

// LevelGoal is the score target to complete a level, strictly increasing.
// Levels below 1 are treated as level 1.
func (r Rules) LevelGoal(level int) int {
	if level < 1 {
		level = 1
	}
	return r.LevelGoalBase + (level-1)*r.LevelGoalStep
}

// Stars rates a completed level: 1 at the goal, 2 at 1.25x, 3 at 1.5x.
// Returns 0 when the goal was not reached. Thresholds compare exactly in
// integer arithmetic to avoid float boundary drift.
func (r Rules) Stars(score, goal int) int {
	switch {
	case score*2 >= goal*3:
		return 3
	case score*4 >= goal*5:
		return 2
	case score >= goal:
		return 1
	default:
		return 0
	}
}

// BonusTotal scores a hand submitted during a bonus round: base points get
// the bonus multiplier, plus points for every second left on the countdown.
func (r Rules) BonusTotal(handPoints, timeRemainingSec int) int {
	if timeRemainingSec < 0 {
		timeRemainingSec = 0
	}
	return ApplyMultiplier(handPoints, r.BonusPointMultiplier) + timeRemainingSec*r.BonusTimePointsPerSec
}

// FinalScore settles a finished Classic game: accumulated score plus the
// time bonus minus the leftover penalty, never below zero.
func (r Rules) FinalScore(score, elapsedSec, remainingCards int) int {
	final := score + r.TimeBonus(elapsedSec) - r.LeftoverPenalty(remainingCards)
	if final < 0 {
		return 0
	}
	return final
}

// ApplyMultiplier scales points by a multiplier, rounding to the nearest
// integer.
func ApplyMultiplier(points int, multiplier float64) int {
	return int(math.Round(float64(points) * multiplier))
}
