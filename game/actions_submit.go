package game

import (
	"fmt"
	"log/slog"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/deck"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/hand"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/ruleerrors"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/scoring"
)

// handleSubmitHand scores the current selection on explicit player intent.
func (g *Game) handleSubmitHand() {
	if g.Status != StatusPlaying && g.Status != StatusBonusRound {
		g.sendError(ruleerrors.ErrInvalidTransition)
		return
	}
	if len(g.Selected) != hand.Size {
		g.sendError(ruleerrors.ErrInvalidHandSize)
		return
	}
	g.cancelAutoSubmit()
	g.submitSelected()
}

// handleAutoSubmit fires when the fifth-card settle delay expires. A stale
// fire (deselect or pause already disarmed it) is ignored.
func (g *Game) handleAutoSubmit() {
	if g.autoSubmitCancel == nil {
		return
	}
	g.cancelAutoSubmit()
	if g.Status != StatusPlaying && g.Status != StatusBonusRound {
		return
	}
	if len(g.Selected) != hand.Size {
		return
	}
	g.submitSelected()
}

// submitSelected evaluates and banks the five selected cards, then routes
// the session onward: bonus resolution, level completion, deck replenish or
// exhaustion.
func (g *Game) submitSelected() {
	res, err := hand.Evaluate(g.Selected)
	if err != nil {
		g.sendError(err)
		return
	}

	bonus := g.Status == StatusBonusRound
	multiplier := 1.0
	var points int
	switch {
	case bonus:
		multiplier = g.rules.BonusPointMultiplier
		points = g.rules.BonusTotal(res.Points, g.TimeRemainingSec)
	case g.ModeCfg.Streaks:
		multiplier = g.streak.Observe(res)
		points = scoring.ApplyMultiplier(res.Points, multiplier)
	default:
		points = res.Points
	}

	g.Used = append(g.Used, g.Selected...)
	g.Selected = nil
	g.Score += points
	g.CumulativeScore += points
	g.HandsPlayed++
	g.TotalHands++
	g.LastResult = &res
	if g.BestHand == nil || res.Beats(*g.BestHand) {
		g.BestHand = &res
	}
	g.notifyHandScored(res.Category.String())
	if g.Telemetry != nil {
		g.Telemetry.HandPlayed(HandRecord{
			SessionID:  g.ID,
			Mode:       g.Mode.String(),
			Level:      g.Level,
			Category:   res.Category.String(),
			BasePoints: res.Points,
			Points:     points,
			Multiplier: multiplier,
			Streak:     g.streak.Count(),
			BonusRound: bonus,
		})
	}

	slog.Info("hand scored", "tag", "game", "session", g.ID,
		"category", res.Category.String(), "points", points, "streak", g.streak.Count())
	g.emit(HandScoredMsg{
		Type:            "hand_scored",
		Hand:            buildHandView(res),
		Multiplier:      multiplier,
		Points:          points,
		Streak:          g.streak.Count(),
		Bonus:           bonus,
		Score:           g.Score,
		CumulativeScore: g.CumulativeScore,
	})

	g.enforceCardBookkeeping()

	if bonus {
		g.endBonusRound(points)
		return
	}
	if g.ModeCfg.Levels && g.Score >= g.rules.LevelGoal(g.Level) {
		g.levelComplete()
		return
	}

	g.replenishIfNeeded()
	if len(g.Deck) < hand.Size {
		g.gameOver("deck_exhausted")
		return
	}
	g.broadcastState()
}

// levelComplete banks the level, awards the loot box earned by the star
// rating, and advances (through a bonus round when the cadence hits).
func (g *Game) levelComplete() {
	goal := g.rules.LevelGoal(g.Level)
	stars := g.rules.Stars(g.Score, goal)
	tier := lootTierForStars(stars)
	g.PendingLoot = append(g.PendingLoot, tier)
	bonusNext := g.tuning.BonusAfter(g.Level)

	slog.Info("level complete", "tag", "game", "session", g.ID,
		"level", g.Level, "score", g.Score, "stars", stars, "loot", tier)
	g.emit(LevelCompleteMsg{
		Type:      "level_complete",
		Level:     g.Level,
		Score:     g.Score,
		Goal:      goal,
		Stars:     stars,
		LootTier:  tier,
		BonusNext: bonusNext,
	})

	if bonusNext {
		g.enterBonusRound()
		return
	}
	g.nextLevel()
}

func lootTierForStars(stars int) string {
	switch {
	case stars >= 3:
		return "gold"
	case stars == 2:
		return "silver"
	default:
		return "bronze"
	}
}

// enterBonusRound deals the one-hand bonus pool sized by the bonus ordinal.
func (g *Game) enterBonusRound() {
	g.BonusOrdinal = g.tuning.BonusOrdinal(g.Level)
	g.Status = StatusBonusRound
	g.TimeRemainingSec = g.Config.BonusTimeSec

	pool := deck.Shuffle(deck.New())
	n := g.tuning.BonusCardCount(g.BonusOrdinal)
	if n > len(pool) {
		n = len(pool)
	}
	g.Deck = pool[:n]
	g.Selected = nil
	g.picks.reset()

	slog.Info("bonus round started", "tag", "game", "session", g.ID,
		"ordinal", g.BonusOrdinal, "cards", n, "timeSec", g.TimeRemainingSec)
	g.emit(BonusRoundMsg{
		Type:    "bonus_round",
		Stage:   "started",
		Ordinal: g.BonusOrdinal,
		Cards:   n,
		TimeSec: g.TimeRemainingSec,
	})
	g.broadcastState()
}

// endBonusRound closes the bonus round and moves to the next level. A scored
// bonus hand also earns a blind-rolled loot box.
func (g *Game) endBonusRound(points int) {
	ordinal := g.BonusOrdinal
	g.BonusOrdinal = 0
	if points > 0 && g.PowerUps != nil {
		tier := g.PowerUps.RollTier()
		g.PendingLoot = append(g.PendingLoot, tier)
	}

	slog.Info("bonus round ended", "tag", "game", "session", g.ID,
		"ordinal", ordinal, "points", points)
	g.emit(BonusRoundMsg{
		Type:    "bonus_round",
		Stage:   "ended",
		Ordinal: ordinal,
		Points:  points,
	})
	g.nextLevel()
}

// nextLevel advances to the next level with a fresh deck and timer. Claimed
// loot stays unlocked; consumables re-arm for the new level.
func (g *Game) nextLevel() {
	g.Level++
	g.Score = 0
	g.HandsPlayed = 0
	g.TimeRemainingSec = g.ModeCfg.InitialTimeSec
	g.Deck = deck.Shuffle(deck.New())
	g.Selected = nil
	g.Status = StatusPlaying
	g.streak.Reset()
	g.picks.reset()
	g.refreshPowerUps()

	slog.Info("level started", "tag", "game", "session", g.ID,
		"level", g.Level, "goal", g.rules.LevelGoal(g.Level))
	g.broadcastState()
}

// replenishIfNeeded deals a fresh shuffled deck, minus any cards still held
// in the selection, when the remaining pool cannot form a hand.
func (g *Game) replenishIfNeeded() {
	if !g.ModeCfg.ReplenishDeck || g.inBonus() {
		return
	}
	if len(g.Deck) >= hand.Size {
		return
	}
	held := make(map[string]struct{}, len(g.Selected))
	for _, c := range g.Selected {
		held[c.ID] = struct{}{}
	}
	fresh := deck.Shuffle(deck.New())
	next := make([]deck.Card, 0, len(fresh))
	for _, c := range fresh {
		if _, ok := held[c.ID]; ok {
			continue
		}
		next = append(next, c)
	}
	g.Deck = next
	slog.Info("deck replenished", "tag", "game", "session", g.ID, "cards", len(next))
}

// enforceCardBookkeeping upholds the one-id-one-place rule across deck and
// selection. Corruption here is a programming defect: development builds
// (StrictInvariants) panic, production self-heals by dropping the duplicates.
func (g *Game) enforceCardBookkeeping() {
	seen := make(map[string]struct{}, len(g.Selected)+len(g.Deck))
	dupes := 0

	sel := g.Selected[:0]
	for _, c := range g.Selected {
		if _, ok := seen[c.ID]; ok {
			dupes++
			continue
		}
		seen[c.ID] = struct{}{}
		sel = append(sel, c)
	}
	g.Selected = sel

	dk := g.Deck[:0]
	for _, c := range g.Deck {
		if _, ok := seen[c.ID]; ok {
			dupes++
			continue
		}
		seen[c.ID] = struct{}{}
		dk = append(dk, c)
	}
	g.Deck = dk

	if dupes == 0 {
		return
	}
	if g.Config.StrictInvariants {
		panic(fmt.Sprintf("card bookkeeping violated in session %s: %d duplicate ids", g.ID, dupes))
	}
	slog.Error("duplicate card ids self-healed", "tag", "game", "session", g.ID, "count", dupes)
}
