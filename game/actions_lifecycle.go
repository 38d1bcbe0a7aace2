package game

import (
	"context"
	"log/slog"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/deck"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/hand"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/ruleerrors"
)

// handleStart resolves the mode once and deals the opening state.
func (g *Game) handleStart(modeStr string) {
	if g.Status != StatusIdle {
		g.sendError(ruleerrors.ErrInvalidTransition)
		return
	}
	mode, err := ParseMode(modeStr)
	if err != nil {
		g.sendError(err)
		return
	}

	g.Mode = mode
	g.ModeCfg = modeConfigFor(mode, g.Config)
	g.Status = StatusPlaying
	g.Score = 0
	g.CumulativeScore = 0
	g.HandsPlayed = 0
	g.TotalHands = 0
	g.BestHand = nil
	g.LastResult = nil
	g.TimeElapsedSec = 0
	g.TimeRemainingSec = g.ModeCfg.InitialTimeSec
	g.Deck = deck.Shuffle(deck.New())
	g.Selected = nil
	g.Used = nil
	g.Level = 0
	g.BonusOrdinal = 0
	g.claimed = make(map[string]struct{})
	g.PendingLoot = nil
	g.PendingReward = ""
	g.streak.Reset()
	g.picks.reset()
	g.ContinueUsed = false
	g.continuePending = false
	if g.ModeCfg.Levels {
		g.Level = 1
	}
	g.refreshPowerUps()
	g.startTicker()

	slog.Info("game started", "tag", "game", "session", g.ID, "mode", mode.String())
	g.broadcastState()
}

// handleTick advances the simulation clock by one second. Ticks while
// paused or after game over are ignored, which is what freezes the timers.
func (g *Game) handleTick() {
	if g.Status != StatusPlaying && g.Status != StatusBonusRound {
		return
	}
	g.TimeElapsedSec++
	if !g.ModeCfg.Countdown {
		g.broadcastState()
		return
	}
	if g.TimeRemainingSec > 0 {
		g.TimeRemainingSec--
	}
	if g.TimeRemainingSec <= 0 {
		if g.Status == StatusBonusRound {
			g.endBonusRound(0)
			return
		}
		g.gameOver("time_up")
		return
	}
	g.broadcastState()
}

// handlePause toggles pause. Pausing freezes the timers in place; pausing
// again resumes exactly where play stopped.
func (g *Game) handlePause() {
	switch g.Status {
	case StatusPlaying, StatusBonusRound:
		g.resumeStatus = g.Status
		g.Status = StatusPaused
		g.cancelAutoSubmit()
		g.broadcastState()
	case StatusPaused:
		g.unpause()
	default:
		g.sendError(ruleerrors.ErrInvalidTransition)
	}
}

// handleResume unpauses. Resuming a session that is not paused is a no-op.
func (g *Game) handleResume() {
	if g.Status != StatusPaused {
		g.broadcastState()
		return
	}
	g.unpause()
}

func (g *Game) unpause() {
	g.Status = g.resumeStatus
	if len(g.Selected) == hand.Size {
		g.scheduleAutoSubmit()
	}
	g.broadcastState()
}

// handleContinue asks the reward gate for one more run. At most one continue
// per game, countdown modes only. The gate is consulted off the loop; its
// verdict comes back as an action.
func (g *Game) handleContinue() {
	if !g.continueAvailable() {
		g.sendError(ruleerrors.ErrInvalidTransition)
		return
	}
	g.continuePending = true
	gate := g.Gate
	go func() {
		granted := true
		if gate != nil {
			ctx, cancel := context.WithTimeout(context.Background(), continueGraceTimeout)
			defer cancel()
			granted = gate.Grant(ctx)
		}
		select {
		case g.Actions <- Action{Type: ActionContinueResolved, Granted: granted}:
		case <-g.Done:
		}
	}()
}

// handleContinueResolved applies the reward gate verdict. A declined reward
// means no continue, never an error.
func (g *Game) handleContinueResolved(granted bool) {
	if !g.continuePending || g.Status != StatusGameOver {
		return // a reset raced the verdict
	}
	g.continuePending = false
	if !granted {
		slog.Info("continue declined by reward gate", "tag", "game", "session", g.ID)
		g.broadcastState()
		return
	}

	g.ContinueUsed = true
	g.Status = StatusPlaying
	g.TimeRemainingSec = g.Config.ContinueTimeSec
	if len(g.Selected) > 0 {
		g.Deck = append(g.Selected, g.Deck...)
		g.Selected = nil
	}
	g.replenishIfNeeded()
	g.startTicker()

	slog.Info("continue granted", "tag", "game", "session", g.ID, "timeSec", g.TimeRemainingSec)
	g.broadcastState()
}

// handleReset returns the session to the initial idle state from any prior
// state, discarding everything in progress.
func (g *Game) handleReset() {
	g.cancelTicker()
	g.cancelAutoSubmit()

	g.Mode = ModeClassic
	g.ModeCfg = ModeConfig{}
	g.Status = StatusIdle
	g.Score = 0
	g.CumulativeScore = 0
	g.HandsPlayed = 0
	g.TotalHands = 0
	g.BestHand = nil
	g.LastResult = nil
	g.TimeElapsedSec = 0
	g.TimeRemainingSec = 0
	g.Deck = nil
	g.Selected = nil
	g.Used = nil
	g.Level = 0
	g.BonusOrdinal = 0
	g.Unlocked = nil
	g.Active = nil
	g.claimed = make(map[string]struct{})
	g.PendingLoot = nil
	g.PendingReward = ""
	g.streak.Reset()
	g.picks.reset()
	g.ContinueUsed = false
	g.continuePending = false
	g.resumeStatus = StatusIdle

	slog.Info("session reset", "tag", "game", "session", g.ID)
	g.broadcastState()
}

// gameOver finalizes the session. Classic applies the elapsed-time bonus and
// the leftover-card penalty before clamping at zero. The finished record is
// handed to OnGameEnd; persistence never blocks the loop.
func (g *Game) gameOver(reason string) {
	g.cancelTicker()
	g.cancelAutoSubmit()
	g.Status = StatusGameOver
	g.BonusOrdinal = 0

	var timeBonus, leftoverPenalty int
	if g.ModeCfg.TimeBonusOnEnd {
		timeBonus = g.rules.TimeBonus(g.TimeElapsedSec)
	}
	if g.ModeCfg.LeftoverPenalty {
		leftoverPenalty = g.rules.LeftoverPenalty(len(g.Deck))
	}
	if g.ModeCfg.TimeBonusOnEnd || g.ModeCfg.LeftoverPenalty {
		final := g.CumulativeScore + timeBonus - leftoverPenalty
		if final < 0 {
			final = 0
		}
		g.Score = final
		g.CumulativeScore = final
	}

	bestName := ""
	if g.BestHand != nil {
		bestName = g.BestHand.Category.String()
	}

	slog.Info("game over", "tag", "game", "session", g.ID,
		"reason", reason, "mode", g.Mode.String(), "score", g.CumulativeScore,
		"hands", g.TotalHands, "level", g.Level, "best", bestName)

	g.emit(GameOverMsg{
		Type:              "game_over",
		Reason:            reason,
		Score:             g.CumulativeScore,
		HandsPlayed:       g.TotalHands,
		Level:             g.Level,
		TimeElapsedSec:    g.TimeElapsedSec,
		BestHand:          bestName,
		TimeBonus:         timeBonus,
		LeftoverPenalty:   leftoverPenalty,
		ContinueAvailable: g.continueAvailable(),
	})
	g.broadcastState()

	if g.OnGameEnd != nil {
		g.OnGameEnd(g.Mode.String(), g.CumulativeScore, g.TotalHands, g.Level, g.TimeElapsedSec, bestName)
	}
}
