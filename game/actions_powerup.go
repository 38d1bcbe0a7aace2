package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/deck"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/hand"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/ruleerrors"
)

// handleUsePowerUp applies an active power-up. A failed application leaves
// the session exactly as it was; a consumable leaves the active set on
// success.
func (g *Game) handleUsePowerUp(id string) {
	if g.Status != StatusPlaying {
		g.sendError(ruleerrors.ErrInvalidTransition)
		return
	}
	if !g.ModeCfg.PowerUps || g.PowerUps == nil {
		g.sendError(ruleerrors.ErrPowerUpNotActive)
		return
	}
	def, ok := g.PowerUps.Get(id)
	if !ok {
		g.sendError(ruleerrors.ErrUnknownPowerUp)
		return
	}
	if !contains(g.Active, id) {
		g.sendError(ruleerrors.ErrPowerUpNotActive)
		return
	}

	if err := def.Apply(g); err != nil {
		slog.Info("power-up rejected", "tag", "powerup", "session", g.ID, "powerup", id, "err", err)
		g.sendError(err)
		return
	}
	if !def.Reusable {
		g.Active = removeID(g.Active, id)
	}

	slog.Info("power-up used", "tag", "powerup", "session", g.ID, "powerup", id)
	g.emit(PowerUpUsedMsg{
		Type:      "powerup_used",
		PowerUpID: def.ID,
		Name:      def.Name,
		Reusable:  def.Reusable,
	})

	g.enforceCardBookkeeping()
	g.replenishIfNeeded()
	g.broadcastState()
}

// handleOpenLoot opens the oldest pending loot box and rolls its reward.
// The reward stays pending until claimed.
func (g *Game) handleOpenLoot() {
	if g.Status != StatusPlaying {
		g.sendError(ruleerrors.ErrInvalidTransition)
		return
	}
	if !g.ModeCfg.PowerUps || g.PowerUps == nil {
		g.sendError(ruleerrors.ErrInvalidTransition)
		return
	}
	if len(g.PendingLoot) == 0 {
		g.sendError(errors.New("no loot box to open"))
		return
	}
	if g.PendingReward != "" {
		g.sendError(errors.New("claim the previous reward first"))
		return
	}

	tier := g.PendingLoot[0]
	g.PendingLoot = g.PendingLoot[1:]
	def, ok := g.PowerUps.RollReward(tier)
	if !ok {
		g.PendingLoot = append([]string{tier}, g.PendingLoot...)
		g.sendError(fmt.Errorf("no reward available for %s loot", tier))
		return
	}
	g.PendingReward = def.ID

	slog.Info("loot opened", "tag", "powerup", "session", g.ID, "tier", tier, "reward", def.ID)
	g.emit(LootRewardMsg{
		Type:   "loot_reward",
		Tier:   tier,
		Reward: buildRewardView(def),
	})
	g.broadcastState()
}

// handleClaimLoot moves the rolled reward into the claimed set, which
// survives level transitions. With a bounded inventory, claiming at capacity
// swaps out the named discard.
func (g *Game) handleClaimLoot(discardID string) {
	if g.Status != StatusPlaying {
		g.sendError(ruleerrors.ErrInvalidTransition)
		return
	}
	if g.PendingReward == "" {
		g.sendError(errors.New("no reward to claim"))
		return
	}

	id := g.PendingReward
	if _, already := g.claimed[id]; !already {
		if capacity := g.Config.InventoryCapacity; capacity > 0 && len(g.claimed) >= capacity {
			if _, held := g.claimed[discardID]; !held {
				g.sendError(ruleerrors.ErrInventoryFull)
				return
			}
			delete(g.claimed, discardID)
			if !g.gateUnlocked(discardID) {
				g.Unlocked = removeID(g.Unlocked, discardID)
				g.Active = removeID(g.Active, discardID)
			}
			slog.Info("power-up discarded", "tag", "powerup", "session", g.ID, "powerup", discardID)
		}
		g.claimed[id] = struct{}{}
	}
	g.PendingReward = ""
	if !contains(g.Unlocked, id) {
		g.Unlocked = append(g.Unlocked, id)
	}
	if !contains(g.Active, id) {
		g.Active = append(g.Active, id)
	}

	slog.Info("loot claimed", "tag", "powerup", "session", g.ID, "powerup", id)
	g.broadcastState()
}

// refreshPowerUps recomputes the unlocked set from the catalog gate plus the
// claimed loot, and re-arms every unlocked power-up.
func (g *Game) refreshPowerUps() {
	if !g.ModeCfg.PowerUps || g.PowerUps == nil {
		g.Unlocked = nil
		g.Active = nil
		return
	}
	unlocked := make([]string, 0, 8)
	seen := make(map[string]struct{})
	for _, def := range g.PowerUps.UnlockedAt(g.Level) {
		unlocked = append(unlocked, def.ID)
		seen[def.ID] = struct{}{}
	}
	// Claimed rewards keep catalog order in the snapshot.
	for _, def := range g.PowerUps.All() {
		if _, ok := g.claimed[def.ID]; !ok {
			continue
		}
		if _, dup := seen[def.ID]; dup {
			continue
		}
		unlocked = append(unlocked, def.ID)
		seen[def.ID] = struct{}{}
	}
	g.Unlocked = unlocked
	g.Active = append([]string(nil), unlocked...)
}

// gateUnlocked reports whether the catalog alone unlocks id at the current
// level, ignoring claimed loot.
func (g *Game) gateUnlocked(id string) bool {
	if g.PowerUps == nil {
		return false
	}
	for _, def := range g.PowerUps.UnlockedAt(g.Level) {
		if def.ID == id {
			return true
		}
	}
	return false
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// AddTime extends the countdown. Used by the add_time power-up; a no-op in
// untimed modes.
func (g *Game) AddTime(seconds int) {
	if g.ModeCfg.Countdown {
		g.TimeRemainingSec += seconds
	}
}

// ReshuffleDeck re-randomizes the order of the remaining deck.
func (g *Game) ReshuffleDeck() {
	g.Deck = deck.Shuffle(g.Deck)
}

// ClearSelection returns every selected card to the front of the deck and
// disarms any pending auto-submission.
func (g *Game) ClearSelection() {
	if len(g.Selected) == 0 {
		return
	}
	g.cancelAutoSubmit()
	g.Deck = append(g.Selected, g.Deck...)
	g.Selected = nil
}

// GrantSelection moves the given deck cards into the selection, for the
// hand-granting power-ups. Either every card moves or none does: the cards
// must all be in the deck and must fit in the five-card selection.
func (g *Game) GrantSelection(cards []deck.Card) error {
	if len(g.Selected)+len(cards) > hand.Size {
		return ruleerrors.ErrSelectionFull
	}
	for _, c := range cards {
		if deck.IndexOf(g.Deck, c.ID) < 0 {
			return ruleerrors.ErrCardNotAvailable
		}
	}
	for _, c := range cards {
		idx := deck.IndexOf(g.Deck, c.ID)
		g.Deck = append(g.Deck[:idx], g.Deck[idx+1:]...)
		g.Selected = append(g.Selected, c)
	}
	if len(g.Selected) == hand.Size {
		g.scheduleAutoSubmit()
	}
	return nil
}
