package powerup

import (
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
)

// ClearSelectionPowerUp returns every selected card to the deck, aborting a
// hand that was not coming together. Reusable.
type ClearSelectionPowerUp struct{}

func (c *ClearSelectionPowerUp) ID() string   { return "clear_selection" }
func (c *ClearSelectionPowerUp) Name() string { return "Fold" }
func (c *ClearSelectionPowerUp) Description() string {
	return "Returns all selected cards to the deck."
}
func (c *ClearSelectionPowerUp) Tier() int        { return 1 }
func (c *ClearSelectionPowerUp) UnlockLevel() int { return 5 }
func (c *ClearSelectionPowerUp) Reusable() bool   { return true }
func (c *ClearSelectionPowerUp) Rarity() int      { return RarityUncommon }

func (c *ClearSelectionPowerUp) Apply(g *game.Game) error {
	g.ClearSelection()
	return nil
}
