package powerup

import (
	"fmt"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
)

// AddTimePowerUp adds seconds to the level countdown. Consumable.
type AddTimePowerUp struct {
	DeltaSec int
}

func (a *AddTimePowerUp) ID() string   { return "add_time" }
func (a *AddTimePowerUp) Name() string { return "Extra Time" }
func (a *AddTimePowerUp) Description() string {
	return fmt.Sprintf("Adds %d seconds to the level countdown.", a.delta())
}
func (a *AddTimePowerUp) Tier() int        { return 1 }
func (a *AddTimePowerUp) UnlockLevel() int { return 1 }
func (a *AddTimePowerUp) Reusable() bool   { return false }
func (a *AddTimePowerUp) Rarity() int      { return RarityCommon }

func (a *AddTimePowerUp) delta() int {
	if a.DeltaSec <= 0 {
		return 15
	}
	return a.DeltaSec
}

func (a *AddTimePowerUp) Apply(g *game.Game) error {
	g.AddTime(a.delta())
	return nil
}
