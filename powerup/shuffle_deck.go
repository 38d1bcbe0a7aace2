package powerup

import (
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
)

// ShuffleDeckPowerUp re-randomizes the order of the remaining deck, bringing
// fresh cards into the visible window. Reusable.
type ShuffleDeckPowerUp struct{}

func (s *ShuffleDeckPowerUp) ID() string   { return "shuffle_deck" }
func (s *ShuffleDeckPowerUp) Name() string { return "Shuffle Deck" }
func (s *ShuffleDeckPowerUp) Description() string {
	return "Reshuffles the remaining deck so different cards come up."
}
func (s *ShuffleDeckPowerUp) Tier() int        { return 1 }
func (s *ShuffleDeckPowerUp) UnlockLevel() int { return 3 }
func (s *ShuffleDeckPowerUp) Reusable() bool   { return true }
func (s *ShuffleDeckPowerUp) Rarity() int      { return RarityUncommon }

func (s *ShuffleDeckPowerUp) Apply(g *game.Game) error {
	g.ReshuffleDeck()
	return nil
}
