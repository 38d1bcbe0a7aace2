package powerup

import (
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
)

// GrantHandPowerUp synthesizes a specific hand pattern from the current deck
// and moves those cards into the selection. Consumable. The grant fails,
// leaving the session untouched, when the deck cannot satisfy the pattern or
// the cards would not fit in the five-card selection.
type GrantHandPowerUp struct {
	IDValue     string
	NameValue   string
	DescValue   string
	TierValue   int
	UnlockValue int
	RarityValue int
	HandType    string
}

func (p *GrantHandPowerUp) ID() string          { return p.IDValue }
func (p *GrantHandPowerUp) Name() string        { return p.NameValue }
func (p *GrantHandPowerUp) Description() string { return p.DescValue }
func (p *GrantHandPowerUp) Tier() int           { return p.TierValue }
func (p *GrantHandPowerUp) UnlockLevel() int    { return p.UnlockValue }
func (p *GrantHandPowerUp) Reusable() bool      { return false }
func (p *GrantHandPowerUp) Rarity() int         { return p.RarityValue }

func (p *GrantHandPowerUp) Apply(g *game.Game) error {
	cards, err := SynthesizeHand(p.HandType, g.Deck)
	if err != nil {
		return err
	}
	return g.GrantSelection(cards)
}
