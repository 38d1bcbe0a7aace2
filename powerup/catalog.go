package powerup

import (
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/config"
)

// RegisterAll registers the full built-in catalog on the registry using the
// given power-up config. Call this from main (or server setup) so adding a
// new power-up only requires registering it here.
func RegisterAll(r *Registry, cfg *config.PowerUpsConfig) {
	if cfg == nil {
		cfg = &config.PowerUpsConfig{}
	}
	r.bronzeWeight = cfg.LootBronzeWeight
	r.silverWeight = cfg.LootSilverWeight
	r.goldWeight = cfg.LootGoldWeight

	r.Register(&AddTimePowerUp{DeltaSec: cfg.AddTimeDeltaSec})
	r.Register(&GrantHandPowerUp{
		IDValue:     "grant_pair",
		NameValue:   "Pocket Pair",
		DescValue:   "Pulls a pair from the deck straight into your hand.",
		TierValue:   1,
		UnlockValue: 2,
		RarityValue: RarityCommon,
		HandType:    HandPair,
	})
	r.Register(&ShuffleDeckPowerUp{})
	r.Register(&GrantHandPowerUp{
		IDValue:     "grant_two_pair",
		NameValue:   "Double Up",
		DescValue:   "Pulls two pairs from the deck straight into your hand.",
		TierValue:   2,
		UnlockValue: 4,
		RarityValue: RarityUncommon,
		HandType:    HandTwoPair,
	})
	r.Register(&ClearSelectionPowerUp{})
	r.Register(&GrantHandPowerUp{
		IDValue:     "grant_three_kind",
		NameValue:   "Trips",
		DescValue:   "Pulls three of a kind from the deck straight into your hand.",
		TierValue:   2,
		UnlockValue: 6,
		RarityValue: RarityUncommon,
		HandType:    HandThreeOfKind,
	})
	r.Register(&GrantHandPowerUp{
		IDValue:     "grant_straight",
		NameValue:   "Straight Shooter",
		DescValue:   "Builds a full straight from the deck.",
		TierValue:   3,
		UnlockValue: 8,
		RarityValue: RarityUncommon,
		HandType:    HandStraight,
	})
	r.Register(&GrantHandPowerUp{
		IDValue:     "grant_flush",
		NameValue:   "Color Rush",
		DescValue:   "Builds a full flush from the deck.",
		TierValue:   3,
		UnlockValue: 10,
		RarityValue: RarityRare,
		HandType:    HandFlush,
	})
	r.Register(&GrantHandPowerUp{
		IDValue:     "grant_full_house",
		NameValue:   "Full Boat",
		DescValue:   "Builds a full house from the deck.",
		TierValue:   3,
		UnlockValue: 12,
		RarityValue: RarityRare,
		HandType:    HandFullHouse,
	})
}
