package powerup

import (
	"testing"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/config"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/deck"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
)

func catalogRegistry() *Registry {
	r := NewRegistry()
	cfg := config.Defaults()
	RegisterAll(r, &cfg.PowerUps)
	return r
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&AddTimePowerUp{DeltaSec: 20})

	def, ok := r.Get("add_time")
	if !ok {
		t.Fatal("expected to find 'add_time' power-up in registry")
	}
	if def.ID != "add_time" {
		t.Errorf("expected ID='add_time', got %q", def.ID)
	}
	if def.Name != "Extra Time" {
		t.Errorf("expected Name='Extra Time', got %q", def.Name)
	}
	if def.Tier != 1 {
		t.Errorf("expected Tier=1, got %d", def.Tier)
	}
	if def.UnlockLevel != 1 {
		t.Errorf("expected UnlockLevel=1, got %d", def.UnlockLevel)
	}
	if def.Reusable {
		t.Error("expected add_time to be consumable")
	}
}

func TestRegistryGetNonExistent(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get("nonexistent")
	if ok {
		t.Error("expected Get to return false for nonexistent power-up")
	}
}

func TestRegisterAllCatalog(t *testing.T) {
	r := catalogRegistry()

	all := r.All()
	if len(all) != 9 {
		t.Fatalf("expected 9 power-ups in the catalog, got %d", len(all))
	}
	if all[0].ID != "add_time" {
		t.Errorf("expected first registered power-up 'add_time', got %q", all[0].ID)
	}

	for _, def := range all {
		if def.Apply == nil {
			t.Errorf("power-up %q has no Apply", def.ID)
		}
		if def.Tier < 1 || def.Tier > 3 {
			t.Errorf("power-up %q has tier %d outside 1..3", def.ID, def.Tier)
		}
	}
}

func TestUnlockedAtGate(t *testing.T) {
	r := catalogRegistry()

	ids := func(level int) []string {
		defs := r.UnlockedAt(level)
		out := make([]string, 0, len(defs))
		for _, d := range defs {
			out = append(out, d.ID)
		}
		return out
	}

	level1 := ids(1)
	if len(level1) != 1 || level1[0] != "add_time" {
		t.Errorf("expected only add_time unlocked at level 1, got %v", level1)
	}

	level5 := ids(5)
	want5 := map[string]bool{
		"add_time": true, "grant_pair": true, "shuffle_deck": true,
		"grant_two_pair": true, "clear_selection": true,
	}
	if len(level5) != len(want5) {
		t.Fatalf("expected %d power-ups unlocked at level 5, got %v", len(want5), level5)
	}
	for _, id := range level5 {
		if !want5[id] {
			t.Errorf("unexpected power-up %q unlocked at level 5", id)
		}
	}

	if got := len(ids(12)); got != 9 {
		t.Errorf("expected the whole catalog unlocked at level 12, got %d", got)
	}
}

func TestTierPools(t *testing.T) {
	r := catalogRegistry()

	cases := []struct {
		tier int
		want int
	}{
		{1, 4},
		{2, 2},
		{3, 3},
	}
	for _, c := range cases {
		pool := r.TierPool(c.tier)
		if len(pool) != c.want {
			t.Errorf("tier %d: expected %d power-ups, got %d", c.tier, c.want, len(pool))
		}
		for _, def := range pool {
			if def.Tier != c.tier {
				t.Errorf("tier %d pool contains %q with tier %d", c.tier, def.ID, def.Tier)
			}
		}
	}
}

func TestTierNumber(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{TierBronze, 1},
		{TierSilver, 2},
		{TierGold, 3},
		{"platinum", 0},
	}
	for _, c := range cases {
		if got := TierNumber(c.name); got != c.want {
			t.Errorf("TierNumber(%q): expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestRollRewardStaysInTier(t *testing.T) {
	r := catalogRegistry()

	for _, tier := range []string{TierBronze, TierSilver, TierGold} {
		pool := r.TierPool(TierNumber(tier))
		valid := make(map[string]bool, len(pool))
		for _, def := range pool {
			valid[def.ID] = true
		}
		seen := make(map[string]bool)
		for i := 0; i < 200; i++ {
			def, ok := r.RollReward(tier)
			if !ok {
				t.Fatalf("RollReward(%q) found no reward", tier)
			}
			if !valid[def.ID] {
				t.Fatalf("RollReward(%q) returned %q from outside the tier pool", tier, def.ID)
			}
			seen[def.ID] = true
		}
		if len(pool) > 1 && len(seen) < 2 {
			t.Errorf("RollReward(%q) returned a single power-up across 200 rolls", tier)
		}
	}
}

func TestRollRewardEmptyTier(t *testing.T) {
	r := NewRegistry()
	r.Register(&AddTimePowerUp{})

	if _, ok := r.RollReward(TierGold); ok {
		t.Error("expected RollReward to report no reward for an empty tier pool")
	}
}

func TestRollTierCoversAllTiers(t *testing.T) {
	r := catalogRegistry()

	counts := make(map[string]int)
	for i := 0; i < 2000; i++ {
		counts[r.RollTier()]++
	}
	for _, tier := range []string{TierBronze, TierSilver, TierGold} {
		if counts[tier] == 0 {
			t.Errorf("expected tier %q to appear across 2000 blind rolls", tier)
		}
	}
	if counts[TierBronze] <= counts[TierGold] {
		t.Errorf("expected bronze (weight 60) to outnumber gold (weight 10), got bronze=%d gold=%d",
			counts[TierBronze], counts[TierGold])
	}
}

func TestAddTimeApply(t *testing.T) {
	cfg := config.Defaults()
	g := game.NewGame("t-addtime", cfg, nil)
	g.ModeCfg = game.ModeConfig{Countdown: true}
	g.TimeRemainingSec = 30
	g.Deck = deck.New()
	deckBefore := len(g.Deck)
	selectedBefore := len(g.Selected)

	p := &AddTimePowerUp{DeltaSec: 15}
	if err := p.Apply(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.TimeRemainingSec != 45 {
		t.Errorf("expected 45s remaining after add_time, got %d", g.TimeRemainingSec)
	}
	if len(g.Deck) != deckBefore || len(g.Selected) != selectedBefore {
		t.Error("add_time must not touch the deck or the selection")
	}
}

func TestShuffleDeckApplyKeepsCards(t *testing.T) {
	cfg := config.Defaults()
	g := game.NewGame("t-shuffle", cfg, nil)
	g.Deck = deck.New()

	before := make(map[string]bool, len(g.Deck))
	for _, c := range g.Deck {
		before[c.ID] = true
	}

	p := &ShuffleDeckPowerUp{}
	if err := p.Apply(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Deck) != len(before) {
		t.Fatalf("expected %d cards after reshuffle, got %d", len(before), len(g.Deck))
	}
	for _, c := range g.Deck {
		if !before[c.ID] {
			t.Fatalf("card %s appeared from nowhere after reshuffle", c.ID)
		}
	}
}

func TestClearSelectionApply(t *testing.T) {
	cfg := config.Defaults()
	g := game.NewGame("t-clear", cfg, nil)
	full := deck.New()
	g.Selected = append([]deck.Card(nil), full[:3]...)
	g.Deck = append([]deck.Card(nil), full[3:]...)

	p := &ClearSelectionPowerUp{}
	if err := p.Apply(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Selected) != 0 {
		t.Errorf("expected empty selection, got %d cards", len(g.Selected))
	}
	if len(g.Deck) != 52 {
		t.Errorf("expected all 52 cards back in the deck, got %d", len(g.Deck))
	}
}

func TestGrantHandApplyMovesCards(t *testing.T) {
	cfg := config.Defaults()
	g := game.NewGame("t-grant", cfg, nil)
	g.Deck = deck.New()
	deckBefore := len(g.Deck)

	p := &GrantHandPowerUp{IDValue: "grant_pair", HandType: HandPair}
	if err := p.Apply(g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Selected) != 2 {
		t.Fatalf("expected 2 selected cards after grant_pair, got %d", len(g.Selected))
	}
	if g.Selected[0].Value != g.Selected[1].Value {
		t.Errorf("expected a pair, got %s and %s", g.Selected[0], g.Selected[1])
	}
	if len(g.Deck) != deckBefore-2 {
		t.Errorf("expected deck to shrink by 2, got %d -> %d", deckBefore, len(g.Deck))
	}
	for _, c := range g.Selected {
		for _, d := range g.Deck {
			if c.ID == d.ID {
				t.Fatalf("card %s is both selected and in the deck", c.ID)
			}
		}
	}
}

func TestGrantHandApplyRejectsOverflow(t *testing.T) {
	cfg := config.Defaults()
	g := game.NewGame("t-grant-full", cfg, nil)
	full := deck.New()
	g.Selected = append([]deck.Card(nil), full[:4]...)
	g.Deck = append([]deck.Card(nil), full[4:]...)
	selectedBefore := len(g.Selected)
	deckBefore := len(g.Deck)

	p := &GrantHandPowerUp{IDValue: "grant_two_pair", HandType: HandTwoPair}
	if err := p.Apply(g); err == nil {
		t.Fatal("expected an error when the grant does not fit in the selection")
	}
	if len(g.Selected) != selectedBefore || len(g.Deck) != deckBefore {
		t.Error("a rejected grant must leave the session unchanged")
	}
}
