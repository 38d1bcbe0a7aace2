package powerup

import (
	"math/rand"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
)

// Loot box tier names.
const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

// Rarity weights for loot rolls within a tier (higher = more likely).
const (
	RarityCommon   = 3
	RarityUncommon = 2
	RarityRare     = 1
)

// PowerUp defines the interface that all power-ups must implement.
type PowerUp interface {
	ID() string
	Name() string
	Description() string
	Tier() int
	UnlockLevel() int
	Reusable() bool
	Rarity() int
	Apply(g *game.Game) error
}

// Registry holds all registered power-ups indexed by their ID.
type Registry struct {
	powerUps map[string]PowerUp
	order    []string // registration order for deterministic All()

	// blind loot box tier weights
	bronzeWeight int
	silverWeight int
	goldWeight   int
}

// NewRegistry creates a new empty power-up registry.
func NewRegistry() *Registry {
	return &Registry{
		powerUps: make(map[string]PowerUp),
		order:    nil,
	}
}

// Register adds a power-up to the registry.
func (r *Registry) Register(p PowerUp) {
	id := p.ID()
	if _, exists := r.powerUps[id]; !exists {
		r.order = append(r.order, id)
	}
	r.powerUps[id] = p
}

func toDef(p PowerUp) game.PowerUpDef {
	return game.PowerUpDef{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Tier:        p.Tier(),
		UnlockLevel: p.UnlockLevel(),
		Reusable:    p.Reusable(),
		Rarity:      p.Rarity(),
		Apply:       p.Apply,
	}
}

// Get returns the power-up definition for the game package.
// It satisfies the game.PowerUpProvider interface.
func (r *Registry) Get(id string) (game.PowerUpDef, bool) {
	p, ok := r.powerUps[id]
	if !ok {
		return game.PowerUpDef{}, false
	}
	return toDef(p), true
}

// All returns every registered power-up in registration order.
// It satisfies the game.PowerUpProvider interface.
func (r *Registry) All() []game.PowerUpDef {
	defs := make([]game.PowerUpDef, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, toDef(r.powerUps[id]))
	}
	return defs
}

// UnlockedAt returns the power-ups the catalog unlocks at the given level,
// in registration order. It satisfies the game.PowerUpProvider interface.
func (r *Registry) UnlockedAt(level int) []game.PowerUpDef {
	defs := make([]game.PowerUpDef, 0, len(r.order))
	for _, id := range r.order {
		p := r.powerUps[id]
		if p.UnlockLevel() <= level {
			defs = append(defs, toDef(p))
		}
	}
	return defs
}

// TierPool returns the power-ups belonging to a catalog tier, in
// registration order.
func (r *Registry) TierPool(tier int) []game.PowerUpDef {
	defs := make([]game.PowerUpDef, 0, len(r.order))
	for _, id := range r.order {
		p := r.powerUps[id]
		if p.Tier() == tier {
			defs = append(defs, toDef(p))
		}
	}
	return defs
}

// TierNumber maps a loot tier name to its catalog tier (bronze=1, silver=2,
// gold=3); 0 for anything else.
func TierNumber(tier string) int {
	switch tier {
	case TierBronze:
		return 1
	case TierSilver:
		return 2
	case TierGold:
		return 3
	default:
		return 0
	}
}

// RollReward picks one power-up from the tier's pool with probability
// proportional to Rarity. It satisfies the game.PowerUpProvider interface.
func (r *Registry) RollReward(tier string) (game.PowerUpDef, bool) {
	pool := r.TierPool(TierNumber(tier))
	if len(pool) == 0 {
		return game.PowerUpDef{}, false
	}
	total := 0
	for _, def := range pool {
		total += weightOf(def)
	}
	roll := rand.Intn(total)
	for _, def := range pool {
		roll -= weightOf(def)
		if roll < 0 {
			return def, true
		}
	}
	return pool[len(pool)-1], true
}

func weightOf(def game.PowerUpDef) int {
	if def.Rarity < 1 {
		return 1
	}
	return def.Rarity
}

// RollTier rolls a blind loot box tier using the configured bronze/silver/
// gold odds. It satisfies the game.PowerUpProvider interface.
func (r *Registry) RollTier() string {
	b, s, g := r.bronzeWeight, r.silverWeight, r.goldWeight
	if b <= 0 && s <= 0 && g <= 0 {
		b, s, g = 60, 30, 10
	}
	if b < 0 {
		b = 0
	}
	if s < 0 {
		s = 0
	}
	if g < 0 {
		g = 0
	}
	roll := rand.Intn(b + s + g)
	switch {
	case roll < b:
		return TierBronze
	case roll < b+s:
		return TierSilver
	default:
		return TierGold
	}
}
