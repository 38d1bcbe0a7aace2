package level

// Phase is how cards are presented to the picker during a level.
type Phase int

const (
	Static Phase = iota
	Conveyor
	Falling
	Orbit
)

// String returns the string representation of a Phase.
func (p Phase) String() string {
	switch p {
	case Static:
		return "static"
	case Conveyor:
		return "conveyor"
	case Falling:
		return "falling"
	case Orbit:
		return "orbit"
	default:
		return "unknown"
	}
}

// Tuning holds the progression parameters. Construct with DefaultTuning
// and override from config.
type Tuning struct {
	PhaseBlockLen    int
	SpeedScaleFrom   int
	SpeedScaleStep   float64
	MaxSpeedScale    float64
	BaseVisibleCards int
	MaxVisibleCards  int
	BonusInterval    int
	BonusMaxCards    int
}

// DefaultTuning returns the standard live tuning.
func DefaultTuning() Tuning {
	return Tuning{
		PhaseBlockLen:    3,
		SpeedScaleFrom:   10,
		SpeedScaleStep:   0.005,
		MaxSpeedScale:    2.0,
		BaseVisibleCards: 8,
		MaxVisibleCards:  16,
		BonusInterval:    3,
		BonusMaxCards:    52,
	}
}

// PhaseFor returns the presentation phase for a level. Phases cycle in
// fixed-length blocks: static, conveyor, falling, then orbit.
func (t Tuning) PhaseFor(level int) Phase {
	if level < 1 {
		level = 1
	}
	block := (level - 1) / t.PhaseBlockLen
	switch block % 4 {
	case 0:
		return Static
	case 1:
		return Conveyor
	case 2:
		return Falling
	default:
		return Orbit
	}
}

// SpeedScale is the multiplier applied to fall and orbit speeds. Flat
// until SpeedScaleFrom, then grows linearly, capped at MaxSpeedScale.
func (t Tuning) SpeedScale(level int) float64 {
	if level <= t.SpeedScaleFrom {
		return 1.0
	}
	scale := 1.0 + float64(level-t.SpeedScaleFrom)*t.SpeedScaleStep
	if scale > t.MaxSpeedScale {
		return t.MaxSpeedScale
	}
	return scale
}

// VisibleCards is how many cards the level shows at once, growing every
// other level up to the maximum.
func (t Tuning) VisibleCards(level int) int {
	if level < 1 {
		level = 1
	}
	n := t.BaseVisibleCards + (level-1)/2
	if n > t.MaxVisibleCards {
		return t.MaxVisibleCards
	}
	return n
}

// BonusAfter reports whether completing the given level routes through a
// bonus round before the next level starts.
func (t Tuning) BonusAfter(level int) bool {
	return level > 0 && level%t.BonusInterval == 0
}

// BonusOrdinal returns which bonus round follows the given completed
// level, counting from 1, or 0 if none does.
func (t Tuning) BonusOrdinal(level int) int {
	if !t.BonusAfter(level) {
		return 0
	}
	return level / t.BonusInterval
}

// BonusCardCount is how many cards a bonus round deals, growing with the
// bonus round ordinal and capped at a full deck.
func (t Tuning) BonusCardCount(ordinal int) int {
	if ordinal < 1 {
		ordinal = 1
	}
	n := ordinal * 10
	if n > t.BonusMaxCards {
		return t.BonusMaxCards
	}
	return n
}
