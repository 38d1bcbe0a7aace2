package config

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
)

// ScoringConfig holds the tunable scoring parameters.
type ScoringConfig struct {
	TimeBonusMax           int     `json:"time_bonus_max"`
	TimeBonusDecayPerSec   int     `json:"time_bonus_decay_per_sec"`
	LeftoverPenaltyPerCard int     `json:"leftover_penalty_per_card"`
	LevelGoalBase          int     `json:"level_goal_base"`
	LevelGoalStep          int     `json:"level_goal_step"`
	BonusPointMultiplier   float64 `json:"bonus_point_multiplier"`
	BonusTimePointsPerSec  int     `json:"bonus_time_points_per_sec"`
}

// LevelConfig holds the SSC progression parameters.
type LevelConfig struct {
	PhaseBlockLen    int     `json:"phase_block_len"`
	SpeedScaleFrom   int     `json:"speed_scale_from"`
	SpeedScaleStep   float64 `json:"speed_scale_step"`
	MaxSpeedScale    float64 `json:"max_speed_scale"`
	BaseVisibleCards int     `json:"base_visible_cards"`
	MaxVisibleCards  int     `json:"max_visible_cards"`
	BonusInterval    int     `json:"bonus_interval"`
}

// PowerUpsConfig holds per-power-up and loot configuration.
type PowerUpsConfig struct {
	AddTimeDeltaSec  int `json:"add_time_delta_sec"`
	LootBronzeWeight int `json:"loot_bronze_weight"`
	LootSilverWeight int `json:"loot_silver_weight"`
	LootGoldWeight   int `json:"loot_gold_weight"`
}

// Config holds all configurable game parameters.
type Config struct {
	WSPort int `json:"ws_port"`

	// Session timing.
	AutoSubmitDelayMS int `json:"auto_submit_delay_ms"`
	PickDebounceMS    int `json:"pick_debounce_ms"`
	BlitzTimeSec      int `json:"blitz_time_sec"`
	LevelTimeSec      int `json:"level_time_sec"`
	BonusTimeSec      int `json:"bonus_time_sec"`
	ContinueTimeSec   int `json:"continue_time_sec"`

	// InventoryCapacity bounds held power-ups when positive; 0 = unlimited.
	InventoryCapacity int `json:"inventory_capacity"`

	// StrictInvariants makes deck bookkeeping corruption panic instead of
	// self-healing. Meant for development builds.
	StrictInvariants bool `json:"strict_invariants"`

	Scoring  ScoringConfig  `json:"scoring"`
	Level    LevelConfig    `json:"level"`
	PowerUps PowerUpsConfig `json:"powerups"`
}

// Defaults returns a Config with the standard live tuning.
func Defaults() *Config {
	return &Config{
		WSPort:            8080,
		AutoSubmitDelayMS: 650,
		PickDebounceMS:    150,
		BlitzTimeSec:      60,
		LevelTimeSec:      90,
		BonusTimeSec:      30,
		ContinueTimeSec:   30,
		InventoryCapacity: 0,
		StrictInvariants:  false,
		Scoring: ScoringConfig{
			TimeBonusMax:           1000,
			TimeBonusDecayPerSec:   5,
			LeftoverPenaltyPerCard: 25,
			LevelGoalBase:          1000,
			LevelGoalStep:          500,
			BonusPointMultiplier:   2.0,
			BonusTimePointsPerSec:  10,
		},
		Level: LevelConfig{
			PhaseBlockLen:    3,
			SpeedScaleFrom:   10,
			SpeedScaleStep:   0.005,
			MaxSpeedScale:    2.0,
			BaseVisibleCards: 8,
			MaxVisibleCards:  16,
			BonusInterval:    3,
		},
		PowerUps: PowerUpsConfig{
			AddTimeDeltaSec:  15,
			LootBronzeWeight: 60,
			LootSilverWeight: 30,
			LootGoldWeight:   10,
		},
	}
}

// Load reads configuration from an optional config.json file,
// then applies environment variable overrides. Fields not set
// in either source retain their default values.
func Load() *Config {
	cfg := Defaults()

	// Try to load from config.json
	if f, err := os.Open("config.json"); err == nil {
		defer f.Close()
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			log.Printf("Warning: failed to parse config.json: %v", err)
		}
	}

	// Environment variable overrides
	overrideInt(&cfg.WSPort, "WS_PORT")
	overrideInt(&cfg.AutoSubmitDelayMS, "AUTO_SUBMIT_DELAY_MS")
	overrideInt(&cfg.PickDebounceMS, "PICK_DEBOUNCE_MS")
	overrideInt(&cfg.BlitzTimeSec, "BLITZ_TIME_SEC")
	overrideInt(&cfg.LevelTimeSec, "LEVEL_TIME_SEC")
	overrideInt(&cfg.BonusTimeSec, "BONUS_TIME_SEC")
	overrideInt(&cfg.ContinueTimeSec, "CONTINUE_TIME_SEC")
	overrideInt(&cfg.InventoryCapacity, "INVENTORY_CAPACITY")
	overrideBool(&cfg.StrictInvariants, "STRICT_INVARIANTS")
	overrideInt(&cfg.Scoring.TimeBonusMax, "TIME_BONUS_MAX")
	overrideInt(&cfg.Scoring.TimeBonusDecayPerSec, "TIME_BONUS_DECAY_PER_SEC")
	overrideInt(&cfg.Scoring.LeftoverPenaltyPerCard, "LEFTOVER_PENALTY_PER_CARD")
	overrideInt(&cfg.Scoring.LevelGoalBase, "LEVEL_GOAL_BASE")
	overrideInt(&cfg.Scoring.LevelGoalStep, "LEVEL_GOAL_STEP")
	overrideFloat(&cfg.Scoring.BonusPointMultiplier, "BONUS_POINT_MULTIPLIER")
	overrideInt(&cfg.Scoring.BonusTimePointsPerSec, "BONUS_TIME_POINTS_PER_SEC")
	overrideInt(&cfg.Level.BaseVisibleCards, "BASE_VISIBLE_CARDS")
	overrideInt(&cfg.Level.MaxVisibleCards, "MAX_VISIBLE_CARDS")
	overrideInt(&cfg.Level.BonusInterval, "BONUS_INTERVAL")
	overrideFloat(&cfg.Level.MaxSpeedScale, "MAX_SPEED_SCALE")
	overrideInt(&cfg.PowerUps.AddTimeDeltaSec, "POWERUP_ADD_TIME_DELTA_SEC")
	overrideInt(&cfg.PowerUps.LootBronzeWeight, "LOOT_BRONZE_WEIGHT")
	overrideInt(&cfg.PowerUps.LootSilverWeight, "LOOT_SILVER_WEIGHT")
	overrideInt(&cfg.PowerUps.LootGoldWeight, "LOOT_GOLD_WEIGHT")

	return cfg
}

func overrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*field = n
		} else {
			log.Printf("Warning: invalid value for %s: %q", envKey, val)
		}
	}
}

func overrideFloat(field *float64, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*field = f
		} else {
			log.Printf("Warning: invalid value for %s: %q", envKey, val)
		}
	}
}

func overrideBool(field *bool, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*field = b
		} else {
			log.Printf("Warning: invalid value for %s: %q", envKey, val)
		}
	}
}
