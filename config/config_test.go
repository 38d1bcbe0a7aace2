package config

import (
	"os"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.WSPort != 8080 {
		t.Errorf("expected WSPort=8080, got %d", cfg.WSPort)
	}
	if cfg.AutoSubmitDelayMS != 650 {
		t.Errorf("expected AutoSubmitDelayMS=650, got %d", cfg.AutoSubmitDelayMS)
	}
	if cfg.BlitzTimeSec != 60 {
		t.Errorf("expected BlitzTimeSec=60, got %d", cfg.BlitzTimeSec)
	}
	if cfg.LevelTimeSec != 90 {
		t.Errorf("expected LevelTimeSec=90, got %d", cfg.LevelTimeSec)
	}
	if cfg.InventoryCapacity != 0 {
		t.Errorf("expected InventoryCapacity=0 (unlimited), got %d", cfg.InventoryCapacity)
	}
	if cfg.Scoring.LevelGoalBase != 1000 {
		t.Errorf("expected LevelGoalBase=1000, got %d", cfg.Scoring.LevelGoalBase)
	}
	if cfg.Scoring.LevelGoalStep != 500 {
		t.Errorf("expected LevelGoalStep=500, got %d", cfg.Scoring.LevelGoalStep)
	}
	if cfg.Scoring.BonusPointMultiplier != 2.0 {
		t.Errorf("expected BonusPointMultiplier=2.0, got %v", cfg.Scoring.BonusPointMultiplier)
	}
	if cfg.Level.BonusInterval != 3 {
		t.Errorf("expected BonusInterval=3, got %d", cfg.Level.BonusInterval)
	}
	if cfg.PowerUps.AddTimeDeltaSec != 15 {
		t.Errorf("expected AddTimeDeltaSec=15, got %d", cfg.PowerUps.AddTimeDeltaSec)
	}
	if cfg.StrictInvariants {
		t.Error("expected StrictInvariants=false by default")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	os.Setenv("WS_PORT", "9090")
	os.Setenv("BLITZ_TIME_SEC", "120")
	os.Setenv("LEVEL_GOAL_BASE", "2000")
	os.Setenv("BONUS_POINT_MULTIPLIER", "3.5")
	defer func() {
		os.Unsetenv("WS_PORT")
		os.Unsetenv("BLITZ_TIME_SEC")
		os.Unsetenv("LEVEL_GOAL_BASE")
		os.Unsetenv("BONUS_POINT_MULTIPLIER")
	}()

	cfg := Load()

	if cfg.WSPort != 9090 {
		t.Errorf("expected WSPort=9090 after env override, got %d", cfg.WSPort)
	}
	if cfg.BlitzTimeSec != 120 {
		t.Errorf("expected BlitzTimeSec=120 after env override, got %d", cfg.BlitzTimeSec)
	}
	if cfg.Scoring.LevelGoalBase != 2000 {
		t.Errorf("expected LevelGoalBase=2000 after env override, got %d", cfg.Scoring.LevelGoalBase)
	}
	if cfg.Scoring.BonusPointMultiplier != 3.5 {
		t.Errorf("expected BonusPointMultiplier=3.5 after env override, got %v", cfg.Scoring.BonusPointMultiplier)
	}
	// Non-overridden fields should remain default
	if cfg.AutoSubmitDelayMS != 650 {
		t.Errorf("expected AutoSubmitDelayMS=650 (default), got %d", cfg.AutoSubmitDelayMS)
	}
}

func TestLoadWithInvalidEnv(t *testing.T) {
	os.Setenv("WS_PORT", "invalid")
	defer os.Unsetenv("WS_PORT")

	cfg := Load()

	// Should fall back to default when env value is invalid
	if cfg.WSPort != 8080 {
		t.Errorf("expected WSPort=8080 (default) with invalid env, got %d", cfg.WSPort)
	}
}
