package game

import (
	"encoding/json"
	"testing"
)

func TestBuildState_Idle(t *testing.T) {
	g, _, _ := createTestGame(testConfig())

	state := g.BuildState()

	if state.Type != "game_state" {
		t.Errorf("expected type game_state, got %q", state.Type)
	}
	if state.Status != "idle" {
		t.Errorf("expected status idle, got %q", state.Status)
	}
	if state.Mode != "" {
		t.Errorf("idle snapshot must not carry a mode, got %q", state.Mode)
	}
	if state.IsPlaying || state.IsPaused || state.IsGameOver {
		t.Error("idle snapshot must have all lifecycle flags false")
	}
	// Clients iterate these; they must never be null in JSON.
	data, _ := json.Marshal(state)
	var raw map[string]any
	json.Unmarshal(data, &raw)
	for _, key := range []string{"visibleCards", "selectedCards", "unlockedPowerUps", "activePowerUps", "pendingLoot"} {
		if raw[key] == nil {
			t.Errorf("expected %s to marshal as [], got null", key)
		}
	}
}

func TestBuildState_SSCCarriesProgression(t *testing.T) {
	g, _, _ := createTestGame(testConfig())
	defer g.cancelTicker()
	g.handleStart("ssc")

	state := g.BuildState()

	if state.Mode != "ssc" || !state.IsPlaying {
		t.Fatalf("expected playing ssc snapshot, got mode=%q playing=%v", state.Mode, state.IsPlaying)
	}
	if state.Level != 1 {
		t.Errorf("expected level 1, got %d", state.Level)
	}
	if state.Phase != "static" {
		t.Errorf("expected static phase at level 1, got %q", state.Phase)
	}
	if state.SpeedScale != 1.0 {
		t.Errorf("expected speed scale 1.0 at level 1, got %v", state.SpeedScale)
	}
	if state.LevelGoal != g.rules.LevelGoal(1) {
		t.Errorf("expected level goal %d, got %d", g.rules.LevelGoal(1), state.LevelGoal)
	}
	if len(state.VisibleCards) != g.Config.Level.BaseVisibleCards {
		t.Errorf("expected %d visible cards, got %d", g.Config.Level.BaseVisibleCards, len(state.VisibleCards))
	}
	if state.DeckCount != 52 {
		t.Errorf("expected the full deck counted, got %d", state.DeckCount)
	}
}

func TestBuildState_ClassicShowsWholeDeck(t *testing.T) {
	g, _, _ := createTestGame(testConfig())
	defer g.cancelTicker()
	g.handleStart("classic")

	state := g.BuildState()

	if len(state.VisibleCards) != 52 {
		t.Errorf("expected all 52 cards visible in classic, got %d", len(state.VisibleCards))
	}
	if state.Level != 0 || state.Phase != "" {
		t.Error("classic snapshot must not carry SSC progression fields")
	}
}

func TestBuildState_CurrentHandAtFiveCards(t *testing.T) {
	g, _, _ := createTestGame(testConfig())
	defer g.cancelTicker()
	g.handleStart("classic")

	forceSelect(g, cards("h10", "hJ", "hQ", "hK", "hA"))
	state := g.BuildState()

	if state.CurrentHand == nil {
		t.Fatal("expected a current hand with five cards selected")
	}
	if state.CurrentHand.Category != "Royal Flush" {
		t.Errorf("expected Royal Flush, got %q", state.CurrentHand.Category)
	}
	if state.CurrentHand.Points != 5000 {
		t.Errorf("expected 5000 points, got %d", state.CurrentHand.Points)
	}

	g.Selected = g.Selected[:4]
	if got := g.BuildState(); got.CurrentHand != nil {
		t.Error("fewer than five cards must not produce a hand result")
	}
}

func TestBuildState_PendingRewardView(t *testing.T) {
	g, _, _ := createTestGame(testConfig())
	defer g.cancelTicker()
	g.handleStart("ssc")
	g.PendingReward = "add_time"

	state := g.BuildState()

	if state.PendingReward == nil {
		t.Fatal("expected the pending reward in the snapshot")
	}
	if state.PendingReward.PowerUpID != "add_time" || state.PendingReward.Name != "Extra Time" {
		t.Errorf("unexpected reward view: %+v", state.PendingReward)
	}
}

func TestBuildState_GameOverFlags(t *testing.T) {
	g, _, _ := createTestGame(testConfig())
	defer g.cancelTicker()
	g.handleStart("blitz")
	g.TimeRemainingSec = 1
	g.handleTick()

	state := g.BuildState()

	if !state.IsGameOver || state.IsPlaying {
		t.Errorf("expected game-over flags, got playing=%v over=%v", state.IsPlaying, state.IsGameOver)
	}
	if !state.ContinueAvailable {
		t.Error("expected the continue offer in the snapshot")
	}
}

func TestStateJSON_FieldNames(t *testing.T) {
	g, _, _ := createTestGame(testConfig())
	defer g.cancelTicker()
	g.handleStart("ssc")

	data, err := json.Marshal(g.BuildState())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"status", "mode", "score", "cumulativeScore", "timeRemainingSec", "levelGoal", "visibleCards", "activePowerUps"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("expected field %q in the wire snapshot", key)
		}
	}
}
