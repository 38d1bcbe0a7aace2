package game

import (
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/deck"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/hand"
)

// CardView is the per-card view sent to clients.
type CardView struct {
	ID    string `json:"id"`
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

// HandView summarizes an evaluated five-card hand for clients.
type HandView struct {
	Category string     `json:"category"`
	Points   int        `json:"points"`
	Cards    []CardView `json:"cards"`
}

// RewardView describes a rolled loot reward waiting to be claimed.
type RewardView struct {
	PowerUpID   string `json:"powerUpId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        int    `json:"tier"`
	Reusable    bool   `json:"reusable"`
}

// StateMsg is the full session snapshot sent after every mutation and tick.
type StateMsg struct {
	Type   string `json:"type"`
	Status string `json:"status"`
	Mode   string `json:"mode,omitempty"`

	IsPlaying  bool `json:"isPlaying"`
	IsPaused   bool `json:"isPaused"`
	IsGameOver bool `json:"isGameOver"`

	Score            int `json:"score"`
	CumulativeScore  int `json:"cumulativeScore"`
	HandsPlayed      int `json:"handsPlayed"`
	TimeElapsedSec   int `json:"timeElapsedSec"`
	TimeRemainingSec int `json:"timeRemainingSec"`

	Level      int     `json:"level,omitempty"`
	Phase      string  `json:"phase,omitempty"`
	SpeedScale float64 `json:"speedScale,omitempty"`
	LevelGoal  int     `json:"levelGoal,omitempty"`
	Stars      int     `json:"stars,omitempty"`
	BonusRound int     `json:"bonusRound,omitempty"`
	Streak     int     `json:"streak"`

	VisibleCards  []CardView `json:"visibleCards"`
	DeckCount     int        `json:"deckCount"`
	SelectedCards []CardView `json:"selectedCards"`
	UsedCount     int        `json:"usedCount"`
	CurrentHand   *HandView  `json:"currentHand,omitempty"`

	UnlockedPowerUps []string    `json:"unlockedPowerUps"`
	ActivePowerUps   []string    `json:"activePowerUps"`
	PendingLoot      []string    `json:"pendingLoot"`
	PendingReward    *RewardView `json:"pendingReward,omitempty"`

	ContinueAvailable bool `json:"continueAvailable"`
}

// HandScoredMsg reports a submitted hand and the points it earned.
type HandScoredMsg struct {
	Type            string   `json:"type"`
	Hand            HandView `json:"hand"`
	Multiplier      float64  `json:"multiplier"`
	Points          int      `json:"points"`
	Streak          int      `json:"streak"`
	Bonus           bool     `json:"bonus"`
	Score           int      `json:"score"`
	CumulativeScore int      `json:"cumulativeScore"`
}

// LevelCompleteMsg announces a beaten level and the loot it earned.
type LevelCompleteMsg struct {
	Type      string `json:"type"`
	Level     int    `json:"level"`
	Score     int    `json:"score"`
	Goal      int    `json:"goal"`
	Stars     int    `json:"stars"`
	LootTier  string `json:"lootTier"`
	BonusNext bool   `json:"bonusNext"`
}

// BonusRoundMsg brackets a bonus round ("started" / "ended").
type BonusRoundMsg struct {
	Type    string `json:"type"`
	Stage   string `json:"stage"`
	Ordinal int    `json:"ordinal"`
	Cards   int    `json:"cards,omitempty"`
	TimeSec int    `json:"timeSec,omitempty"`
	Points  int    `json:"points,omitempty"`
}

// GameOverMsg is the terminal report for a session.
type GameOverMsg struct {
	Type              string `json:"type"`
	Reason            string `json:"reason"`
	Score             int    `json:"score"`
	HandsPlayed       int    `json:"handsPlayed"`
	Level             int    `json:"level,omitempty"`
	TimeElapsedSec    int    `json:"timeElapsedSec"`
	BestHand          string `json:"bestHand,omitempty"`
	TimeBonus         int    `json:"timeBonus,omitempty"`
	LeftoverPenalty   int    `json:"leftoverPenalty,omitempty"`
	ContinueAvailable bool   `json:"continueAvailable"`
}

// PowerUpUsedMsg reports a successfully applied power-up.
type PowerUpUsedMsg struct {
	Type      string `json:"type"`
	PowerUpID string `json:"powerUpId"`
	Name      string `json:"name"`
	Reusable  bool   `json:"reusable"`
}

// LootRewardMsg reveals the rolled content of an opened loot box.
type LootRewardMsg struct {
	Type   string     `json:"type"`
	Tier   string     `json:"tier"`
	Reward RewardView `json:"reward"`
}

func buildCardViews(cards []deck.Card) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, CardView{
			ID:    c.ID,
			Suit:  string(c.Suit),
			Rank:  string(c.Rank),
			Value: c.Value,
		})
	}
	return views
}

func buildHandView(res hand.Result) HandView {
	return HandView{
		Category: res.Category.String(),
		Points:   res.Points,
		Cards:    buildCardViews(res.RankedCards),
	}
}

func buildRewardView(def PowerUpDef) RewardView {
	return RewardView{
		PowerUpID:   def.ID,
		Name:        def.Name,
		Description: def.Description,
		Tier:        def.Tier,
		Reusable:    def.Reusable,
	}
}

// inBonus reports whether the session is inside a bonus round (including a
// bonus round that is currently paused).
func (g *Game) inBonus() bool {
	return g.BonusOrdinal > 0
}

// visibleCount returns how many cards from the top of the deck the player
// may pick from. Bonus rounds expose their whole pool; modes without the
// visibility limit expose the whole deck.
func (g *Game) visibleCount() int {
	if g.ModeCfg.LimitVisible && !g.inBonus() {
		if n := g.tuning.VisibleCards(g.Level); n < len(g.Deck) {
			return n
		}
	}
	return len(g.Deck)
}

// continueAvailable reports whether a continue could still be requested.
func (g *Game) continueAvailable() bool {
	return g.Status == StatusGameOver && g.ModeCfg.Countdown && !g.ContinueUsed && !g.continuePending
}

// BuildState assembles the snapshot for the current session state.
func (g *Game) BuildState() StateMsg {
	unlocked := g.Unlocked
	if unlocked == nil {
		unlocked = []string{}
	}
	active := g.Active
	if active == nil {
		active = []string{}
	}
	loot := g.PendingLoot
	if loot == nil {
		loot = []string{}
	}

	state := StateMsg{
		Type:              "game_state",
		Status:            g.Status.String(),
		IsPlaying:         g.Status == StatusPlaying || g.Status == StatusBonusRound,
		IsPaused:          g.Status == StatusPaused,
		IsGameOver:        g.Status == StatusGameOver,
		Score:             g.Score,
		CumulativeScore:   g.CumulativeScore,
		HandsPlayed:       g.HandsPlayed,
		TimeElapsedSec:    g.TimeElapsedSec,
		TimeRemainingSec:  g.TimeRemainingSec,
		Streak:            g.streak.Count(),
		VisibleCards:      buildCardViews(g.Deck[:g.visibleCount()]),
		DeckCount:         len(g.Deck),
		SelectedCards:     buildCardViews(g.Selected),
		UsedCount:         len(g.Used),
		BonusRound:        g.BonusOrdinal,
		UnlockedPowerUps:  unlocked,
		ActivePowerUps:    active,
		PendingLoot:       loot,
		ContinueAvailable: g.continueAvailable(),
	}
	if g.Status != StatusIdle {
		state.Mode = g.Mode.String()
	}
	if g.ModeCfg.Levels && g.Level > 0 {
		state.Level = g.Level
		state.Phase = g.tuning.PhaseFor(g.Level).String()
		state.SpeedScale = g.tuning.SpeedScale(g.Level)
		state.LevelGoal = g.rules.LevelGoal(g.Level)
		state.Stars = g.rules.Stars(g.Score, state.LevelGoal)
	}
	if len(g.Selected) == hand.Size {
		if res, err := hand.Evaluate(g.Selected); err == nil {
			view := buildHandView(res)
			state.CurrentHand = &view
		}
	}
	if g.PendingReward != "" && g.PowerUps != nil {
		if def, ok := g.PowerUps.Get(g.PendingReward); ok {
			view := buildRewardView(def)
			state.PendingReward = &view
		}
	}
	return state
}
