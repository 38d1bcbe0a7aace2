package game

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/config"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/deck"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/hand"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/level"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/scoring"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/wsutil"
)

// Status represents the lifecycle state of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusPaused
	StatusBonusRound
	StatusGameOver
)

// String returns the protocol string for a Status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusBonusRound:
		return "bonus_round"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ActionType enumerates the kinds of actions a session can process.
type ActionType int

const (
	ActionStart ActionType = iota
	ActionSelectCard
	ActionDeselectCard
	ActionSubmitHand
	ActionAutoSubmit // internal: fired when the auto-submit settle delay expires
	ActionUsePowerUp
	ActionOpenLoot
	ActionClaimLoot
	ActionPause
	ActionResume
	ActionContinue
	ActionContinueResolved // internal: reward gate verdict arrived
	ActionReset
	ActionTick     // internal: fired every second by the session ticker
	ActionShutdown // connection closed; stop the loop
)

// Action represents a player (or internal timer) action sent into the
// session's action channel.
type Action struct {
	Type      ActionType
	Mode      string // game mode (for Start)
	CardID    string // card id (for SelectCard/DeselectCard)
	PowerUpID string // power-up id (for UsePowerUp)
	DiscardID string // power-up id to discard when claiming at capacity (for ClaimLoot)
	Granted   bool   // reward gate verdict (for ContinueResolved)
}

// PowerUpProvider abstracts the power-up registry so the game package
// does not import the powerup package directly (avoids circular deps).
type PowerUpProvider interface {
	Get(id string) (PowerUpDef, bool)
	All() []PowerUpDef
	UnlockedAt(level int) []PowerUpDef
	RollReward(tier string) (PowerUpDef, bool)
	RollTier() string
}

// PowerUpDef holds the definition of a power-up as seen by the game package.
// Rarity weights the loot roll within a tier (higher = more likely).
type PowerUpDef struct {
	ID          string
	Name        string
	Description string
	Tier        int
	UnlockLevel int
	Reusable    bool
	Rarity      int
	Apply       func(g *Game) error
}

// RewardGate is the external rewarded-ad capability consulted before a
// continue is granted. A false verdict means "no reward", never an error.
type RewardGate interface {
	Grant(ctx context.Context) bool
}

// AlwaysGrant is the stand-in gate used until a real ad provider is wired.
type AlwaysGrant struct{}

func (AlwaysGrant) Grant(_ context.Context) bool { return true }

// Notifier receives fire-and-forget gameplay hooks (audio/theme cues on the
// client). Optional; may be nil.
type Notifier interface {
	HandScored(category string)
	CardPicked()
}

// HandRecord is one scored hand, reported for balance telemetry.
type HandRecord struct {
	SessionID  string
	Mode       string
	Level      int
	Category   string
	BasePoints int
	Points     int
	Multiplier float64
	Streak     int
	BonusRound bool
}

// TelemetrySink receives per-hand records. Implementations must not block;
// the session loop calls it inline. Optional; may be nil.
type TelemetrySink interface {
	HandPlayed(rec HandRecord)
}

// continueGraceTimeout bounds how long a continue waits on the reward gate.
const continueGraceTimeout = 15 * time.Second

// Game manages a single player session. All mutation happens on the Run
// goroutine; other goroutines only post to Actions.
type Game struct {
	ID     string
	Config *config.Config

	Mode    Mode
	ModeCfg ModeConfig
	Status  Status

	Score           int // points this level (whole game outside SSC)
	CumulativeScore int // points across all levels
	HandsPlayed     int // hands this level
	TotalHands      int // hands across all levels
	BestHand        *hand.Result

	TimeElapsedSec   int
	TimeRemainingSec int

	Deck     []deck.Card
	Selected []deck.Card
	Used     []deck.Card

	LastResult *hand.Result

	Level        int // 0 outside SSC
	BonusOrdinal int // which bonus round is running (1-based); 0 outside bonus

	// Unlocked are the power-up ids usable this level (catalog gate plus
	// claimed loot). Active is Unlocked minus consumables already spent
	// this level.
	Unlocked []string
	Active   []string
	claimed  map[string]struct{}

	// PendingLoot holds unopened loot box tiers, oldest first. PendingReward
	// is a rolled reward waiting for the claim intent ("" = none).
	PendingLoot   []string
	PendingReward string

	streak scoring.StreakTracker
	rules  scoring.Rules
	tuning level.Tuning

	PowerUps  PowerUpProvider
	Gate      RewardGate
	Notify    Notifier
	Telemetry TelemetrySink
	Send      chan []byte

	ContinueUsed    bool
	continuePending bool
	resumeStatus    Status // status to restore when a pause toggles back

	picks inputDebounce

	tickerCancel     chan struct{}
	autoSubmitCancel chan struct{}

	Actions chan Action
	Done    chan struct{}

	// OnGameEnd is called once when the session reaches GameOver; set by the
	// session manager to persist the result.
	OnGameEnd func(mode string, score, handsPlayed, sscLevel, timeElapsedSec int, bestHandName string)
}

// NewGame creates an idle session. Start it with Run and drive it through
// the Actions channel.
func NewGame(id string, cfg *config.Config, pups PowerUpProvider) *Game {
	return &Game{
		ID:       id,
		Config:   cfg,
		Status:   StatusIdle,
		claimed:  make(map[string]struct{}),
		rules:    scoringRules(cfg),
		tuning:   levelTuning(cfg),
		PowerUps: pups,
		picks:    newInputDebounce(cfg.PickDebounceMS),
		Actions:  make(chan Action, 16),
		Done:     make(chan struct{}),
	}
}

func scoringRules(cfg *config.Config) scoring.Rules {
	return scoring.Rules{
		TimeBonusMax:           cfg.Scoring.TimeBonusMax,
		TimeBonusDecayPerSec:   cfg.Scoring.TimeBonusDecayPerSec,
		LeftoverPenaltyPerCard: cfg.Scoring.LeftoverPenaltyPerCard,
		LevelGoalBase:          cfg.Scoring.LevelGoalBase,
		LevelGoalStep:          cfg.Scoring.LevelGoalStep,
		BonusPointMultiplier:   cfg.Scoring.BonusPointMultiplier,
		BonusTimePointsPerSec:  cfg.Scoring.BonusTimePointsPerSec,
	}
}

func levelTuning(cfg *config.Config) level.Tuning {
	t := level.DefaultTuning()
	t.PhaseBlockLen = cfg.Level.PhaseBlockLen
	t.SpeedScaleFrom = cfg.Level.SpeedScaleFrom
	t.SpeedScaleStep = cfg.Level.SpeedScaleStep
	t.MaxSpeedScale = cfg.Level.MaxSpeedScale
	t.BaseVisibleCards = cfg.Level.BaseVisibleCards
	t.MaxVisibleCards = cfg.Level.MaxVisibleCards
	t.BonusInterval = cfg.Level.BonusInterval
	return t
}

// Run is the main session loop. It processes actions sequentially.
// It should be run as a goroutine.
func (g *Game) Run() {
	defer close(g.Done)

	g.broadcastState()

	for action := range g.Actions {
		switch action.Type {
		case ActionStart:
			g.handleStart(action.Mode)
		case ActionSelectCard:
			g.handleSelectCard(action.CardID)
		case ActionDeselectCard:
			g.handleDeselectCard(action.CardID)
		case ActionSubmitHand:
			g.handleSubmitHand()
		case ActionAutoSubmit:
			g.handleAutoSubmit()
		case ActionUsePowerUp:
			g.handleUsePowerUp(action.PowerUpID)
		case ActionOpenLoot:
			g.handleOpenLoot()
		case ActionClaimLoot:
			g.handleClaimLoot(action.DiscardID)
		case ActionPause:
			g.handlePause()
		case ActionResume:
			g.handleResume()
		case ActionContinue:
			g.handleContinue()
		case ActionContinueResolved:
			g.handleContinueResolved(action.Granted)
		case ActionReset:
			g.handleReset()
		case ActionTick:
			g.handleTick()
		case ActionShutdown:
			slog.Info("session shutting down", "tag", "game", "session", g.ID, "status", g.Status.String())
			g.cancelTicker()
			g.cancelAutoSubmit()
			return
		}
	}
}

// startTicker starts the 1s simulation ticker. Cancels any previous one.
func (g *Game) startTicker() {
	g.cancelTicker()
	g.tickerCancel = make(chan struct{})
	cancel := g.tickerCancel
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				select {
				case g.Actions <- Action{Type: ActionTick}:
				case <-g.Done:
					return
				}
			case <-cancel:
				return
			case <-g.Done:
				return
			}
		}
	}()
}

// cancelTicker stops the ticker goroutine. Safe if already nil.
func (g *Game) cancelTicker() {
	if g.tickerCancel != nil {
		close(g.tickerCancel)
		g.tickerCancel = nil
	}
}

// scheduleAutoSubmit arms the deferred submission fired when the fifth
// selected card settles. Any previously armed submission is cancelled.
func (g *Game) scheduleAutoSubmit() {
	g.cancelAutoSubmit()
	if g.Config.AutoSubmitDelayMS <= 0 {
		return
	}
	g.autoSubmitCancel = make(chan struct{})
	cancel := g.autoSubmitCancel
	delay := time.Duration(g.Config.AutoSubmitDelayMS) * time.Millisecond
	go func() {
		select {
		case <-time.After(delay):
			select {
			case g.Actions <- Action{Type: ActionAutoSubmit}:
			case <-g.Done:
			}
		case <-cancel:
		}
	}()
}

// cancelAutoSubmit disarms a pending deferred submission. Safe if already nil.
func (g *Game) cancelAutoSubmit() {
	if g.autoSubmitCancel != nil {
		close(g.autoSubmitCancel)
		g.autoSubmitCancel = nil
	}
}

func (g *Game) sendError(err error) {
	if err == nil {
		return
	}
	msg := map[string]string{
		"type":    "error",
		"message": err.Error(),
	}
	data, _ := json.Marshal(msg)
	wsutil.SafeSend(g.Send, data)
}

func (g *Game) emit(msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshaling event", "tag", "game", "session", g.ID, "err", err)
		return
	}
	wsutil.SafeSend(g.Send, data)
}

func (g *Game) broadcastState() {
	g.emit(g.BuildState())
}

func (g *Game) notifyHandScored(category string) {
	if g.Notify != nil {
		g.Notify.HandScored(category)
	}
}

func (g *Game) notifyCardPicked() {
	if g.Notify != nil {
		g.Notify.CardPicked()
	}
}
