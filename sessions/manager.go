package sessions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/config"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/storage"
)

// persistTimeout bounds each fire-and-forget storage write.
const persistTimeout = 5 * time.Second

// Manager creates one game session per connection and tracks it until the
// connection goes away. Finished games are persisted off the session loop.
type Manager struct {
	config   *config.Config
	powerUps game.PowerUpProvider
	store    storage.ScoreStore
	gate     game.RewardGate

	mu       sync.Mutex
	sessions map[string]*game.Game
}

// NewManager creates a Manager. store may be nil (no persistence) and gate
// may be nil (continues are never granted).
func NewManager(cfg *config.Config, pups game.PowerUpProvider, store storage.ScoreStore, gate game.RewardGate) *Manager {
	return &Manager{
		config:   cfg,
		powerUps: pups,
		store:    store,
		gate:     gate,
		sessions: make(map[string]*game.Game),
	}
}

// Create mints a new session, wires its collaborators and starts the loop.
func (m *Manager) Create(send chan []byte, notify game.Notifier) *game.Game {
	id := uuid.NewString()
	g := game.NewGame(id, m.config, m.powerUps)
	g.Send = send
	g.Notify = notify
	g.Gate = m.gate
	g.Telemetry = m
	g.OnGameEnd = func(mode string, score, handsPlayed, sscLevel, timeElapsedSec int, bestHand string) {
		m.persist(storage.NewRecord(mode, score, handsPlayed, sscLevel, timeElapsedSec, bestHand))
	}

	m.mu.Lock()
	m.sessions[id] = g
	m.mu.Unlock()

	slog.Info("session created", "tag", "sessions", "session", id)
	go g.Run()
	return g
}

// Close stops a session's loop and forgets it.
func (m *Manager) Close(g *game.Game) {
	if g == nil {
		return
	}
	m.mu.Lock()
	delete(m.sessions, g.ID)
	m.mu.Unlock()

	select {
	case g.Actions <- game.Action{Type: game.ActionShutdown}:
	case <-g.Done:
	}
	slog.Info("session closed", "tag", "sessions", "session", g.ID)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// persist writes a finished game record without blocking the session loop.
func (m *Manager) persist(rec storage.Record) {
	if m.store == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := m.store.InsertResult(ctx, rec); err != nil {
			slog.Error("persisting game result", "tag", "sessions", "record", rec.ID, "err", err)
			return
		}
		slog.Info("game result persisted", "tag", "sessions", "mode", rec.Mode, "score", rec.Score)
	}()
}

// HandPlayed implements game.TelemetrySink. Writes happen on their own
// goroutine so a slow database never stalls gameplay.
func (m *Manager) HandPlayed(rec game.HandRecord) {
	if m.store == nil {
		return
	}
	ev := storage.HandEvent{
		SessionID:  rec.SessionID,
		Mode:       rec.Mode,
		Level:      rec.Level,
		Category:   rec.Category,
		BasePoints: rec.BasePoints,
		Points:     rec.Points,
		Multiplier: rec.Multiplier,
		Streak:     rec.Streak,
		BonusRound: rec.BonusRound,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := m.store.InsertHandEvent(ctx, ev); err != nil {
			slog.Error("persisting hand event", "tag", "sessions", "session", ev.SessionID, "err", err)
		}
	}()
}
