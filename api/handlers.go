package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/config"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/game"
	"github.com/sjoves/poker-shootout-crazygames-v2-sub001/storage"
)

// SessionCounter reports how many sessions are live (for the health check).
type SessionCounter interface {
	Count() int
}

// Handler holds dependencies for API handlers.
type Handler struct {
	Config   *config.Config
	Store    storage.ScoreStore
	Sessions SessionCounter
}

// NewHandler creates a new API handler with the given dependencies.
func NewHandler(cfg *config.Config, store storage.ScoreStore, sessions SessionCounter) *Handler {
	return &Handler{
		Config:   cfg,
		Store:    store,
		Sessions: sessions,
	}
}

// CORS sets CORS headers on the response. Call before writing body.
func CORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return true
	}
	return false
}

// parseMode validates the mode query parameter, defaulting to classic.
func parseMode(r *http.Request) (string, bool) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		return game.ModeClassic.String(), true
	}
	if _, err := game.ParseMode(mode); err != nil {
		return "", false
	}
	return mode, true
}

// LeaderboardResponse is the JSON structure for /api/leaderboard.
type LeaderboardResponse struct {
	Mode    string           `json:"mode"`
	Entries []storage.Record `json:"entries"`
}

// Leaderboard returns the best results for one mode, highest score first.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	if CORS(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mode, ok := parseMode(r)
	if !ok {
		http.Error(w, "unknown mode", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries := []storage.Record{}
	if h.Store != nil {
		var err error
		entries, err = h.Store.ListTop(r.Context(), mode, limit)
		if err != nil {
			slog.Error("ListTop", "tag", "api", "err", err)
			http.Error(w, "failed to load leaderboard", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	resp := LeaderboardResponse{Mode: mode, Entries: entries}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("encode leaderboard response", "tag", "api", "err", err)
	}
}

// HighScoreResponse is the JSON structure for /api/highscore.
type HighScoreResponse struct {
	Mode      string `json:"mode"`
	BestScore int    `json:"best_score"`
}

// HighScore returns the highest recorded score for one mode.
func (h *Handler) HighScore(w http.ResponseWriter, r *http.Request) {
	if CORS(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mode, ok := parseMode(r)
	if !ok {
		http.Error(w, "unknown mode", http.StatusBadRequest)
		return
	}

	best := 0
	if h.Store != nil {
		var err error
		best, err = h.Store.BestScore(r.Context(), mode)
		if err != nil {
			slog.Error("BestScore", "tag", "api", "err", err)
			http.Error(w, "failed to load high score", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	resp := HighScoreResponse{Mode: mode, BestScore: best}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("encode highscore response", "tag", "api", "err", err)
	}
}

// StatsResponse is the JSON structure for /api/stats.
type StatsResponse struct {
	Categories []storage.CategoryStat `json:"categories"`
}

// Stats returns per-category hand telemetry, most played first.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if CORS(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats := []storage.CategoryStat{}
	if h.Store != nil {
		var err error
		stats, err = h.Store.CategoryStats(r.Context())
		if err != nil {
			slog.Error("CategoryStats", "tag", "api", "err", err)
			http.Error(w, "failed to load stats", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(StatsResponse{Categories: stats}); err != nil {
		slog.Error("encode stats response", "tag", "api", "err", err)
	}
}

// HealthResponse is the JSON structure for /api/health.
type HealthResponse struct {
	Status         string `json:"status"`
	ActiveSessions int    `json:"active_sessions"`
}

// Health reports liveness and the number of live sessions.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if CORS(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	active := 0
	if h.Sessions != nil {
		active = h.Sessions.Count()
	}

	w.Header().Set("Content-Type", "application/json")
	resp := HealthResponse{Status: "ok", ActiveSessions: active}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("encode health response", "tag", "api", "err", err)
	}
}
