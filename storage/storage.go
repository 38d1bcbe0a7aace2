package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultTopLimit = 20
	maxTopLimit     = 100
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS game_results (
	id UUID PRIMARY KEY,
	played_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	mode TEXT NOT NULL,
	score INT NOT NULL,
	hands_played INT NOT NULL,
	ssc_level INT NOT NULL,
	time_elapsed_sec INT NOT NULL,
	best_hand TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_game_results_mode_score ON game_results(mode, score DESC);
CREATE TABLE IF NOT EXISTS hand_events (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	session_id UUID NOT NULL,
	played_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	mode TEXT NOT NULL,
	ssc_level INT NOT NULL,
	category TEXT NOT NULL,
	base_points INT NOT NULL,
	points INT NOT NULL,
	multiplier REAL NOT NULL,
	streak INT NOT NULL,
	bonus_round BOOLEAN NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_hand_events_category ON hand_events(category);
CREATE INDEX IF NOT EXISTS idx_hand_events_session ON hand_events(session_id);
`

// Store persists and retrieves game results.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to Postgres and ensures the result tables exist.
// If databaseURL is empty, NewStore returns (nil, nil) and no persistence occurs.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, nil
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, err
	}
	slog.Info("connected to Postgres", "tag", "storage")
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// Record is one finished game, as stored and as returned by the leaderboard API.
type Record struct {
	ID             string `json:"id"`
	PlayedAt       string `json:"played_at"` // ISO8601, set on read
	Mode           string `json:"mode"`
	Score          int    `json:"score"`
	HandsPlayed    int    `json:"hands_played"`
	SSCLevel       int    `json:"ssc_level"` // 0 outside SSC
	TimeElapsedSec int    `json:"time_elapsed_sec"`
	BestHand       string `json:"best_hand"` // "" when no hand was scored
}

// HandEvent is one scored hand, kept for balance telemetry.
type HandEvent struct {
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

// CategoryStat aggregates hand events per category for the stats API.
type CategoryStat struct {
	Category  string  `json:"category"`
	Hands     int     `json:"hands"`
	AvgPoints float64 `json:"avg_points"`
	MaxPoints int     `json:"max_points"`
}

// NewRecord shapes a finished game into a Record, minting the row ID.
// Counters from a corrupted session are clamped to zero rather than rejected.
func NewRecord(mode string, score, handsPlayed, sscLevel, timeElapsedSec int, bestHand string) Record {
	return Record{
		ID:             uuid.NewString(),
		Mode:           mode,
		Score:          clampNonNegative(score),
		HandsPlayed:    clampNonNegative(handsPlayed),
		SSCLevel:       clampNonNegative(sscLevel),
		TimeElapsedSec: clampNonNegative(timeElapsedSec),
		BestHand:       bestHand,
	}
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// clampTopLimit bounds a caller-supplied leaderboard size.
func clampTopLimit(limit int) int {
	if limit <= 0 {
		return defaultTopLimit
	}
	if limit > maxTopLimit {
		return maxTopLimit
	}
	return limit
}

// InsertResult records a finished game.
func (s *Store) InsertResult(ctx context.Context, rec Record) error {
	if s == nil || s.pool == nil {
		return nil
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO game_results (id, mode, score, hands_played, ssc_level, time_elapsed_sec, best_hand)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.Mode, rec.Score, rec.HandsPlayed, rec.SSCLevel, rec.TimeElapsedSec, rec.BestHand)
	return err
}

// InsertHandEvent records one scored hand for telemetry.
func (s *Store) InsertHandEvent(ctx context.Context, ev HandEvent) error {
	if s == nil || s.pool == nil {
		return nil
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO hand_events (session_id, mode, ssc_level, category, base_points, points, multiplier, streak, bonus_round)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		ev.SessionID, ev.Mode, ev.Level, ev.Category, ev.BasePoints, ev.Points, ev.Multiplier, ev.Streak, ev.BonusRound)
	return err
}

// ListTop returns the best results for a mode ordered by score DESC.
func (s *Store) ListTop(ctx context.Context, mode string, limit int) ([]Record, error) {
	if s == nil || s.pool == nil {
		return []Record{}, nil
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, played_at, mode, score, hands_played, ssc_level, time_elapsed_sec, best_hand
		FROM game_results
		WHERE mode = $1
		ORDER BY score DESC, played_at ASC
		LIMIT $2`,
		mode, clampTopLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Record{}
	for rows.Next() {
		var r Record
		var playedAt time.Time
		if err := rows.Scan(&r.ID, &playedAt, &r.Mode, &r.Score, &r.HandsPlayed, &r.SSCLevel, &r.TimeElapsedSec, &r.BestHand); err != nil {
			return nil, err
		}
		r.PlayedAt = playedAt.UTC().Format(time.RFC3339)
		out = append(out, r)
	}
	return out, rows.Err()
}

// BestScore returns the highest recorded score for a mode, 0 when none.
func (s *Store) BestScore(ctx context.Context, mode string) (int, error) {
	if s == nil || s.pool == nil {
		return 0, nil
	}
	var best int
	err := s.pool.QueryRow(ctx, `SELECT COALESCE(MAX(score), 0) FROM game_results WHERE mode = $1`, mode).Scan(&best)
	if err != nil {
		return 0, err
	}
	return best, nil
}

// CategoryStats aggregates hand events per category, most played first.
func (s *Store) CategoryStats(ctx context.Context) ([]CategoryStat, error) {
	if s == nil || s.pool == nil {
		return []CategoryStat{}, nil
	}
	rows, err := s.pool.Query(ctx, `
		SELECT category, COUNT(*), AVG(points)::float, MAX(points)
		FROM hand_events
		GROUP BY category
		ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []CategoryStat{}
	for rows.Next() {
		var cs CategoryStat
		if err := rows.Scan(&cs.Category, &cs.Hands, &cs.AvgPoints, &cs.MaxPoints); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}
