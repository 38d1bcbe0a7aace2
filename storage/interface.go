package storage

import "context"

// ScoreStore abstracts persistence for finished games and hand telemetry.
// Implementations can be swapped for testing (mocks) or different backends
// (e.g. read replicas).
type ScoreStore interface {
	// Read
	ListTop(ctx context.Context, mode string, limit int) ([]Record, error)
	BestScore(ctx context.Context, mode string) (int, error)
	CategoryStats(ctx context.Context) ([]CategoryStat, error)

	// Write
	InsertResult(ctx context.Context, rec Record) error
	InsertHandEvent(ctx context.Context, ev HandEvent) error

	// Lifecycle
	Close()
}

// Ensure *Store implements ScoreStore at compile time.
var _ ScoreStore = (*Store)(nil)
