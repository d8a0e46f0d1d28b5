package ports

import (
	"context"

	"declutter/internal/domain"
)

// ActivityLedger is the append-only record of moves, scoped by session
type ActivityLedger interface {
	// EnsureSchema creates the backing store if absent. Safe to call every run.
	EnsureSchema(ctx context.Context) error

	// Record appends one entry. The ledger assigns the timestamp.
	Record(ctx context.Context, sessionID, action, source, destination string) error

	// Summarize returns action counts and the most recent entries of a session
	Summarize(ctx context.Context, sessionID string) (domain.ActivitySummary, error)

	// Sessions lists the most recently active sessions, newest first
	Sessions(ctx context.Context, limit int) ([]domain.SessionInfo, error)

	Close() error
}
