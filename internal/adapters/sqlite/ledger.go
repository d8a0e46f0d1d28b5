package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"declutter/internal/application"
	"declutter/internal/domain"
	"declutter/internal/ports"
)

// LogEntry is the activity_log row
type LogEntry struct {
	bun.BaseModel `bun:"table:activity_log,alias:al"`

	ID          int64     `bun:"id,pk,autoincrement"`
	SessionID   string    `bun:"session_id,notnull"`
	Timestamp   time.Time `bun:"timestamp,nullzero,notnull,default:current_timestamp"`
	Action      string    `bun:"action,notnull"`
	Source      string    `bun:"source,notnull"`
	Destination string    `bun:"destination,notnull"`
}

// Ledger implements ports.ActivityLedger on a SQLite database
type Ledger struct {
	db    *bun.DB
	clock application.Clock
}

// Ensure Ledger implements ActivityLedger
var _ ports.ActivityLedger = (*Ledger)(nil)

// LedgerOption configures a Ledger
type LedgerOption func(*Ledger)

// WithClock overrides the clock used to stamp new entries
func WithClock(c application.Clock) LedgerOption {
	return func(l *Ledger) {
		if c != nil {
			l.clock = c
		}
	}
}

// NewLedger wraps an already opened database
func NewLedger(db *bun.DB, opts ...LedgerOption) *Ledger {
	l := &Ledger{db: db, clock: application.SystemClock{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open opens (creating if needed) the ledger database at dbPath
func Open(dbPath string, opts ...LedgerOption) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, &application.PersistenceError{Op: "open", Err: fmt.Errorf("failed to create database directory: %w", err)}
	}

	sqldb, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, &application.PersistenceError{Op: "open", Err: err}
	}
	// A single writer avoids SQLITE_BUSY between our own connections
	sqldb.SetMaxOpenConns(1)

	return NewLedger(bun.NewDB(sqldb, sqlitedialect.New()), opts...), nil
}

// EnsureSchema creates the activity table and its session index
func (l *Ledger) EnsureSchema(ctx context.Context) error {
	if _, err := l.db.NewCreateTable().
		Model((*LogEntry)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return &application.PersistenceError{Op: "ensure schema", Err: err}
	}

	if _, err := l.db.NewCreateIndex().
		Model((*LogEntry)(nil)).
		Index("idx_activity_log_session").
		IfNotExists().
		Column("session_id").
		Exec(ctx); err != nil {
		return &application.PersistenceError{Op: "ensure schema", Err: err}
	}
	return nil
}

// Record appends one entry stamped with the ledger clock
func (l *Ledger) Record(ctx context.Context, sessionID, action, source, destination string) error {
	entry := &LogEntry{
		SessionID:   sessionID,
		Timestamp:   l.clock.Now().UTC().Truncate(time.Second),
		Action:      action,
		Source:      source,
		Destination: destination,
	}
	if _, err := l.db.NewInsert().Model(entry).Exec(ctx); err != nil {
		return &application.PersistenceError{Op: "record", Err: err}
	}
	return nil
}

// Summarize aggregates counts by action and lists the latest entries of a session
func (l *Ledger) Summarize(ctx context.Context, sessionID string) (domain.ActivitySummary, error) {
	summary := domain.ActivitySummary{
		SessionID: sessionID,
		Counts:    make(map[string]int),
	}

	type row struct {
		Action string `bun:"action"`
		Total  int    `bun:"total"`
	}
	var rows []row
	if err := l.db.NewSelect().
		Model((*LogEntry)(nil)).
		ColumnExpr("action").
		ColumnExpr("COUNT(*) AS total").
		Where("session_id = ?", sessionID).
		Group("action").
		Scan(ctx, &rows); err != nil {
		return summary, &application.PersistenceError{Op: "summarize", Err: err}
	}
	for _, r := range rows {
		summary.Counts[r.Action] = r.Total
	}

	var recent []LogEntry
	if err := l.db.NewSelect().
		Model(&recent).
		Where("session_id = ?", sessionID).
		OrderExpr("timestamp DESC, id DESC").
		Limit(domain.RecentActionsLimit).
		Scan(ctx); err != nil {
		return summary, &application.PersistenceError{Op: "summarize", Err: err}
	}
	for _, e := range recent {
		summary.Recent = append(summary.Recent, e.toDomain())
	}

	return summary, nil
}

// Sessions lists sessions ordered by their latest entry, newest first.
// A non-positive limit returns every session.
func (l *Ledger) Sessions(ctx context.Context, limit int) ([]domain.SessionInfo, error) {
	type row struct {
		SessionID string `bun:"session_id"`
		Entries   int    `bun:"entries"`
		LastID    int64  `bun:"last_id"`
	}
	query := l.db.NewSelect().
		Model((*LogEntry)(nil)).
		ColumnExpr("session_id").
		ColumnExpr("COUNT(*) AS entries").
		ColumnExpr("MAX(id) AS last_id").
		Group("session_id").
		OrderExpr("last_id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []row
	if err := query.Scan(ctx, &rows); err != nil {
		return nil, &application.PersistenceError{Op: "list sessions", Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.LastID)
	}
	var last []LogEntry
	if err := l.db.NewSelect().
		Model(&last).
		Where("id IN (?)", bun.In(ids)).
		Scan(ctx); err != nil {
		return nil, &application.PersistenceError{Op: "list sessions", Err: err}
	}
	lastByID := make(map[int64]time.Time, len(last))
	for _, e := range last {
		lastByID[e.ID] = e.Timestamp
	}

	sessions := make([]domain.SessionInfo, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, domain.SessionInfo{
			ID:           r.SessionID,
			Entries:      r.Entries,
			LastActivity: lastByID[r.LastID],
		})
	}
	return sessions, nil
}

// Close closes the database connection
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

func (e LogEntry) toDomain() domain.ActivityEntry {
	return domain.ActivityEntry{
		ID:          e.ID,
		SessionID:   e.SessionID,
		Timestamp:   e.Timestamp,
		Action:      e.Action,
		Source:      e.Source,
		Destination: e.Destination,
	}
}
