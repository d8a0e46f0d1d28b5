package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"declutter/internal/application"
	"declutter/internal/domain"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(time.Second)
	return now
}

func newTestLedger(t *testing.T) (*Ledger, *stepClock) {
	t.Helper()
	sqldb, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())

	clock := &stepClock{t: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
	ledger := NewLedger(db, WithClock(clock))
	t.Cleanup(func() {
		_ = ledger.Close()
	})
	require.NoError(t, ledger.EnsureSchema(context.Background()))
	return ledger, clock
}

func TestLedger_EnsureSchemaIsIdempotent(t *testing.T) {
	ledger, _ := newTestLedger(t)
	require.NoError(t, ledger.EnsureSchema(context.Background()))
	require.NoError(t, ledger.EnsureSchema(context.Background()))
}

func TestLedger_RecordAndSummarize(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newTestLedger(t)

	require.NoError(t, ledger.Record(ctx, "s1", "Moved to documents", "/d/a.pdf", "/d/Documents/a.pdf"))
	require.NoError(t, ledger.Record(ctx, "s1", "Moved to documents", "/d/b.txt", "/d/Documents/b.txt"))
	require.NoError(t, ledger.Record(ctx, "s1", "Moved to archives", "/d/old.jpg", "/arch/old.jpg"))
	require.NoError(t, ledger.Record(ctx, "s2", "Moved to images", "/d/c.png", "/d/Pictures/c.png"))

	summary, err := ledger.Summarize(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "s1", summary.SessionID)
	require.Equal(t, map[string]int{"Moved to documents": 2, "Moved to archives": 1}, summary.Counts)
	require.Len(t, summary.Recent, 3)
	require.Equal(t, "/d/old.jpg", summary.Recent[0].Source)
	require.Equal(t, "/d/a.pdf", summary.Recent[2].Source)
	require.Equal(t, time.Date(2026, 10, 14, 9, 0, 2, 0, time.UTC), summary.Recent[0].Timestamp.UTC())
}

func TestLedger_SummarizeUnknownSession(t *testing.T) {
	ledger, _ := newTestLedger(t)

	summary, err := ledger.Summarize(context.Background(), "nobody")
	require.NoError(t, err)
	require.True(t, summary.IsEmpty())
}

func TestLedger_RecentIsCapped(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newTestLedger(t)

	for i := 0; i < 15; i++ {
		require.NoError(t, ledger.Record(ctx, "s1", "Moved to images", fmt.Sprintf("/d/%02d.png", i), "/p"))
	}

	summary, err := ledger.Summarize(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 15, summary.Counts["Moved to images"])
	require.Len(t, summary.Recent, domain.RecentActionsLimit)
	require.Equal(t, "/d/14.png", summary.Recent[0].Source)
	require.Equal(t, "/d/05.png", summary.Recent[domain.RecentActionsLimit-1].Source)
}

func TestLedger_RecentTieBreaksOnInsertionOrder(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newTestLedger(t)
	frozen := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	ledger.clock = fixed(frozen)

	require.NoError(t, ledger.Record(ctx, "s1", "Moved to videos", "/first.mp4", "/v"))
	require.NoError(t, ledger.Record(ctx, "s1", "Moved to videos", "/second.mp4", "/v"))

	summary, err := ledger.Summarize(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "/second.mp4", summary.Recent[0].Source)
}

type fixed time.Time

func (f fixed) Now() time.Time { return time.Time(f) }

func TestLedger_Sessions(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newTestLedger(t)

	require.NoError(t, ledger.Record(ctx, "old", "Moved to images", "/a", "/b"))
	require.NoError(t, ledger.Record(ctx, "old", "Moved to images", "/c", "/d"))
	require.NoError(t, ledger.Record(ctx, "new", "Moved to videos", "/e", "/f"))

	sessions, err := ledger.Sessions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "new", sessions[0].ID)
	require.Equal(t, 1, sessions[0].Entries)
	require.Equal(t, "old", sessions[1].ID)
	require.Equal(t, 2, sessions[1].Entries)
	require.Equal(t, time.Date(2026, 10, 14, 9, 0, 1, 0, time.UTC), sessions[1].LastActivity.UTC())

	latest, err := ledger.Sessions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	require.Equal(t, "new", latest[0].ID)
}

func TestLedger_SessionsEmpty(t *testing.T) {
	ledger, _ := newTestLedger(t)

	sessions, err := ledger.Sessions(context.Background(), 5)
	require.NoError(t, err)
	require.Empty(t, sessions)
}

func TestLedger_RecordWithoutSchema(t *testing.T) {
	sqldb, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	ledger := NewLedger(bun.NewDB(sqldb, sqlitedialect.New()))
	t.Cleanup(func() { _ = ledger.Close() })

	err = ledger.Record(context.Background(), "s1", "Moved to images", "/a", "/b")
	require.Error(t, err)
	require.True(t, errors.Is(err, application.ErrPersistence))

	var perr *application.PersistenceError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "record", perr.Op)
}

func TestOpen_PersistsAcrossConnections(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "activity.db")

	ledger, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, ledger.EnsureSchema(ctx))
	require.NoError(t, ledger.Record(ctx, "s1", "Moved to documents", "/a.pdf", "/D/a.pdf"))
	require.NoError(t, ledger.Close())

	reopened, err := Open(dbPath)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.EnsureSchema(ctx))

	summary, err := reopened.Summarize(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 1, summary.Counts["Moved to documents"])
}
