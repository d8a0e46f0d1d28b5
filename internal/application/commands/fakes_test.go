package commands

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"time"

	"declutter/internal/domain"
	"declutter/internal/ports"
)

var errPermission = errors.New("permission denied")

// memFS is an in-memory ports.FileSystem
type memFS struct {
	dirs      map[string]bool
	files     map[string]time.Time // path -> last access
	order     []string             // enumeration order of source children
	moveErr   map[string]error     // path -> error returned by Move
	statErr   map[string]error
	ensureErr error
	moves     int
}

func newMemFS(dirs ...string) *memFS {
	fs := &memFS{
		dirs:    map[string]bool{},
		files:   map[string]time.Time{},
		moveErr: map[string]error{},
		statErr: map[string]error{},
	}
	for _, d := range dirs {
		fs.dirs[d] = true
	}
	return fs
}

func (f *memFS) addFile(path string, atime time.Time) {
	f.files[path] = atime
	f.order = append(f.order, path)
}

func (f *memFS) addDir(path string) {
	f.dirs[path] = true
	f.order = append(f.order, path)
}

func (f *memFS) Exists(path string) (bool, error) {
	_, isFile := f.files[path]
	return f.dirs[path] || isFile, nil
}

func (f *memFS) ListChildren(dir string) ([]ports.Entry, error) {
	var out []ports.Entry
	for _, p := range f.order {
		if filepath.Dir(p) != dir {
			continue
		}
		_, isFile := f.files[p]
		if !isFile && !f.dirs[p] {
			continue // moved away
		}
		out = append(out, ports.Entry{Name: filepath.Base(p), Path: p, Regular: isFile})
	}
	return out, nil
}

func (f *memFS) LastAccessTime(path string) (time.Time, error) {
	if err := f.statErr[path]; err != nil {
		return time.Time{}, err
	}
	return f.files[path], nil
}

func (f *memFS) Move(src, destDir string) (string, error) {
	if err := f.moveErr[src]; err != nil {
		return "", err
	}
	if !f.dirs[destDir] {
		return "", errors.New("destination directory missing")
	}
	final := filepath.Join(destDir, filepath.Base(src))
	atime := f.files[src]
	delete(f.files, src)
	f.files[final] = atime
	f.moves++
	return final, nil
}

func (f *memFS) EnsureDirectory(path string) error {
	if f.ensureErr != nil {
		return f.ensureErr
	}
	f.dirs[path] = true
	return nil
}

func (f *memFS) has(path string) bool {
	_, ok := f.files[path]
	return ok
}

// memLedger is an in-memory ports.ActivityLedger
type memLedger struct {
	entries   []domain.ActivityEntry
	schemaErr error
	recordErr error
	schemaOK  bool
	closed    bool
	now       time.Time
}

func (l *memLedger) EnsureSchema(context.Context) error {
	if l.schemaErr != nil {
		return l.schemaErr
	}
	l.schemaOK = true
	return nil
}

func (l *memLedger) Record(_ context.Context, sessionID, action, source, destination string) error {
	if l.recordErr != nil {
		return l.recordErr
	}
	l.entries = append(l.entries, domain.ActivityEntry{
		ID:          int64(len(l.entries) + 1),
		SessionID:   sessionID,
		Timestamp:   l.now,
		Action:      action,
		Source:      source,
		Destination: destination,
	})
	return nil
}

func (l *memLedger) Summarize(_ context.Context, sessionID string) (domain.ActivitySummary, error) {
	s := domain.ActivitySummary{SessionID: sessionID, Counts: map[string]int{}}
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if e.SessionID != sessionID {
			continue
		}
		s.Counts[e.Action]++
		if len(s.Recent) < domain.RecentActionsLimit {
			s.Recent = append(s.Recent, e)
		}
	}
	return s, nil
}

func (l *memLedger) Sessions(_ context.Context, limit int) ([]domain.SessionInfo, error) {
	byID := map[string]*domain.SessionInfo{}
	last := map[string]int{}
	for i, e := range l.entries {
		info, ok := byID[e.SessionID]
		if !ok {
			info = &domain.SessionInfo{ID: e.SessionID}
			byID[e.SessionID] = info
		}
		info.Entries++
		info.LastActivity = e.Timestamp
		last[e.SessionID] = i
	}
	out := make([]domain.SessionInfo, 0, len(byID))
	for _, info := range byID {
		out = append(out, *info)
	}
	sort.Slice(out, func(i, j int) bool { return last[out[i].ID] > last[out[j].ID] })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (l *memLedger) Close() error {
	l.closed = true
	return nil
}

func (l *memLedger) forSession(id string) []domain.ActivityEntry {
	var out []domain.ActivityEntry
	for _, e := range l.entries {
		if e.SessionID == id {
			out = append(out, e)
		}
	}
	return out
}

// countingMetrics records metric calls
type countingMetrics struct {
	moved, skipped, failed, ledger, runs int
}

func (m *countingMetrics) FileMoved(domain.Category)  { m.moved++ }
func (m *countingMetrics) FileSkipped(domain.Reason)  { m.skipped++ }
func (m *countingMetrics) MoveFailed(domain.Category) { m.failed++ }
func (m *countingMetrics) LedgerWriteFailed()         { m.ledger++ }
func (m *countingMetrics) RunFinished()               { m.runs++ }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
