package domain

import (
	"sort"
	"time"
)

// RecentActionsLimit is how many entries a session summary lists
const RecentActionsLimit = 10

// ActivityEntry is one row of the append-only activity ledger
type ActivityEntry struct {
	ID          int64
	SessionID   string
	Timestamp   time.Time
	Action      string
	Source      string
	Destination string
}

// ActionLabel returns the ledger action recorded for a move into c
func ActionLabel(c Category) string {
	return "Moved to " + string(c)
}

// ActionCount pairs an action label with its number of entries
type ActionCount struct {
	Action string
	Count  int
}

// ActivitySummary is the per-session view over the ledger
type ActivitySummary struct {
	SessionID string
	Counts    map[string]int
	Recent    []ActivityEntry
}

// IsEmpty reports whether the session recorded no activity
func (s ActivitySummary) IsEmpty() bool {
	return len(s.Counts) == 0 && len(s.Recent) == 0
}

// Total returns the sum of all action counts
func (s ActivitySummary) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// SortedCounts returns the counts ordered by action label
func (s ActivitySummary) SortedCounts() []ActionCount {
	out := make([]ActionCount, 0, len(s.Counts))
	for action, n := range s.Counts {
		out = append(out, ActionCount{Action: action, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Action < out[j].Action
	})
	return out
}

// SessionInfo describes one session found in the ledger
type SessionInfo struct {
	ID           string
	Entries      int
	LastActivity time.Time
}
