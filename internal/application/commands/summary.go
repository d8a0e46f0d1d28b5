package commands

import (
	"context"
	"fmt"
	"strings"

	"declutter/internal/application"
	"declutter/internal/domain"
	"declutter/internal/ports"
)

// TimestampLayout is how ledger timestamps are printed in reports
const TimestampLayout = "2006-01-02 15:04:05"

// SummaryResult contains the summary of one session
type SummaryResult struct {
	Summary domain.ActivitySummary
	Text    string
}

// SummaryCommand reads a session back from the ledger and renders it
type SummaryCommand struct {
	ledger    ports.ActivityLedger
	SessionID string // empty means the most recent session
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(ledger ports.ActivityLedger, sessionID string) *SummaryCommand {
	return &SummaryCommand{
		ledger:    ledger,
		SessionID: sessionID,
	}
}

// Execute runs the summary command
func (c *SummaryCommand) Execute(ctx context.Context) (*SummaryResult, error) {
	if err := c.ledger.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	sessionID := strings.TrimSpace(c.SessionID)
	if sessionID == "" {
		sessions, err := c.ledger.Sessions(ctx, 1)
		if err != nil {
			return nil, err
		}
		if len(sessions) == 0 {
			return nil, application.ErrNoSession
		}
		sessionID = sessions[0].ID
	}

	summary, err := c.ledger.Summarize(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &SummaryResult{
		Summary: summary,
		Text:    RenderSummary(summary),
	}, nil
}

// RenderSummary formats a session summary as plain text. Both sections are
// always present; an empty session says so instead of omitting them.
func RenderSummary(s domain.ActivitySummary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Summary of activities for session %s\n", s.SessionID)

	sb.WriteString("\nAction counts:\n")
	if len(s.Counts) == 0 {
		sb.WriteString("  No actions recorded in this session.\n")
	}
	for _, ac := range s.SortedCounts() {
		fmt.Fprintf(&sb, "  %s: %d %s\n", ac.Action, ac.Count, plural(ac.Count, "time", "times"))
	}

	sb.WriteString("\nRecent actions:\n")
	if len(s.Recent) == 0 {
		sb.WriteString("  No recent actions in this session.\n")
	}
	for _, e := range s.Recent {
		fmt.Fprintf(&sb, "  %s - %s: %s -> %s\n", e.Timestamp.Format(TimestampLayout), e.Action, e.Source, e.Destination)
	}

	return sb.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
