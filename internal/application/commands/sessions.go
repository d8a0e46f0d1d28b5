package commands

import (
	"context"

	"declutter/internal/domain"
	"declutter/internal/ports"
)

// DefaultSessionsLimit is how many sessions are listed when no limit is given
const DefaultSessionsLimit = 10

// SessionsResult contains the listed sessions, newest first
type SessionsResult struct {
	Sessions []domain.SessionInfo
}

// SessionsCommand lists the sessions recorded in the ledger
type SessionsCommand struct {
	ledger ports.ActivityLedger
	Limit  int
}

// NewSessionsCommand creates a new SessionsCommand
func NewSessionsCommand(ledger ports.ActivityLedger, limit int) *SessionsCommand {
	return &SessionsCommand{
		ledger: ledger,
		Limit:  limit,
	}
}

// Execute runs the sessions command
func (c *SessionsCommand) Execute(ctx context.Context) (*SessionsResult, error) {
	if err := c.ledger.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	limit := c.Limit
	if limit <= 0 {
		limit = DefaultSessionsLimit
	}

	sessions, err := c.ledger.Sessions(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &SessionsResult{Sessions: sessions}, nil
}
