package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"declutter/internal/application"
	"declutter/internal/application/commands"
	"declutter/internal/domain"
	"declutter/internal/ports"
)

// Workspace is everything the tools need to run commands
type Workspace struct {
	FS        ports.FileSystem
	Ledger    ports.ActivityLedger
	SourceDir string
	Rules     domain.RuleSet
	Options   []commands.Option

	// AfterCleanup, when set, runs after every successful cleanup
	AfterCleanup func(*commands.CleanupResult)
}

// RegisterTools adds the cleanup, preview, summary and sessions tools to the MCP server.
func RegisterTools(s *server.MCPServer, ws Workspace) {
	s.AddTool(cleanupTool(), cleanupHandler(ws))
	s.AddTool(previewTool(), previewHandler(ws))
	s.AddTool(summaryTool(), summaryHandler(ws))
	s.AddTool(sessionsTool(), sessionsHandler(ws))
}

// --- cleanup ---

func cleanupTool() mcp.Tool {
	return mcp.NewTool("cleanup",
		mcp.WithDescription("Sort the top-level files of the source directory into Documents, Pictures, Videos, or the archive. Every move is recorded under a session ID that is returned."),
		mcp.WithString("session_id",
			mcp.Description("Session ID to record moves under. Omit to start a new session."),
		),
	)
}

func cleanupHandler(ws Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sessionID := req.GetString("session_id", "")
		if sessionID == "" {
			sessionID = application.NewSessionID()
		}

		cmd := commands.NewCleanupCommand(ws.FS, ws.Ledger, ws.SourceDir, ws.Rules, sessionID, ws.Options...)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if ws.AfterCleanup != nil {
			ws.AfterCleanup(result)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Session %s\n%s\n", result.SessionID, result.Message)
		for _, m := range result.Moved {
			fmt.Fprintf(&sb, "moved  %s -> %s\n", m.Source, m.Destination)
		}
		for _, f := range result.Failed {
			fmt.Fprintf(&sb, "failed %s: %v\n", f.Path, f.Err)
		}
		if n := result.LedgerFailures(); n > 0 {
			fmt.Fprintf(&sb, "warning: %d moves could not be recorded\n", n)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- preview ---

func previewTool() mcp.Tool {
	return mcp.NewTool("preview",
		mcp.WithDescription("Show where each file of the source directory would go, without moving anything."),
	)
}

func previewHandler(ws Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewPreviewCommand(ws.FS, ws.SourceDir, ws.Rules, ws.Options...)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')
		for _, p := range result.Planned {
			if p.Decision.Skip() {
				fmt.Fprintf(&sb, "keep   %s (%s)\n", p.Path, p.Decision.Reason)
				continue
			}
			fmt.Fprintf(&sb, "%-6s %s -> %s\n", p.Decision.Category, p.Path, p.Destination)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- summary ---

func summaryTool() mcp.Tool {
	return mcp.NewTool("summary",
		mcp.WithDescription("Summarize the actions recorded for a session: counts per action and the 10 most recent moves."),
		mcp.WithString("session_id",
			mcp.Description("Session ID to summarize. Omit for the most recent session."),
		),
	)
}

func summaryHandler(ws Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewSummaryCommand(ws.Ledger, req.GetString("session_id", "")).Execute(ctx)
		if errors.Is(err, application.ErrNoSession) {
			return mcp.NewToolResultText("No sessions recorded yet."), nil
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Text), nil
	}
}

// --- sessions ---

func sessionsTool() mcp.Tool {
	return mcp.NewTool("sessions",
		mcp.WithDescription("List recorded sessions, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of sessions to list (default 10)"),
		),
	)
}

func sessionsHandler(ws Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewSessionsCommand(ws.Ledger, req.GetInt("limit", 10)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(result.Sessions, formatSession)
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatSession(s domain.SessionInfo) string {
	return fmt.Sprintf("%s  %s  %d actions", s.ID, s.LastActivity.Format(commands.TimestampLayout), s.Entries)
}
