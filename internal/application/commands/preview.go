package commands

import (
	"context"
	"fmt"

	"declutter/internal/application"
	"declutter/internal/domain"
	"declutter/internal/ports"
)

// PlannedMove is the decision for one file in a dry run
type PlannedMove struct {
	Path        string
	Decision    domain.Decision
	Destination string // empty when the file would be skipped
}

// PreviewResult contains the plan for a directory
type PreviewResult struct {
	Planned []PlannedMove
	Failed  []FailureOutcome
	Message string
}

// Moves returns only the entries that would be moved
func (r *PreviewResult) Moves() []PlannedMove {
	var out []PlannedMove
	for _, p := range r.Planned {
		if !p.Decision.Skip() {
			out = append(out, p)
		}
	}
	return out
}

// PreviewCommand classifies every file of a directory without touching it
type PreviewCommand struct {
	fs        ports.FileSystem
	deps      deps
	SourceDir string
	Rules     domain.RuleSet
}

// NewPreviewCommand creates a new PreviewCommand
func NewPreviewCommand(fs ports.FileSystem, sourceDir string, rules domain.RuleSet, opts ...Option) *PreviewCommand {
	return &PreviewCommand{
		fs:        fs,
		deps:      newDeps(opts),
		SourceDir: sourceDir,
		Rules:     rules,
	}
}

// Validate checks if the preview can run
func (c *PreviewCommand) Validate() error {
	if err := application.ValidateRequired("source_directory", c.SourceDir); err != nil {
		return err
	}
	if err := c.Rules.Check(); err != nil {
		return &application.ConfigurationError{Field: "rules", Message: err.Error()}
	}
	return nil
}

// Execute runs the preview command
func (c *PreviewCommand) Execute(_ context.Context) (*PreviewResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := requireSourceDir(c.fs, c.SourceDir); err != nil {
		return nil, err
	}

	entries, err := c.fs.ListChildren(c.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list source directory: %w", err)
	}

	result := &PreviewResult{}
	now := c.deps.clock.Now()
	for _, entry := range entries {
		if !entry.Regular {
			continue
		}
		record, err := fileRecord(c.fs, entry)
		if err != nil {
			result.Failed = append(result.Failed, FailureOutcome{Path: entry.Path, Err: err})
			continue
		}
		decision := domain.Classify(record, c.Rules, now)
		planned := PlannedMove{Path: record.Path, Decision: decision}
		if !decision.Skip() {
			planned.Destination, _ = c.Rules.Destination(decision.Category)
		}
		result.Planned = append(result.Planned, planned)
	}

	result.Message = fmt.Sprintf("%d of %d files would be moved", len(result.Moves()), len(result.Planned))
	return result, nil
}
