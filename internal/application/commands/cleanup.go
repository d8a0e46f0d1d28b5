package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"declutter/internal/application"
	"declutter/internal/domain"
	"declutter/internal/ports"
)

// MoveOutcome describes one file that was moved
type MoveOutcome struct {
	Source      string
	Destination string
	Category    domain.Category
	Recorded    bool // false when the ledger write failed
}

// SkipOutcome describes one file that was left in place on purpose
type SkipOutcome struct {
	Path   string
	Reason domain.Reason
}

// FailureOutcome describes one file that could not be processed
type FailureOutcome struct {
	Path string
	Err  error
}

// CleanupResult contains the result of one cleanup run
type CleanupResult struct {
	SessionID string
	Moved     []MoveOutcome
	Skipped   []SkipOutcome
	Failed    []FailureOutcome
	Ignored   int // non-regular entries such as subdirectories
	Message   string
}

// LedgerFailures counts moves whose ledger entry could not be written
func (r *CleanupResult) LedgerFailures() int {
	n := 0
	for _, m := range r.Moved {
		if !m.Recorded {
			n++
		}
	}
	return n
}

// Option configures the ambient collaborators of a command
type Option func(*deps)

type deps struct {
	logger  *slog.Logger
	metrics ports.Metrics
	clock   application.Clock
}

// WithLogger sets the logger used for per-file events
func WithLogger(logger *slog.Logger) Option {
	return func(d *deps) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink for the run
func WithMetrics(m ports.Metrics) Option {
	return func(d *deps) {
		if m != nil {
			d.metrics = m
		}
	}
}

// WithClock sets the clock used to age files
func WithClock(c application.Clock) Option {
	return func(d *deps) {
		if c != nil {
			d.clock = c
		}
	}
}

func newDeps(opts []Option) deps {
	d := deps{
		logger:  slog.New(slog.DiscardHandler),
		metrics: ports.NopMetrics{},
		clock:   application.SystemClock{},
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// CleanupCommand moves the files of one directory into their category
// destinations and records every move in the activity ledger
type CleanupCommand struct {
	fs        ports.FileSystem
	ledger    ports.ActivityLedger
	deps      deps
	SourceDir string
	Rules     domain.RuleSet
	SessionID string
}

// NewCleanupCommand creates a new CleanupCommand
func NewCleanupCommand(fs ports.FileSystem, ledger ports.ActivityLedger, sourceDir string, rules domain.RuleSet, sessionID string, opts ...Option) *CleanupCommand {
	return &CleanupCommand{
		fs:        fs,
		ledger:    ledger,
		deps:      newDeps(opts),
		SourceDir: sourceDir,
		Rules:     rules,
		SessionID: sessionID,
	}
}

// Validate checks if the cleanup can start
func (c *CleanupCommand) Validate() error {
	if err := application.ValidateRequired("source_directory", c.SourceDir); err != nil {
		return err
	}
	if err := application.ValidateRequired("session_id", c.SessionID); err != nil {
		return err
	}
	if err := c.Rules.Check(); err != nil {
		return &application.ConfigurationError{Field: "rules", Message: err.Error()}
	}
	return nil
}

// Execute runs the cleanup. Per-file failures are logged and collected in
// the result; only session-level failures are returned as errors.
func (c *CleanupCommand) Execute(ctx context.Context) (*CleanupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log := c.deps.logger.With(slog.String("session_id", c.SessionID))

	if err := c.ledger.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	if err := requireSourceDir(c.fs, c.SourceDir); err != nil {
		return nil, err
	}

	for _, dir := range c.Rules.DestinationDirs() {
		if err := c.fs.EnsureDirectory(dir); err != nil {
			return nil, fmt.Errorf("failed to prepare destination %s: %w", dir, err)
		}
	}

	entries, err := c.fs.ListChildren(c.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list source directory: %w", err)
	}

	log.Info("cleanup started", slog.String("source", c.SourceDir), slog.Int("entries", len(entries)))

	result := &CleanupResult{SessionID: c.SessionID}
	now := c.deps.clock.Now()

	for _, entry := range entries {
		if !entry.Regular {
			result.Ignored++
			continue
		}
		c.process(ctx, log, entry, now, result)
	}

	c.deps.metrics.RunFinished()
	result.Message = fmt.Sprintf("Moved %d files, skipped %d, failed %d", len(result.Moved), len(result.Skipped), len(result.Failed))
	log.Info("cleanup finished",
		slog.Int("moved", len(result.Moved)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("failed", len(result.Failed)),
		slog.Int("ledger_failures", result.LedgerFailures()),
	)
	return result, nil
}

func (c *CleanupCommand) process(ctx context.Context, log *slog.Logger, entry ports.Entry, now time.Time, result *CleanupResult) {
	record, err := fileRecord(c.fs, entry)
	if err != nil {
		log.Warn("cannot stat file", slog.String("path", entry.Path), slog.Any("error", err))
		result.Failed = append(result.Failed, FailureOutcome{Path: entry.Path, Err: err})
		return
	}

	decision := domain.Classify(record, c.Rules, now)
	if decision.Skip() {
		log.Debug("file skipped", slog.String("path", record.Path), slog.String("reason", string(decision.Reason)))
		c.deps.metrics.FileSkipped(decision.Reason)
		result.Skipped = append(result.Skipped, SkipOutcome{Path: record.Path, Reason: decision.Reason})
		return
	}

	destDir, _ := c.Rules.Destination(decision.Category)
	finalPath, err := c.fs.Move(record.Path, destDir)
	if err != nil {
		moveErr := &application.MoveError{Source: record.Path, Destination: destDir, Err: err}
		log.Warn("move failed", slog.String("path", record.Path), slog.Any("error", moveErr))
		c.deps.metrics.MoveFailed(decision.Category)
		result.Failed = append(result.Failed, FailureOutcome{Path: record.Path, Err: moveErr})
		return
	}
	c.deps.metrics.FileMoved(decision.Category)
	log.Info("file moved",
		slog.String("source", record.Path),
		slog.String("destination", finalPath),
		slog.String("category", string(decision.Category)),
	)

	outcome := MoveOutcome{Source: record.Path, Destination: finalPath, Category: decision.Category, Recorded: true}
	if err := c.ledger.Record(ctx, c.SessionID, domain.ActionLabel(decision.Category), record.Path, finalPath); err != nil {
		log.Error("ledger write failed", slog.String("path", record.Path), slog.Any("error", err))
		c.deps.metrics.LedgerWriteFailed()
		outcome.Recorded = false
	}
	result.Moved = append(result.Moved, outcome)
}

// requireSourceDir fails with ErrMissingSourceDirectory when dir is absent
func requireSourceDir(fs ports.FileSystem, dir string) error {
	exists, err := fs.Exists(dir)
	if err != nil {
		return fmt.Errorf("failed to check source directory: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", application.ErrMissingSourceDirectory, dir)
	}
	return nil
}

func fileRecord(fs ports.FileSystem, entry ports.Entry) (domain.FileRecord, error) {
	atime, err := fs.LastAccessTime(entry.Path)
	if err != nil {
		return domain.FileRecord{}, err
	}
	return domain.NewFileRecord(entry.Path, atime), nil
}
