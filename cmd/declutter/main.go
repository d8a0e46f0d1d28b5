package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"declutter/internal/adapters/filesystem"
	"declutter/internal/adapters/metrics"
	"declutter/internal/adapters/opener"
	"declutter/internal/adapters/sqlite"
	"declutter/internal/adapters/tui"
	"declutter/internal/application"
	"declutter/internal/application/commands"
	"declutter/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFlag := flag.String("config", "", "path to the config file")
	sourceFlag := flag.String("source", "", "directory to clean, overrides source_directory")
	flag.Parse()

	cfg, err := config.Resolve(config.Path(*configFlag), *sourceFlag)
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs go to a file
	logPath := filepath.Join(config.DataDir(), "declutter.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger := config.SetupLogger(cfg.LogLevel, cfg.LogFormat, logFile)

	ledger, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer ledger.Close()

	recorder := metrics.NewRecorder()
	cleanup := commands.NewCleanupCommand(filesystem.New(), ledger, cfg.SourceDirectory, cfg.RuleSet(), application.NewSessionID(),
		commands.WithLogger(logger),
		commands.WithMetrics(recorder),
	)

	app := tui.NewApp(cleanup, ledger, opener.New())
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if cfg.MetricsTextfile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Warn("metrics not written", "path", cfg.MetricsTextfile, "error", err)
		}
	}
	return app.Err()
}
