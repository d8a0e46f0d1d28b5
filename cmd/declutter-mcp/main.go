package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"declutter/internal/adapters/filesystem"
	mcpadapter "declutter/internal/adapters/mcp"
	"declutter/internal/adapters/metrics"
	"declutter/internal/adapters/sqlite"
	"declutter/internal/application/commands"
	"declutter/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	sourceFlag := flag.String("source", "", "directory to clean, overrides source_directory")
	flag.Parse()

	cfg, err := config.Resolve(config.Path(*configFlag), *sourceFlag)
	if err != nil {
		log.Fatalf("declutter-mcp: %v", err)
	}
	// stdout carries the protocol
	logger := config.SetupLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	ledger, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("declutter-mcp: %v", err)
	}
	defer ledger.Close()

	mcpServer := server.NewMCPServer(
		"declutter-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	recorder := metrics.NewRecorder()
	mcpadapter.RegisterTools(mcpServer, mcpadapter.Workspace{
		FS:        filesystem.New(),
		Ledger:    ledger,
		SourceDir: cfg.SourceDirectory,
		Rules:     cfg.RuleSet(),
		Options: []commands.Option{
			commands.WithLogger(logger),
			commands.WithMetrics(recorder),
		},
		AfterCleanup: func(*commands.CleanupResult) {
			if cfg.MetricsTextfile == "" {
				return
			}
			if err := recorder.WriteTextfile(cfg.MetricsTextfile); err != nil {
				logger.Warn("metrics not written", "path", cfg.MetricsTextfile, "error", err)
			}
		},
	})

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
