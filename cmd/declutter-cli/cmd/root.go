package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"declutter/internal/adapters/filesystem"
	"declutter/internal/adapters/sqlite"
	"declutter/internal/config"
	"declutter/internal/ports"
)

var (
	configPath string
	sourceDir  string
	logLevel   string

	cfg    *config.Config
	fs     ports.FileSystem
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "declutter-cli",
	Short: "Sort a cluttered directory into Documents, Pictures, Videos and an archive",
	Long: `declutter-cli tidies the top level of a directory (usually the Desktop).

Files with an excluded extension stay where they are. Files that have not
been accessed within the retention period go to the archive. Everything
else is routed by extension. Every move is recorded in an activity ledger
under a session ID, and each session can be summarized afterwards.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Resolve(config.Path(configPath), sourceDir)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		cfg = loaded
		logger = config.SetupLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		fs = filesystem.New()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file (default $DECLUTTER_CONFIG or ~/.config/declutter/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&sourceDir, "source", "s", "", "directory to clean, overrides source_directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// openLedger opens the activity ledger configured for this run. Callers close it.
func openLedger() (*sqlite.Ledger, error) {
	return sqlite.Open(cfg.DatabasePath)
}
