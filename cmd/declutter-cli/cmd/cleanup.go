package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"declutter/internal/adapters/metrics"
	"declutter/internal/application"
	"declutter/internal/application/commands"
)

var (
	cleanupSession   string
	cleanupNoSummary bool
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Move the files of the source directory into their destinations",
	Long: `Run one cleanup session over the top level of the source directory.

Subdirectories are never entered. A file that cannot be moved is reported
and left in place; the remaining files are still processed. The session
summary is printed when the run finishes.

Examples:
  declutter-cli cleanup
  declutter-cli cleanup --source ~/Downloads
  declutter-cli cleanup --no-summary`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		ledger, err := openLedger()
		if err != nil {
			return err
		}
		defer ledger.Close()

		sessionID := cleanupSession
		if sessionID == "" {
			sessionID = application.NewSessionID()
		}

		recorder := metrics.NewRecorder()
		cleanup := commands.NewCleanupCommand(fs, ledger, cfg.SourceDirectory, cfg.RuleSet(), sessionID,
			commands.WithLogger(logger),
			commands.WithMetrics(recorder),
		)
		result, err := cleanup.Execute(ctx)
		if err != nil {
			return err
		}

		if cfg.MetricsTextfile != "" {
			if err := recorder.WriteTextfile(cfg.MetricsTextfile); err != nil {
				logger.Warn("metrics not written", "path", cfg.MetricsTextfile, "error", err)
			}
		}

		fmt.Println(result.Message)
		for _, f := range result.Failed {
			fmt.Printf("  failed: %v\n", f.Err)
		}
		if n := result.LedgerFailures(); n > 0 {
			fmt.Printf("  warning: %d moves could not be recorded\n", n)
		}

		if cleanupNoSummary {
			return nil
		}
		summary, err := commands.NewSummaryCommand(ledger, result.SessionID).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(summary.Text)
		return nil
	},
}

func init() {
	cleanupCmd.Flags().StringVar(&cleanupSession, "session", "", "session ID to record moves under (default: new UUID)")
	cleanupCmd.Flags().BoolVar(&cleanupNoSummary, "no-summary", false, "do not print the session summary")
	rootCmd.AddCommand(cleanupCmd)
}
