package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"declutter/internal/application/commands"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [session-id]",
	Short: "Summarize the actions recorded for a session",
	Long: `Print the action counts and the 10 most recent moves of a session.

Without a session ID the most recent session is summarized.

Examples:
  declutter-cli summary
  declutter-cli summary 2f1c7a52-5d6e-4b8e-9a43-0d1f4c3b7e21`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sessionID string
		if len(args) == 1 {
			sessionID = args[0]
		}

		ledger, err := openLedger()
		if err != nil {
			return err
		}
		defer ledger.Close()

		result, err := commands.NewSummaryCommand(ledger, sessionID).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Print(result.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
