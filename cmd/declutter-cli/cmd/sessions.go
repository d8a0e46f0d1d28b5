package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"declutter/internal/application/commands"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := openLedger()
		if err != nil {
			return err
		}
		defer ledger.Close()

		result, err := commands.NewSessionsCommand(ledger, sessionsLimit).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(result.Sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}
		for _, s := range result.Sessions {
			fmt.Printf("%s  %s  %d actions\n", s.ID, s.LastActivity.Format(commands.TimestampLayout), s.Entries)
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", commands.DefaultSessionsLimit, "maximum number of sessions to list")
	rootCmd.AddCommand(sessionsCmd)
}
