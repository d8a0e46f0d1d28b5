package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"declutter/internal/application/commands"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show where each file would go without moving anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		preview := commands.NewPreviewCommand(fs, cfg.SourceDirectory, cfg.RuleSet(), commands.WithLogger(logger))
		result, err := preview.Execute(context.Background())
		if err != nil {
			return err
		}

		for _, p := range result.Planned {
			if p.Decision.Skip() {
				fmt.Printf("%-10s %s (%s)\n", "keep", p.Path, p.Decision.Reason)
				continue
			}
			fmt.Printf("%-10s %s -> %s\n", p.Decision.Category, p.Path, p.Destination)
		}
		for _, f := range result.Failed {
			fmt.Printf("%-10s %s: %v\n", "error", f.Path, f.Err)
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
