package cli

import (
	"context"

	"github.com/attune-cli/attune/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how nudges have landed so far",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Insights.Report(context.Background())
			if err != nil {
				return err
			}
			cmd.Print(formatter.FormatInsights(report))
			return nil
		},
	}
}
