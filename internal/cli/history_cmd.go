package cli

import (
	"context"
	"time"

	"github.com/attune-cli/attune/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var (
		userID   string
		limit    int
		outcomes bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the recent nudge window for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now().UTC()

			if outcomes {
				interactions, err := app.Interactions.ListRecent(ctx, userID, limit)
				if err != nil {
					return err
				}
				cmd.Print(formatter.FormatInteractions(userID, interactions, now))
				return nil
			}

			records, err := app.Nudges.History(ctx, userID, limit)
			if err != nil {
				return err
			}
			cmd.Print(formatter.FormatHistory(userID, records, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "default", "User to show history for")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum entries to show")
	cmd.Flags().BoolVar(&outcomes, "outcomes", false, "Show interaction outcomes instead of nudges")

	return cmd
}
