package cli

import (
	"context"
	"fmt"

	"github.com/attune-cli/attune/internal/cli/formatter"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/service"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var (
		userID  string
		nudgeID string
		reason  string
	)

	cmd := &cobra.Command{
		Use:       "log {accepted|dismissed|ignored}",
		Short:     "Record what you did with the last nudge",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"accepted", "dismissed", "ignored"},
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome := domain.Outcome(args[0])
			if !domain.ValidOutcomes[string(outcome)] {
				return fmt.Errorf("unknown outcome %q (accepted, dismissed, or ignored)", args[0])
			}

			in, err := app.Interactions.Log(context.Background(), service.LogOutcomeRequest{
				UserID:  userID,
				NudgeID: nudgeID,
				Outcome: outcome,
				Reason:  reason,
			})
			if err != nil {
				return err
			}

			cmd.Printf("%s %s %s\n",
				formatter.OutcomeBadge(in.Outcome),
				formatter.Dim("recorded for nudge"),
				formatter.Bold(formatter.TruncID(in.NudgeID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "default", "User the outcome belongs to")
	cmd.Flags().StringVar(&nudgeID, "nudge", "", "Nudge ID (defaults to the most recent nudge)")
	cmd.Flags().StringVar(&reason, "reason", "", "Optional dismissal reason")

	return cmd
}
