package cli

import (
	"context"
	"encoding/json"
	"fmt"

	attuneapp "github.com/attune-cli/attune/internal/app"
	"github.com/attune-cli/attune/internal/cli/formatter"
	"github.com/attune-cli/attune/internal/contract"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/spf13/cobra"
)

func newNudgeCmd(app *App) *cobra.Command {
	var (
		userID        string
		profileID     string
		triggers      []string
		timeOfDay     string
		energy        string
		complexity    string
		interruptions int
		focusMin      int
		dryRun        bool
		asJSON        bool
		interactive   bool
	)

	cmd := &cobra.Command{
		Use:   "nudge",
		Short: "Ask for a coaching nudge for the current moment",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := domain.UserContext{
				UserID:         userID,
				TimeOfDay:      domain.TimeOfDay(timeOfDay),
				EnergyLevel:    domain.EnergyLevel(energy),
				TaskComplexity: domain.TaskComplexity(complexity),
				TriggersActive: triggers,
			}
			if cmd.Flags().Changed("interruptions") {
				uc.InterruptionCount = &interruptions
			}
			if cmd.Flags().Changed("focus-min") {
				uc.FocusDurationMin = &focusMin
			}

			req := attuneapp.NewNudgeRequest(userID, profileID, uc)
			req.DryRun = dryRun

			ctx := context.Background()
			resp, err := app.Nudges.Recommend(ctx, req)
			if err != nil {
				return err
			}
			env := contract.ToEnvelope(resp)

			if asJSON {
				out, err := json.MarshalIndent(env, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding response: %w", err)
				}
				cmd.Println(string(out))
				return nil
			}

			if interactive {
				if !app.IsTTY {
					return fmt.Errorf("interactive mode needs a terminal")
				}
				return runNudgeView(app, env)
			}

			cmd.Print(formatter.FormatNudge(env))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "default", "User the nudge is for")
	cmd.Flags().StringVar(&profileID, "profile", "", "Personality type (e.g. INTJ)")
	cmd.Flags().StringArrayVar(&triggers, "trigger", nil, "Active situational trigger (repeatable)")
	cmd.Flags().StringVar(&timeOfDay, "time-of-day", "", "morning, afternoon, or evening")
	cmd.Flags().StringVar(&energy, "energy", "", "low, medium, or high")
	cmd.Flags().StringVar(&complexity, "complexity", "", "Current task complexity: low, medium, or high")
	cmd.Flags().IntVar(&interruptions, "interruptions", 0, "Interruptions in the last hour")
	cmd.Flags().IntVar(&focusMin, "focus-min", 0, "Minutes of unbroken focus so far")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute the nudge without recording it")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON envelope")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Review the nudge interactively")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}
