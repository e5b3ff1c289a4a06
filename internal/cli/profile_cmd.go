package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/attune-cli/attune/internal/cli/formatter"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect and customize personality profiles",
	}

	cmd.AddCommand(
		newProfileListCmd(app),
		newProfileShowCmd(app),
		newProfileSetCmd(app),
		newProfileInitCmd(app),
		newProfileResetCmd(app),
	)
	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known personality types",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Profiles.List(context.Background())
			if err != nil {
				return err
			}
			cmd.Print(formatter.FormatProfileList(views))
			return nil
		},
	}
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <type>",
		Short: "Show one personality profile in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Profiles.Get(context.Background(), strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			cmd.Print(formatter.FormatProfile(view))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var (
		learning      string
		communication string
		workPattern   string
		triggers      []string
		loadThreshold float64
		timingThresh  float64
		intervalMin   int
		dailyLimit    int
	)

	cmd := &cobra.Command{
		Use:   "set <type>",
		Short: "Store an override for a personality type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			typeID := strings.ToUpper(args[0])

			// Start from the current profile so unset flags keep their value.
			base := domain.PersonalityProfile{
				TypeID:                 typeID,
				LearningStyle:          domain.LearningSystematic,
				CommunicationStyle:     domain.CommDirect,
				WorkPattern:            domain.PatternDeepFocus,
				CognitiveLoadThreshold: 0.7,
				NudgeIntervalMin:       30,
				DailyNudgeLimit:        4,
			}
			if view, err := app.Profiles.Get(ctx, typeID); err == nil {
				base = *view.Profile
			}

			if cmd.Flags().Changed("learning") {
				base.LearningStyle = domain.LearningStyle(learning)
			}
			if cmd.Flags().Changed("communication") {
				base.CommunicationStyle = domain.CommunicationStyle(communication)
			}
			if cmd.Flags().Changed("work-pattern") {
				base.WorkPattern = domain.WorkPattern(workPattern)
			}
			if cmd.Flags().Changed("trigger") {
				base.MotivationTriggers = triggers
			}
			if cmd.Flags().Changed("load-threshold") {
				base.CognitiveLoadThreshold = loadThreshold
			}
			if cmd.Flags().Changed("timing-threshold") {
				base.TimingThreshold = timingThresh
			}
			if cmd.Flags().Changed("interval") {
				base.NudgeIntervalMin = intervalMin
			}
			if cmd.Flags().Changed("daily-limit") {
				base.DailyNudgeLimit = dailyLimit
			}
			base.UpdatedAt = time.Now().UTC()

			if err := app.Profiles.SetOverride(ctx, &base); err != nil {
				return err
			}
			cmd.Printf("Stored override for %s\n", formatter.Bold(typeID))
			return nil
		},
	}

	cmd.Flags().StringVar(&learning, "learning", "", "systematic or exploratory")
	cmd.Flags().StringVar(&communication, "communication", "", "direct, enthusiastic, supportive, or consultative")
	cmd.Flags().StringVar(&workPattern, "work-pattern", "", "deep_focus or flexible")
	cmd.Flags().StringArrayVar(&triggers, "trigger", nil, "Motivation trigger (repeatable)")
	cmd.Flags().Float64Var(&loadThreshold, "load-threshold", 0, "Cognitive load threshold in [0,1]")
	cmd.Flags().Float64Var(&timingThresh, "timing-threshold", 0, "Timing threshold in [0,1]")
	cmd.Flags().IntVar(&intervalMin, "interval", 0, "Minimum minutes between nudges")
	cmd.Flags().IntVar(&dailyLimit, "daily-limit", 0, "Maximum nudges per day")

	return cmd
}

func newProfileInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init <type>",
		Short: "Build a profile override through a guided wizard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsTTY {
				return fmt.Errorf("the profile wizard needs a terminal; use 'attune profile set' instead")
			}

			ctx := context.Background()
			typeID := strings.ToUpper(args[0])

			profile, err := runProfileWizard(ctx, app, typeID)
			if err != nil {
				return err
			}
			if profile == nil {
				cmd.Println(formatter.Dim("Aborted."))
				return nil
			}

			if err := app.Profiles.SetOverride(ctx, profile); err != nil {
				return err
			}
			cmd.Printf("Stored override for %s\n", formatter.Bold(typeID))
			return nil
		},
	}
}

func newProfileResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <type>",
		Short: "Drop the stored override and return to the built-in profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeID := strings.ToUpper(args[0])
			if err := app.Profiles.ResetOverride(context.Background(), typeID); err != nil {
				return err
			}
			cmd.Printf("Reset %s to the built-in profile\n", formatter.Bold(typeID))
			return nil
		},
	}
}
