package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/attune-cli/attune/internal/cli/formatter"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// attuneHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func attuneHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runProfileWizard collects a full profile override interactively. Returns
// nil without error when the user aborts.
func runProfileWizard(ctx context.Context, app *App, typeID string) (*domain.PersonalityProfile, error) {
	// Seed defaults from the current profile when the type is known.
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

	learning := string(base.LearningStyle)
	communication := string(base.CommunicationStyle)
	workPattern := string(base.WorkPattern)
	triggersRaw := strings.Join(base.MotivationTriggers, ", ")
	loadThreshold := strconv.FormatFloat(base.CognitiveLoadThreshold, 'f', 2, 64)
	interval := strconv.Itoa(base.NudgeIntervalMin)
	dailyLimit := strconv.Itoa(base.DailyNudgeLimit)
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Learning style").
				Description("How should multi-step plans be presented?").
				Options(
					huh.NewOption("Systematic (numbered steps)", string(domain.LearningSystematic)),
					huh.NewOption("Exploratory (loose suggestions)", string(domain.LearningExploratory)),
				).
				Value(&learning),
			huh.NewSelect[string]().
				Title("Communication style").
				Options(
					huh.NewOption("Direct", string(domain.CommDirect)),
					huh.NewOption("Enthusiastic", string(domain.CommEnthusiastic)),
					huh.NewOption("Supportive", string(domain.CommSupportive)),
					huh.NewOption("Consultative", string(domain.CommConsultative)),
				).
				Value(&communication),
			huh.NewSelect[string]().
				Title("Work pattern").
				Description("Deep focus stretches durations, flexible shortens them.").
				Options(
					huh.NewOption("Deep focus", string(domain.PatternDeepFocus)),
					huh.NewOption("Flexible", string(domain.PatternFlexible)),
				).
				Value(&workPattern),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Motivation triggers").
				Description("Comma separated, e.g. mastery, autonomy").
				Value(&triggersRaw).
				Validate(func(s string) error {
					if len(parseTriggerList(s)) == 0 {
						return errors.New("at least one trigger is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Cognitive load threshold").
				Description("0 to 1; above this the nudge switches to recovery").
				Value(&loadThreshold).
				Validate(validateUnitInterval),
			huh.NewInput().
				Title("Minimum minutes between nudges").
				Value(&interval).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Daily nudge limit").
				Value(&dailyLimit).
				Validate(validateNonNegativeInt),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Store this override?").
				Value(&confirmed),
		),
	).WithTheme(attuneHuhTheme()).WithShowHelp(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}
	if !confirmed {
		return nil, nil
	}

	threshold, _ := strconv.ParseFloat(loadThreshold, 64)
	intervalMin, _ := strconv.Atoi(interval)
	limit, _ := strconv.Atoi(dailyLimit)

	now := time.Now().UTC()
	return &domain.PersonalityProfile{
		TypeID:                 typeID,
		LearningStyle:          domain.LearningStyle(learning),
		CommunicationStyle:     domain.CommunicationStyle(communication),
		WorkPattern:            domain.WorkPattern(workPattern),
		MotivationTriggers:     parseTriggerList(triggersRaw),
		CognitiveLoadThreshold: threshold,
		TimingThreshold:        base.TimingThreshold,
		NudgeIntervalMin:       intervalMin,
		DailyNudgeLimit:        limit,
		CreatedAt:              now,
		UpdatedAt:              now,
	}, nil
}

func parseTriggerList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func validateUnitInterval(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v < 0 || v > 1 {
		return errors.New("must be between 0 and 1")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}
