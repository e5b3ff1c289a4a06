package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/attune-cli/attune/internal/cli/formatter"
	"github.com/attune-cli/attune/internal/contract"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// outcomeLoggedMsg signals that the chosen outcome was persisted.
type outcomeLoggedMsg struct {
	outcome domain.Outcome
	err     error
}

// nudgeView shows a delivered nudge and records the user's verdict.
type nudgeView struct {
	app *App
	env contract.NudgeEnvelopeJSON

	decided bool
	outcome domain.Outcome
	err     error
	done    bool
}

func newNudgeView(app *App, env contract.NudgeEnvelopeJSON) *nudgeView {
	return &nudgeView{app: app, env: env}
}

func (v *nudgeView) Init() tea.Cmd { return nil }

func (v *nudgeView) shortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snooze")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *nudgeView) logOutcome(outcome domain.Outcome) tea.Cmd {
	app := v.app
	env := v.env
	return func() tea.Msg {
		// An empty nudge ID resolves to the user's most recent nudge,
		// which is the one on screen.
		_, err := app.Interactions.Log(context.Background(), service.LogOutcomeRequest{
			UserID:  env.UserID,
			Outcome: outcome,
		})
		return outcomeLoggedMsg{outcome: outcome, err: err}
	}
}

func (v *nudgeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeLoggedMsg:
		v.decided = true
		v.outcome = msg.outcome
		v.err = msg.err
		return v, tea.Quit

	case tea.KeyMsg:
		if v.decided {
			return v, tea.Quit
		}
		switch msg.String() {
		case "a":
			return v, v.logOutcome(domain.OutcomeAccepted)
		case "d":
			return v, v.logOutcome(domain.OutcomeDismissed)
		case "s":
			return v, v.logOutcome(domain.OutcomeIgnored)
		case "q", "esc", "ctrl+c":
			v.done = true
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v *nudgeView) View() string {
	var b strings.Builder

	b.WriteString(formatter.FormatNudge(v.env))
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	if v.decided {
		b.WriteString(formatter.OutcomeBadge(v.outcome))
		b.WriteString("\n")
		return b.String()
	}

	var help []string
	for _, binding := range v.shortHelp() {
		help = append(help, fmt.Sprintf("%s %s",
			formatter.Bold(binding.Help().Key),
			formatter.Dim(binding.Help().Desc)))
	}
	b.WriteString(strings.Join(help, formatter.Dim("  ·  ")))
	b.WriteString("\n")
	return b.String()
}

// runNudgeView opens the interactive verdict view. A gated envelope has
// nothing to act on, so it renders statically instead.
func runNudgeView(app *App, env contract.NudgeEnvelopeJSON) error {
	if env.Recommendation == nil {
		fmt.Print(formatter.FormatNudge(env))
		return nil
	}
	_, err := tea.NewProgram(newNudgeView(app, env)).Run()
	return err
}
