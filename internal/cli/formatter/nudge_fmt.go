package formatter

import (
	"fmt"
	"strings"

	"github.com/attune-cli/attune/internal/contract"
)

const scaleWidth = 16

// FormatNudge renders a nudge envelope as a styled terminal block. Gated
// calls render the gate reason instead of actions.
func FormatNudge(env contract.NudgeEnvelopeJSON) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Nudge for %s (%s)", env.UserID, env.ProfileID)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Timing "), RenderTiming(env.TimingScore, scaleWidth)))
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Load   "), RenderScale(env.CognitiveLoad, scaleWidth)))

	if env.Recommendation == nil {
		b.WriteString(StyleYellow.Render("No nudge right now."))
		b.WriteString("\n")
		for _, g := range env.Gates {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render("·"), Dim(g.Message)))
		}
		return b.String()
	}

	rec := env.Recommendation
	b.WriteString(StylePurple.Render(fmt.Sprintf("PLAN: %s", strings.ToUpper(rec.SelectedTemplateID))))
	b.WriteString("\n\n")

	for i, a := range rec.PersonalizedActions {
		line := fmt.Sprintf(
			"%s %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(a.Description),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(a.DurationMinutes))),
		)
		b.WriteString(line + "\n")
		if a.SuccessMetric != "" {
			b.WriteString(fmt.Sprintf("   %s\n", Dim("Done when: "+a.SuccessMetric)))
		}
	}

	if rec.FollowUp != nil {
		b.WriteString(fmt.Sprintf("\n%s\n", Dim(fmt.Sprintf(
			"Follow-up %s in %dm", rec.FollowUp.CheckType, rec.FollowUp.TimingMinutes))))
	}

	return b.String()
}
