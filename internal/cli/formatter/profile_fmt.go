package formatter

import (
	"fmt"
	"strings"

	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/service"
)

// FormatProfileList renders one line per personality type.
func FormatProfileList(views []service.ProfileView) string {
	var b strings.Builder

	b.WriteString(Header("Personality types"))
	b.WriteString("\n\n")

	for _, v := range views {
		p := v.Profile
		marker := "  "
		if v.Overridden {
			marker = StylePurple.Render("* ")
		}
		b.WriteString(fmt.Sprintf(
			"%s%s  %s\n",
			marker,
			Bold(fmt.Sprintf("%-6s", p.TypeID)),
			Dim(fmt.Sprintf("%s / %s / %s", p.LearningStyle, p.CommunicationStyle, p.WorkPattern)),
		))
	}
	b.WriteString("\n")
	b.WriteString(Dim("* has a stored override"))
	b.WriteString("\n")
	return b.String()
}

// FormatProfile renders the full detail view of one personality type.
func FormatProfile(view *service.ProfileView) string {
	p := view.Profile
	var b strings.Builder

	title := p.TypeID
	if view.Overridden {
		title += " (override)"
	}
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-22s", label)), StyleFg.Render(value)))
	}

	row("Learning style", string(p.LearningStyle))
	row("Communication style", string(p.CommunicationStyle))
	row("Work pattern", string(p.WorkPattern))
	row("Motivation triggers", strings.Join(p.MotivationTriggers, ", "))
	row("Load threshold", fmt.Sprintf("%.2f", p.CognitiveLoadThreshold))
	if p.TimingThreshold > 0 {
		row("Timing threshold", fmt.Sprintf("%.2f", p.TimingThreshold))
	}
	row("Nudge spacing", fmt.Sprintf("%dm", p.NudgeIntervalMin))
	row("Daily limit", fmt.Sprintf("%d", p.DailyNudgeLimit))
	return b.String()
}

// FormatTemplateList renders one line per catalog template.
func FormatTemplateList(templates []domain.InterventionTemplate) string {
	var b strings.Builder

	b.WriteString(Header("Intervention templates"))
	b.WriteString("\n\n")

	for _, t := range templates {
		badge := "  "
		if t.Recovery {
			badge = StyleGreen.Render("R ")
		}
		b.WriteString(fmt.Sprintf(
			"%s%s  %s\n",
			badge,
			Bold(fmt.Sprintf("%-18s", t.TemplateID)),
			Dim(strings.Join(t.Triggers, ", ")),
		))
	}
	b.WriteString("\n")
	b.WriteString(Dim("R routes recovery when cognitive load is high"))
	b.WriteString("\n")
	return b.String()
}

// FormatTemplate renders the full detail view of one template.
func FormatTemplate(t domain.InterventionTemplate) string {
	var b strings.Builder

	b.WriteString(Header(t.TemplateID))
	b.WriteString("\n\n")

	if len(t.Triggers) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Triggers:"), StyleFg.Render(strings.Join(t.Triggers, ", "))))
	}
	for i, a := range t.Actions {
		b.WriteString(fmt.Sprintf(
			"%s %s  %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(a.Description),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(a.DurationMin))),
		))
		if a.SuccessMetric != "" {
			b.WriteString(fmt.Sprintf("   %s\n", Dim("Done when: "+a.SuccessMetric)))
		}
	}
	if t.FollowUp != nil {
		b.WriteString(fmt.Sprintf("\n%s\n", Dim(fmt.Sprintf(
			"Follow-up %s in %dm", t.FollowUp.CheckType, t.FollowUp.TimingMin))))
	}
	return b.String()
}
