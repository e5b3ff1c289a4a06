package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/attune-cli/attune/internal/domain"
)

// FormatHistory renders the rolling nudge window for one user, newest first.
func FormatHistory(userID string, records []*domain.NudgeRecord, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Recent nudges for %s", userID)))
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(Dim("No nudge history."))
		b.WriteString("\n")
		return b.String()
	}

	for _, rec := range records {
		b.WriteString(fmt.Sprintf(
			"%s  %s  %s %s\n",
			Dim(TruncID(rec.ID)),
			StyleFg.Render(fmt.Sprintf("%-18s", rec.TemplateID)),
			StyleBlue.Render(fmt.Sprintf("timing %.2f load %.2f", rec.TimingScore, rec.Load)),
			Dim(RelativeTime(rec.CreatedAt, now)),
		))
	}
	return b.String()
}

// FormatInteractions renders recent interaction outcomes for one user.
func FormatInteractions(userID string, interactions []*domain.Interaction, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Recent outcomes for %s", userID)))
	b.WriteString("\n\n")

	if len(interactions) == 0 {
		b.WriteString(Dim("No interactions recorded."))
		b.WriteString("\n")
		return b.String()
	}

	for _, in := range interactions {
		line := fmt.Sprintf(
			"%s  %s  %s %s",
			OutcomeBadge(in.Outcome),
			StyleFg.Render(fmt.Sprintf("%-18s", in.TemplateID)),
			Dim(TruncID(in.NudgeID)),
			Dim(RelativeTime(in.CreatedAt, now)),
		)
		b.WriteString(line + "\n")
		if in.Reason != "" {
			b.WriteString(fmt.Sprintf("   %s\n", Dim("Reason: "+in.Reason)))
		}
	}
	return b.String()
}

// OutcomeBadge returns a colored outcome marker such as "● accepted".
func OutcomeBadge(o domain.Outcome) string {
	switch o {
	case domain.OutcomeAccepted:
		return StyleGreen.Render("● accepted ")
	case domain.OutcomeDismissed:
		return StyleRed.Render("● dismissed")
	case domain.OutcomeIgnored:
		return StyleYellow.Render("● ignored  ")
	default:
		return StyleDim.Render("● unknown  ")
	}
}
