package formatter

import (
	"fmt"
	"strings"

	"github.com/attune-cli/attune/internal/service"
)

// FormatInsights renders the stats report: acceptance per personality type
// and per template.
func FormatInsights(report *service.InsightsReport) string {
	var b strings.Builder

	b.WriteString(Header("Acceptance by personality type"))
	b.WriteString("\n\n")
	if len(report.Profiles) == 0 {
		b.WriteString(Dim("No interactions recorded yet."))
		b.WriteString("\n")
	} else {
		for _, p := range report.Profiles {
			b.WriteString(fmt.Sprintf(
				"%s  %s  %s\n",
				Bold(fmt.Sprintf("%-6s", p.ProfileID)),
				RenderTiming(p.AcceptanceRate, scaleWidth),
				Dim(fmt.Sprintf("%d accepted / %d dismissed / %d ignored of %d",
					p.Accepted, p.Dismissed, p.Ignored, p.Total)),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(Header("Acceptance by template"))
	b.WriteString("\n\n")
	if len(report.Templates) == 0 {
		b.WriteString(Dim("No interactions recorded yet."))
		b.WriteString("\n")
		return b.String()
	}
	for _, t := range report.Templates {
		b.WriteString(fmt.Sprintf(
			"%s  %s  %s\n",
			StyleFg.Render(fmt.Sprintf("%-18s", t.TemplateID)),
			RenderTiming(t.AcceptanceRate, scaleWidth),
			Dim(fmt.Sprintf("%d of %d accepted", t.Accepted, t.Total)),
		))
	}
	return b.String()
}
