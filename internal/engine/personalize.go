package engine

import (
	"fmt"

	"github.com/attune-cli/attune/internal/app"
	"github.com/attune-cli/attune/internal/domain"
)

// Duration multipliers per work pattern.
const (
	deepFocusDurationFactor = 1.2
	flexibleDurationFactor  = 0.8
)

// Personalize adapts a template's action steps to the profile. The step order
// is preserved and no step is ever dropped; only descriptions, durations, and
// the communication tag change. Rendering the final phrasing is the caller's
// job; steps are only tagged with the profile's communication style.
func Personalize(actions []domain.ActionStep, profile domain.PersonalityProfile) ([]app.PersonalizedAction, []app.Reason) {
	factor := 1.0
	switch profile.WorkPattern {
	case domain.PatternDeepFocus:
		factor = deepFocusDurationFactor
	case domain.PatternFlexible:
		factor = flexibleDurationFactor
	}

	out := make([]app.PersonalizedAction, 0, len(actions))
	for i, a := range actions {
		step := app.PersonalizedAction{
			Description:     a.Description,
			DurationMin:     a.DurationMin * factor,
			Priority:        a.Priority,
			SuccessMetric:   a.SuccessMetric,
			CommunicationAs: profile.CommunicationStyle,
		}
		if profile.LearningStyle == domain.LearningSystematic {
			step.Description = fmt.Sprintf("Step %d: %s", i+1, a.Description)
		}
		out = append(out, step)
	}

	var reasons []app.Reason
	if profile.LearningStyle == domain.LearningSystematic {
		reasons = append(reasons, app.Reason{
			Code:    app.ReasonStepIndexed,
			Message: "Steps numbered for systematic learning style",
		})
	}
	if factor != 1.0 {
		delta := factor
		reasons = append(reasons, app.Reason{
			Code:        app.ReasonDurationScaled,
			Message:     fmt.Sprintf("Durations scaled by %.1f for %s work pattern", factor, profile.WorkPattern),
			WeightDelta: &delta,
		})
	}
	return out, reasons
}
