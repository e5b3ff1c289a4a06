package engine

import (
	"fmt"

	"github.com/attune-cli/attune/internal/app"
	"github.com/attune-cli/attune/internal/domain"
)

// Scoring weights for trigger matching.
const (
	triggerMatchWeight    = 1.0
	motivationMatchWeight = 0.5
)

// SelectionInput bundles everything the selector needs for one call.
type SelectionInput struct {
	Context domain.UserContext
	Profile domain.PersonalityProfile
	Load    float64
}

// ScoredTemplate is a catalog template with its selection score and the
// reasons behind it. CatalogIndex preserves insertion order for tie-breaks.
type ScoredTemplate struct {
	Template     domain.InterventionTemplate
	Score        float64
	Reasons      []app.Reason
	CatalogIndex int
}

// Select chooses the single best intervention template. It is pure and total:
// for any well-formed input it returns a template, falling back to the
// catalog's default when nothing matches. Unknown trigger strings contribute
// nothing and are not errors.
func Select(input SelectionInput, catalog []domain.InterventionTemplate) ScoredTemplate {
	// High load overrides trigger matching entirely: route to the first
	// recovery template in catalog order.
	if input.Load > input.Profile.CognitiveLoadThreshold {
		for i, t := range catalog {
			if t.Recovery {
				delta := input.Load
				return ScoredTemplate{
					Template:     t,
					Score:        input.Load,
					CatalogIndex: i,
					Reasons: []app.Reason{{
						Code:        app.ReasonLoadOverride,
						Message:     fmt.Sprintf("Cognitive load %.2f exceeds threshold %.2f", input.Load, input.Profile.CognitiveLoadThreshold),
						WeightDelta: &delta,
					}},
				}
			}
		}
	}

	best := ScoredTemplate{CatalogIndex: -1}
	for i, t := range catalog {
		scored := scoreTemplate(input, t, i)
		if scored == nil {
			continue
		}
		// Strictly-greater keeps the first (catalog-order) winner on ties.
		if best.CatalogIndex < 0 || scored.Score > best.Score {
			best = *scored
		}
	}
	if best.CatalogIndex >= 0 {
		return best
	}

	return defaultFallback(catalog)
}

// scoreTemplate returns nil when the template's triggers do not intersect
// the active context triggers.
func scoreTemplate(input SelectionInput, t domain.InterventionTemplate, idx int) *ScoredTemplate {
	overlap := 0
	for _, trigger := range input.Context.TriggersActive {
		if t.HasTrigger(trigger) {
			overlap++
		}
	}
	if overlap == 0 {
		return nil
	}

	motivation := 0
	for _, m := range input.Profile.MotivationTriggers {
		if t.HasTrigger(m) {
			motivation++
		}
	}

	result := &ScoredTemplate{Template: t, CatalogIndex: idx}

	triggerDelta := float64(overlap) * triggerMatchWeight
	result.Score += triggerDelta
	result.Reasons = append(result.Reasons, app.Reason{
		Code:        app.ReasonTriggerMatch,
		Message:     fmt.Sprintf("Matches %d active trigger(s)", overlap),
		WeightDelta: &triggerDelta,
	})

	if motivation > 0 {
		motivationDelta := float64(motivation) * motivationMatchWeight
		result.Score += motivationDelta
		result.Reasons = append(result.Reasons, app.Reason{
			Code:        app.ReasonMotivationMatch,
			Message:     fmt.Sprintf("Aligns with %d motivation trigger(s)", motivation),
			WeightDelta: &motivationDelta,
		})
	}

	return result
}

func defaultFallback(catalog []domain.InterventionTemplate) ScoredTemplate {
	for i, t := range catalog {
		if t.TemplateID == domain.DefaultTemplateID {
			return ScoredTemplate{
				Template:     t,
				CatalogIndex: i,
				Reasons: []app.Reason{{
					Code:    app.ReasonDefaultFallback,
					Message: "No template matched the active triggers",
				}},
			}
		}
	}
	// Catalog validation guarantees a default template; an empty slice here
	// would be a startup configuration bug, not a runtime condition.
	return ScoredTemplate{
		Template:     catalog[0],
		CatalogIndex: 0,
		Reasons: []app.Reason{{
			Code:    app.ReasonDefaultFallback,
			Message: "No template matched the active triggers",
		}},
	}
}
