package domain

import "fmt"

// DefaultTemplateID is the fallback template returned when no trigger matches.
const DefaultTemplateID = "general_coaching"

// ActionStep is one imperative instruction inside an intervention.
type ActionStep struct {
	Description     string
	DurationMin     float64
	Priority        int
	SuccessMetric   string
	CommunicationAs CommunicationStyle // set by personalization, empty on catalog templates
}

// FollowUp describes an optional check scheduled after an intervention.
type FollowUp struct {
	TimingMin int
	CheckType CheckType
}

// InterventionTemplate is one entry of the static intervention catalog.
type InterventionTemplate struct {
	TemplateID string
	Triggers   []string
	Actions    []ActionStep
	FollowUp   *FollowUp

	// Recovery marks templates the selector may route to when cognitive
	// load exceeds the profile threshold (break / stress reduction).
	Recovery bool
}

// Validate checks template identifiers, triggers, and action step bounds.
func (t *InterventionTemplate) Validate() error {
	if t.TemplateID == "" {
		return fmt.Errorf("template id must not be empty")
	}
	if len(t.Triggers) == 0 && t.TemplateID != DefaultTemplateID {
		return fmt.Errorf("template %s: triggers must not be empty", t.TemplateID)
	}
	if len(t.Actions) == 0 {
		return fmt.Errorf("template %s: actions must not be empty", t.TemplateID)
	}
	for i, a := range t.Actions {
		if a.Description == "" {
			return fmt.Errorf("template %s: action %d has empty description", t.TemplateID, i)
		}
		if a.DurationMin <= 0 {
			return fmt.Errorf("template %s: action %d has non-positive duration", t.TemplateID, i)
		}
		if a.Priority < 1 {
			return fmt.Errorf("template %s: action %d has priority < 1", t.TemplateID, i)
		}
	}
	if t.FollowUp != nil && t.FollowUp.TimingMin <= 0 {
		return fmt.Errorf("template %s: follow_up timing must be positive", t.TemplateID)
	}
	return nil
}

// HasTrigger reports whether the template lists the given situational trigger.
func (t *InterventionTemplate) HasTrigger(trigger string) bool {
	for _, tr := range t.Triggers {
		if tr == trigger {
			return true
		}
	}
	return false
}
