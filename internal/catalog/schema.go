package catalog

import "github.com/attune-cli/attune/internal/domain"

// FileSchema is the top-level structure of a catalog file. A file may carry
// templates, profiles, or both; entries replace built-ins with the same ID.
type FileSchema struct {
	Templates []TemplateConfig `json:"templates,omitempty" yaml:"templates,omitempty"`
	Profiles  []ProfileConfig  `json:"profiles,omitempty" yaml:"profiles,omitempty"`
}

type TemplateConfig struct {
	ID       string          `json:"id" yaml:"id"`
	Triggers []string        `json:"triggers,omitempty" yaml:"triggers,omitempty"`
	Recovery bool            `json:"recovery,omitempty" yaml:"recovery,omitempty"`
	Actions  []ActionConfig  `json:"actions" yaml:"actions"`
	FollowUp *FollowUpConfig `json:"follow_up,omitempty" yaml:"follow_up,omitempty"`
}

type ActionConfig struct {
	Description   string  `json:"description" yaml:"description"`
	DurationMin   float64 `json:"duration_min" yaml:"duration_min"`
	Priority      int     `json:"priority,omitempty" yaml:"priority,omitempty"`
	SuccessMetric string  `json:"success_metric,omitempty" yaml:"success_metric,omitempty"`
}

type FollowUpConfig struct {
	TimingMin int    `json:"timing_min" yaml:"timing_min"`
	CheckType string `json:"check_type" yaml:"check_type"`
}

type ProfileConfig struct {
	TypeID                 string   `json:"type_id" yaml:"type_id"`
	LearningStyle          string   `json:"learning_style" yaml:"learning_style"`
	CommunicationStyle     string   `json:"communication_style" yaml:"communication_style"`
	WorkPattern            string   `json:"work_pattern" yaml:"work_pattern"`
	MotivationTriggers     []string `json:"motivation_triggers" yaml:"motivation_triggers"`
	CognitiveLoadThreshold *float64 `json:"cognitive_load_threshold,omitempty" yaml:"cognitive_load_threshold,omitempty"`
	TimingThreshold        *float64 `json:"timing_threshold,omitempty" yaml:"timing_threshold,omitempty"`
	NudgeIntervalMin       *int     `json:"nudge_interval_min,omitempty" yaml:"nudge_interval_min,omitempty"`
	DailyNudgeLimit        *int     `json:"daily_nudge_limit,omitempty" yaml:"daily_nudge_limit,omitempty"`
}

// toDomain converts a template config, applying defaults for omitted fields.
func (tc TemplateConfig) toDomain() domain.InterventionTemplate {
	t := domain.InterventionTemplate{
		TemplateID: tc.ID,
		Triggers:   tc.Triggers,
		Recovery:   tc.Recovery,
	}
	for _, ac := range tc.Actions {
		priority := ac.Priority
		if priority == 0 {
			priority = 1
		}
		t.Actions = append(t.Actions, domain.ActionStep{
			Description:   ac.Description,
			DurationMin:   ac.DurationMin,
			Priority:      priority,
			SuccessMetric: ac.SuccessMetric,
		})
	}
	if tc.FollowUp != nil {
		t.FollowUp = &domain.FollowUp{
			TimingMin: tc.FollowUp.TimingMin,
			CheckType: domain.CheckType(tc.FollowUp.CheckType),
		}
	}
	return t
}

// toDomain converts a profile config, applying defaults for omitted fields.
func (pc ProfileConfig) toDomain() domain.PersonalityProfile {
	return domain.PersonalityProfile{
		TypeID:                 pc.TypeID,
		LearningStyle:          domain.LearningStyle(pc.LearningStyle),
		CommunicationStyle:     domain.CommunicationStyle(pc.CommunicationStyle),
		WorkPattern:            domain.WorkPattern(pc.WorkPattern),
		MotivationTriggers:     pc.MotivationTriggers,
		CognitiveLoadThreshold: domain.Float64FromPtrWithDefault(0.7, pc.CognitiveLoadThreshold),
		TimingThreshold:        domain.Float64FromPtrWithDefault(0, pc.TimingThreshold),
		NudgeIntervalMin:       domain.IntFromPtrWithDefault(30, pc.NudgeIntervalMin),
		DailyNudgeLimit:        domain.IntFromPtrWithDefault(4, pc.DailyNudgeLimit),
	}
}
