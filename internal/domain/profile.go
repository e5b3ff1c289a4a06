package domain

import (
	"fmt"
	"time"
)

// PersonalityProfile is the static configuration for one personality type.
// Profiles come from the built-in catalog or from per-user overrides and are
// read-only for the lifetime of a process.
type PersonalityProfile struct {
	TypeID             string
	LearningStyle      LearningStyle
	CommunicationStyle CommunicationStyle
	WorkPattern        WorkPattern
	MotivationTriggers []string

	// CognitiveLoadThreshold bounds selection eligibility: above it the
	// selector routes to a recovery template regardless of trigger match.
	CognitiveLoadThreshold float64

	// TimingThreshold is the minimum timing score required to nudge at all.
	// Zero means "use the engine default".
	TimingThreshold float64

	// NudgeIntervalMin is the minimum spacing between nudges for this
	// personality type. DailyNudgeLimit caps nudges per calendar day.
	NudgeIntervalMin int
	DailyNudgeLimit  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks that every required profile field is set and in bounds.
func (p *PersonalityProfile) Validate() error {
	if p.TypeID == "" {
		return fmt.Errorf("profile type_id must not be empty")
	}
	if !ValidLearningStyles[string(p.LearningStyle)] {
		return fmt.Errorf("profile %s: invalid learning_style %q", p.TypeID, p.LearningStyle)
	}
	if !ValidCommunicationStyles[string(p.CommunicationStyle)] {
		return fmt.Errorf("profile %s: invalid communication_style %q", p.TypeID, p.CommunicationStyle)
	}
	if !ValidWorkPatterns[string(p.WorkPattern)] {
		return fmt.Errorf("profile %s: invalid work_pattern %q", p.TypeID, p.WorkPattern)
	}
	if len(p.MotivationTriggers) == 0 {
		return fmt.Errorf("profile %s: motivation_triggers must not be empty", p.TypeID)
	}
	if p.CognitiveLoadThreshold < 0 || p.CognitiveLoadThreshold > 1 {
		return fmt.Errorf("profile %s: cognitive_load_threshold %.2f outside [0,1]", p.TypeID, p.CognitiveLoadThreshold)
	}
	if p.TimingThreshold < 0 || p.TimingThreshold > 1 {
		return fmt.Errorf("profile %s: timing_threshold %.2f outside [0,1]", p.TypeID, p.TimingThreshold)
	}
	if p.NudgeIntervalMin < 0 {
		return fmt.Errorf("profile %s: nudge_interval_min must not be negative", p.TypeID)
	}
	if p.DailyNudgeLimit < 0 {
		return fmt.Errorf("profile %s: daily_nudge_limit must not be negative", p.TypeID)
	}
	return nil
}

// MotivatedBy reports whether the profile lists the given motivation trigger.
func (p *PersonalityProfile) MotivatedBy(trigger string) bool {
	for _, t := range p.MotivationTriggers {
		if t == trigger {
			return true
		}
	}
	return false
}
