package testutil

import (
	"time"

	"github.com/attune-cli/attune/internal/domain"
	"github.com/google/uuid"
)

// PersonalityProfile options
type ProfileOption func(*domain.PersonalityProfile)

func WithLearningStyle(s domain.LearningStyle) ProfileOption {
	return func(p *domain.PersonalityProfile) {
		p.LearningStyle = s
	}
}

func WithCommunicationStyle(s domain.CommunicationStyle) ProfileOption {
	return func(p *domain.PersonalityProfile) {
		p.CommunicationStyle = s
	}
}

func WithWorkPattern(w domain.WorkPattern) ProfileOption {
	return func(p *domain.PersonalityProfile) {
		p.WorkPattern = w
	}
}

func WithMotivationTriggers(triggers ...string) ProfileOption {
	return func(p *domain.PersonalityProfile) {
		p.MotivationTriggers = triggers
	}
}

func WithLoadThreshold(v float64) ProfileOption {
	return func(p *domain.PersonalityProfile) {
		p.CognitiveLoadThreshold = v
	}
}

func WithNudgeInterval(min int) ProfileOption {
	return func(p *domain.PersonalityProfile) {
		p.NudgeIntervalMin = min
	}
}

func WithDailyLimit(n int) ProfileOption {
	return func(p *domain.PersonalityProfile) {
		p.DailyNudgeLimit = n
	}
}

func NewTestProfile(typeID string, opts ...ProfileOption) *domain.PersonalityProfile {
	now := time.Now().UTC()
	p := &domain.PersonalityProfile{
		TypeID:                 typeID,
		LearningStyle:          domain.LearningSystematic,
		CommunicationStyle:     domain.CommDirect,
		WorkPattern:            domain.PatternDeepFocus,
		MotivationTriggers:     []string{"achievement", "mastery"},
		CognitiveLoadThreshold: 0.7,
		TimingThreshold:        0.6,
		NudgeIntervalMin:       30,
		DailyNudgeLimit:        4,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// UserContext options
type ContextOption func(*domain.UserContext)

func WithTimeOfDay(t domain.TimeOfDay) ContextOption {
	return func(c *domain.UserContext) {
		c.TimeOfDay = t
	}
}

func WithEnergy(e domain.EnergyLevel) ContextOption {
	return func(c *domain.UserContext) {
		c.EnergyLevel = e
	}
}

func WithComplexity(tc domain.TaskComplexity) ContextOption {
	return func(c *domain.UserContext) {
		c.TaskComplexity = tc
	}
}

func WithActiveTriggers(triggers ...string) ContextOption {
	return func(c *domain.UserContext) {
		c.TriggersActive = triggers
	}
}

func WithInterruptions(n int) ContextOption {
	return func(c *domain.UserContext) {
		c.InterruptionCount = &n
	}
}

func WithFocusDuration(min int) ContextOption {
	return func(c *domain.UserContext) {
		c.FocusDurationMin = &min
	}
}

func WithContextNow(now time.Time) ContextOption {
	return func(c *domain.UserContext) {
		c.Now = now
	}
}

func NewTestContext(userID string, opts ...ContextOption) *domain.UserContext {
	c := &domain.UserContext{
		UserID:         userID,
		TimeOfDay:      domain.TimeMorning,
		EnergyLevel:    domain.EnergyHigh,
		TaskComplexity: domain.ComplexityMedium,
		TriggersActive: []string{"default"},
		Now:            time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NudgeRecord options
type NudgeOption func(*domain.NudgeRecord)

func WithNudgeTemplate(templateID string) NudgeOption {
	return func(n *domain.NudgeRecord) {
		n.TemplateID = templateID
	}
}

func WithNudgeCreatedAt(t time.Time) NudgeOption {
	return func(n *domain.NudgeRecord) {
		n.CreatedAt = t
	}
}

func NewTestNudgeRecord(userID, profileID string, opts ...NudgeOption) *domain.NudgeRecord {
	n := &domain.NudgeRecord{
		ID:          uuid.New().String(),
		UserID:      userID,
		ProfileID:   profileID,
		TemplateID:  domain.DefaultTemplateID,
		TimingScore: 0.8,
		Load:        0.5,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Interaction options
type InteractionOption func(*domain.Interaction)

func WithOutcome(o domain.Outcome) InteractionOption {
	return func(in *domain.Interaction) {
		in.Outcome = o
	}
}

func WithInteractionTemplate(templateID string) InteractionOption {
	return func(in *domain.Interaction) {
		in.TemplateID = templateID
	}
}

func WithInteractionCreatedAt(t time.Time) InteractionOption {
	return func(in *domain.Interaction) {
		in.CreatedAt = t
	}
}

func NewTestInteraction(userID, nudgeID, profileID string, opts ...InteractionOption) *domain.Interaction {
	in := &domain.Interaction{
		ID:         uuid.New().String(),
		UserID:     userID,
		NudgeID:    nudgeID,
		ProfileID:  profileID,
		TemplateID: domain.DefaultTemplateID,
		Outcome:    domain.OutcomeAccepted,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}
