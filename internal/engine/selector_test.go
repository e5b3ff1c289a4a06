package engine

import (
	"testing"

	"github.com/attune-cli/attune/internal/app"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []domain.InterventionTemplate {
	step := func(desc string, min float64) domain.ActionStep {
		return domain.ActionStep{Description: desc, DurationMin: min, Priority: 1}
	}
	return []domain.InterventionTemplate{
		{
			TemplateID: "focus",
			Triggers:   []string{"distraction", "context_switching", "mastery"},
			Actions:    []domain.ActionStep{step("Close distracting tabs", 2), step("Run a focused sprint", 25)},
		},
		{
			TemplateID: "motivation",
			Triggers:   []string{"procrastination", "low_energy", "novelty"},
			Actions:    []domain.ActionStep{step("Pick the smallest next task", 5)},
		},
		{
			TemplateID: "break",
			Triggers:   []string{"fatigue", "overload"},
			Recovery:   true,
			Actions:    []domain.ActionStep{step("Step away from the screen", 5)},
		},
		{
			TemplateID: domain.DefaultTemplateID,
			Actions:    []domain.ActionStep{step("Review your priorities for today", 10)},
		},
	}
}

func testProfile() domain.PersonalityProfile {
	return domain.PersonalityProfile{
		TypeID:                 "INTJ",
		LearningStyle:          domain.LearningSystematic,
		CommunicationStyle:     domain.CommDirect,
		WorkPattern:            domain.PatternDeepFocus,
		MotivationTriggers:     []string{"mastery", "autonomy"},
		CognitiveLoadThreshold: 0.8,
	}
}

func TestSelect_TriggerMatch(t *testing.T) {
	// Scenario: INTJ, distraction trigger, moderate load.
	result := Select(SelectionInput{
		Context: domain.UserContext{TriggersActive: []string{"distraction"}},
		Profile: testProfile(),
		Load:    0.5,
	}, testCatalog())

	assert.Equal(t, "focus", result.Template.TemplateID)
	require.NotEmpty(t, result.Reasons)
	assert.Equal(t, app.ReasonTriggerMatch, result.Reasons[0].Code)
}

func TestSelect_MotivationOverlapBreaksScoreTies(t *testing.T) {
	// Both focus and motivation match one trigger each, but the INTJ
	// profile's "mastery" motivation also appears on focus.
	result := Select(SelectionInput{
		Context: domain.UserContext{TriggersActive: []string{"distraction", "procrastination"}},
		Profile: testProfile(),
		Load:    0.5,
	}, testCatalog())

	assert.Equal(t, "focus", result.Template.TemplateID)
	assert.InDelta(t, 1.5, result.Score, 0.001)
}

func TestSelect_LoadOverrideRoutesToRecovery(t *testing.T) {
	// Scenario: load above the profile threshold wins over trigger match.
	result := Select(SelectionInput{
		Context: domain.UserContext{TriggersActive: []string{"distraction"}},
		Profile: testProfile(),
		Load:    0.81,
	}, testCatalog())

	assert.Equal(t, "break", result.Template.TemplateID)
	require.Len(t, result.Reasons, 1)
	assert.Equal(t, app.ReasonLoadOverride, result.Reasons[0].Code)
}

func TestSelect_NoMatchFallsBackToDefault(t *testing.T) {
	result := Select(SelectionInput{
		Context: domain.UserContext{TriggersActive: []string{"totally_unknown"}},
		Profile: testProfile(),
		Load:    0.3,
	}, testCatalog())

	assert.Equal(t, domain.DefaultTemplateID, result.Template.TemplateID)
	require.Len(t, result.Reasons, 1)
	assert.Equal(t, app.ReasonDefaultFallback, result.Reasons[0].Code)
}

func TestSelect_EmptyTriggerListFallsBack(t *testing.T) {
	result := Select(SelectionInput{
		Context: domain.UserContext{},
		Profile: testProfile(),
		Load:    0.3,
	}, testCatalog())
	assert.Equal(t, domain.DefaultTemplateID, result.Template.TemplateID)
}

func TestSelect_Deterministic(t *testing.T) {
	input := SelectionInput{
		Context: domain.UserContext{TriggersActive: []string{"distraction", "fatigue", "procrastination"}},
		Profile: testProfile(),
		Load:    0.6,
	}
	catalog := testCatalog()

	first := Select(input, catalog)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first.Template.TemplateID, Select(input, catalog).Template.TemplateID)
	}
}

func TestSelect_TieBrokenByCatalogOrder(t *testing.T) {
	catalog := []domain.InterventionTemplate{
		{TemplateID: "a", Triggers: []string{"x"}, Actions: []domain.ActionStep{{Description: "d", DurationMin: 5, Priority: 1}}},
		{TemplateID: "b", Triggers: []string{"x"}, Actions: []domain.ActionStep{{Description: "d", DurationMin: 5, Priority: 1}}},
	}
	profile := testProfile()
	profile.MotivationTriggers = []string{"unrelated"}

	result := Select(SelectionInput{
		Context: domain.UserContext{TriggersActive: []string{"x"}},
		Profile: profile,
		Load:    0.2,
	}, catalog)
	assert.Equal(t, "a", result.Template.TemplateID)
}

func TestSelect_LoadOverrideWithoutRecoveryTemplate(t *testing.T) {
	// A catalog with no recovery entry still selects normally.
	catalog := testCatalog()[:2]
	catalog = append(catalog, testCatalog()[3])

	result := Select(SelectionInput{
		Context: domain.UserContext{TriggersActive: []string{"distraction"}},
		Profile: testProfile(),
		Load:    0.95,
	}, catalog)
	assert.Equal(t, "focus", result.Template.TemplateID)
}
