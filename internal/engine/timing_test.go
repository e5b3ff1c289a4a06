package engine

import (
	"testing"

	"github.com/attune-cli/attune/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTimingScore_MorningHighEnergy(t *testing.T) {
	score := TimingScore(domain.UserContext{
		TimeOfDay:      domain.TimeMorning,
		EnergyLevel:    domain.EnergyHigh,
		TaskComplexity: domain.ComplexityMedium,
	})
	// (0.9 + 0.9 + 0.6) / 3 = 0.8
	assert.InDelta(t, 0.8, score, 0.001)
	assert.GreaterOrEqual(t, score, DefaultTimingThreshold)
}

func TestTimingScore_EveningLowEnergyHighComplexity(t *testing.T) {
	// Scenario: worst moment to intervene, must fall under the gate.
	score := TimingScore(domain.UserContext{
		TimeOfDay:      domain.TimeEvening,
		EnergyLevel:    domain.EnergyLow,
		TaskComplexity: domain.ComplexityHigh,
	})
	assert.InDelta(t, (0.4+0.3+0.3)/3, score, 0.001)
	assert.Less(t, score, DefaultTimingThreshold)
}

func TestTimingScore_ComplexityIsInverse(t *testing.T) {
	base := domain.UserContext{TimeOfDay: domain.TimeMorning, EnergyLevel: domain.EnergyHigh}

	easy := base
	easy.TaskComplexity = domain.ComplexityLow
	hard := base
	hard.TaskComplexity = domain.ComplexityHigh

	assert.Greater(t, TimingScore(easy), TimingScore(hard))
}

func TestTimingScore_MissingFieldsNeutral(t *testing.T) {
	score := TimingScore(domain.UserContext{})
	// Neutral normalization: afternoon, medium energy, medium complexity.
	assert.InDelta(t, (0.7+0.6+0.6)/3, score, 0.001)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestTimingThresholdFor(t *testing.T) {
	assert.Equal(t, DefaultTimingThreshold, TimingThresholdFor(domain.PersonalityProfile{}))
	assert.Equal(t, 0.7, TimingThresholdFor(domain.PersonalityProfile{TimingThreshold: 0.7}))
}
