package engine

import "github.com/attune-cli/attune/internal/domain"

// DefaultTimingThreshold is the minimum timing score required to show a
// nudge at all. Profiles may override it via their timing_threshold field.
const DefaultTimingThreshold = 0.6

// Static factor tables. Morning beats afternoon beats evening; high energy
// beats low; complexity is inverse (a hard task is a bad moment to interrupt).
var timeOfDayWeight = map[domain.TimeOfDay]float64{
	domain.TimeMorning:   0.9,
	domain.TimeAfternoon: 0.7,
	domain.TimeEvening:   0.4,
}

var energyWeight = map[domain.EnergyLevel]float64{
	domain.EnergyHigh:   0.9,
	domain.EnergyMedium: 0.6,
	domain.EnergyLow:    0.3,
}

var complexityTimingWeight = map[domain.TaskComplexity]float64{
	domain.ComplexityLow:    0.8,
	domain.ComplexityMedium: 0.6,
	domain.ComplexityHigh:   0.3,
}

// TimingScore returns the arithmetic mean of the three timing factors,
// always in [0,1].
func TimingScore(uc domain.UserContext) float64 {
	c := uc.Normalized()
	score := (timeOfDayWeight[c.TimeOfDay] +
		energyWeight[c.EnergyLevel] +
		complexityTimingWeight[c.TaskComplexity]) / 3.0
	return clamp01(score)
}

// TimingThresholdFor returns the profile's timing threshold, falling back to
// the engine default when unset.
func TimingThresholdFor(p domain.PersonalityProfile) float64 {
	if p.TimingThreshold > 0 {
		return p.TimingThreshold
	}
	return DefaultTimingThreshold
}
