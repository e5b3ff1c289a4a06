package engine

import (
	"math"

	"github.com/attune-cli/attune/internal/domain"
)

// Fixed estimator weights. This is a heuristic gate, not a model: the weights
// sum to 1 and are never calibrated at runtime.
const (
	weightComplexity    = 0.4
	weightInterruptions = 0.3
	weightTimePressure  = 0.3

	// neutralSignal stands in for any signal the caller did not observe.
	neutralSignal = 0.5

	// interruptionCeiling saturates the interruption signal: ten or more
	// interruptions in the window count as fully loaded.
	interruptionCeiling = 10.0

	// focusFatigueWindowMin saturates the time-pressure signal: a two-hour
	// unbroken focus streak counts as fully fatigued.
	focusFatigueWindowMin = 120.0
)

// EstimateLoad maps a user context to a cognitive load scalar in [0,1].
// Missing numeric signals contribute the neutral value; the result is
// clamped explicitly.
func EstimateLoad(uc domain.UserContext) float64 {
	c := uc.Normalized()

	complexity := complexityLoad(c.TaskComplexity)

	interruptions := neutralSignal
	if c.InterruptionCount != nil {
		interruptions = math.Min(float64(*c.InterruptionCount)/interruptionCeiling, 1.0)
	}

	pressure := neutralSignal
	if c.FocusDurationMin != nil {
		pressure = math.Min(float64(*c.FocusDurationMin)/focusFatigueWindowMin, 1.0)
	}

	load := weightComplexity*complexity +
		weightInterruptions*interruptions +
		weightTimePressure*pressure

	return clamp01(load)
}

func complexityLoad(c domain.TaskComplexity) float64 {
	switch c {
	case domain.ComplexityLow:
		return 0.2
	case domain.ComplexityMedium:
		return 0.5
	case domain.ComplexityHigh:
		return 0.9
	default:
		return neutralSignal
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
