package domain

import "time"

// UserContext is the per-call snapshot of the user's situation. It is
// constructed by the caller, normalized once, and discarded after use.
type UserContext struct {
	UserID         string
	TimeOfDay      TimeOfDay
	EnergyLevel    EnergyLevel
	TaskComplexity TaskComplexity
	TriggersActive []string

	// Optional numeric signals. Nil means "not observed"; the load
	// estimator substitutes a neutral contribution.
	InterruptionCount *int
	FocusDurationMin  *int

	Now time.Time
}

// Normalized returns a copy with missing or unrecognized categorical fields
// replaced by neutral values. Malformed context is recovered locally, never
// surfaced as an error.
func (c UserContext) Normalized() UserContext {
	if _, ok := ParseTimeOfDay(string(c.TimeOfDay)); !ok {
		c.TimeOfDay = TimeAfternoon
	}
	if _, ok := ParseEnergyLevel(string(c.EnergyLevel)); !ok {
		c.EnergyLevel = EnergyMedium
	}
	if _, ok := ParseTaskComplexity(string(c.TaskComplexity)); !ok {
		c.TaskComplexity = ComplexityMedium
	}
	if c.UserID == "" {
		c.UserID = "default"
	}
	if c.Now.IsZero() {
		c.Now = time.Now().UTC()
	}
	return c
}

// HasTrigger reports whether the given situational trigger is active.
func (c *UserContext) HasTrigger(trigger string) bool {
	for _, t := range c.TriggersActive {
		if t == trigger {
			return true
		}
	}
	return false
}
