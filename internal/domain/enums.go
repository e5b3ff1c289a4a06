package domain

type LearningStyle string

const (
	LearningSystematic  LearningStyle = "systematic"
	LearningExploratory LearningStyle = "exploratory"
)

type CommunicationStyle string

const (
	CommDirect       CommunicationStyle = "direct"
	CommEnthusiastic CommunicationStyle = "enthusiastic"
	CommSupportive   CommunicationStyle = "supportive"
	CommConsultative CommunicationStyle = "consultative"
)

type WorkPattern string

const (
	PatternDeepFocus WorkPattern = "deep_focus"
	PatternFlexible  WorkPattern = "flexible"
)

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

type TaskComplexity string

const (
	ComplexityLow    TaskComplexity = "low"
	ComplexityMedium TaskComplexity = "medium"
	ComplexityHigh   TaskComplexity = "high"
)

type CheckType string

const (
	CheckNotification CheckType = "notification"
	CheckReflection   CheckType = "reflection"
	CheckProgress     CheckType = "progress"
)

type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeDismissed Outcome = "dismissed"
	OutcomeIgnored   Outcome = "ignored"
)

// ValidLearningStyles is the canonical set of accepted learning style strings.
var ValidLearningStyles = map[string]bool{
	"systematic": true, "exploratory": true,
}

// ValidCommunicationStyles is the canonical set of accepted communication style strings.
var ValidCommunicationStyles = map[string]bool{
	"direct": true, "enthusiastic": true, "supportive": true, "consultative": true,
}

// ValidWorkPatterns is the canonical set of accepted work pattern strings.
var ValidWorkPatterns = map[string]bool{
	"deep_focus": true, "flexible": true,
}

// ValidOutcomes is the canonical set of accepted interaction outcome strings.
var ValidOutcomes = map[string]bool{
	"accepted": true, "dismissed": true, "ignored": true,
}

// ParseTimeOfDay maps a string to a TimeOfDay, reporting whether it was recognized.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	switch TimeOfDay(s) {
	case TimeMorning, TimeAfternoon, TimeEvening:
		return TimeOfDay(s), true
	}
	return "", false
}

// ParseEnergyLevel maps a string to an EnergyLevel, reporting whether it was recognized.
func ParseEnergyLevel(s string) (EnergyLevel, bool) {
	switch EnergyLevel(s) {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return EnergyLevel(s), true
	}
	return "", false
}

// ParseTaskComplexity maps a string to a TaskComplexity, reporting whether it was recognized.
func ParseTaskComplexity(s string) (TaskComplexity, bool) {
	switch TaskComplexity(s) {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return TaskComplexity(s), true
	}
	return "", false
}
