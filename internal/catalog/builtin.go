package catalog

import "github.com/attune-cli/attune/internal/domain"

// builtinTemplates is the default intervention catalog. Order matters: the
// selector breaks score ties by insertion order, and the load override picks
// the first recovery template.
func builtinTemplates() []domain.InterventionTemplate {
	return []domain.InterventionTemplate{
		{
			TemplateID: "focus",
			Triggers:   []string{"distraction", "context_switching", "high_tab_count", "mastery", "deep_work"},
			Actions: []domain.ActionStep{
				{Description: "Close everything unrelated to the current task", DurationMin: 2, Priority: 1},
				{Description: "Silence notifications and start a focused sprint", DurationMin: 25, Priority: 1, SuccessMetric: "sprint completed without switching"},
				{Description: "Note what pulled your attention away, then resume", DurationMin: 3, Priority: 2},
			},
			FollowUp: &domain.FollowUp{TimingMin: 30, CheckType: domain.CheckReflection},
		},
		{
			TemplateID: "motivation",
			Triggers:   []string{"procrastination", "low_motivation", "stalled", "novelty", "achievement"},
			Actions: []domain.ActionStep{
				{Description: "Pick the smallest task you can finish right now", DurationMin: 5, Priority: 1, SuccessMetric: "one task completed"},
				{Description: "Commit to ten minutes only, permission to stop after", DurationMin: 10, Priority: 1},
			},
			FollowUp: &domain.FollowUp{TimingMin: 20, CheckType: domain.CheckProgress},
		},
		{
			TemplateID: "break",
			Triggers:   []string{"fatigue", "overload", "long_streak"},
			Recovery:   true,
			Actions: []domain.ActionStep{
				{Description: "Step away from the screen", DurationMin: 5, Priority: 1},
				{Description: "Stretch, hydrate, look at something far away", DurationMin: 5, Priority: 2},
			},
			FollowUp: &domain.FollowUp{TimingMin: 15, CheckType: domain.CheckNotification},
		},
		{
			TemplateID: "wellbeing",
			Triggers:   []string{"no_breaks", "late_hours", "stress"},
			Recovery:   true,
			Actions: []domain.ActionStep{
				{Description: "Take a short walk away from your desk", DurationMin: 10, Priority: 1, SuccessMetric: "left the workspace"},
				{Description: "Decide on a hard stop time for today", DurationMin: 2, Priority: 2},
			},
		},
		{
			TemplateID: "planning",
			Triggers:   []string{"low_core_work", "scattered", "interruptions", "structure"},
			Actions: []domain.ActionStep{
				{Description: "Write down the one outcome that matters most today", DurationMin: 3, Priority: 1},
				{Description: "Block the next free hour for that outcome", DurationMin: 5, Priority: 1, SuccessMetric: "calendar block created"},
				{Description: "Batch the small stuff into a single later slot", DurationMin: 5, Priority: 3},
			},
			FollowUp: &domain.FollowUp{TimingMin: 60, CheckType: domain.CheckProgress},
		},
		{
			TemplateID: domain.DefaultTemplateID,
			Actions: []domain.ActionStep{
				{Description: "Review what you planned for today", DurationMin: 5, Priority: 1},
				{Description: "Choose the next task and set a clear finish line for it", DurationMin: 5, Priority: 2},
			},
		},
	}
}

// builtinProfiles is the default personality catalog. Thresholds and pacing
// differ per type; users can override any of them via a catalog file or
// `attune profile set`.
func builtinProfiles() []domain.PersonalityProfile {
	return []domain.PersonalityProfile{
		{
			TypeID:                 "INTJ",
			LearningStyle:          domain.LearningSystematic,
			CommunicationStyle:     domain.CommDirect,
			WorkPattern:            domain.PatternDeepFocus,
			MotivationTriggers:     []string{"mastery", "autonomy", "deep_work"},
			CognitiveLoadThreshold: 0.8,
			NudgeIntervalMin:       45,
			DailyNudgeLimit:        4,
		},
		{
			TypeID:                 "INTP",
			LearningStyle:          domain.LearningExploratory,
			CommunicationStyle:     domain.CommDirect,
			WorkPattern:            domain.PatternDeepFocus,
			MotivationTriggers:     []string{"curiosity", "mastery", "novelty"},
			CognitiveLoadThreshold: 0.75,
			NudgeIntervalMin:       45,
			DailyNudgeLimit:        4,
		},
		{
			TypeID:                 "ENTJ",
			LearningStyle:          domain.LearningSystematic,
			CommunicationStyle:     domain.CommDirect,
			WorkPattern:            domain.PatternFlexible,
			MotivationTriggers:     []string{"achievement", "progress", "structure"},
			CognitiveLoadThreshold: 0.7,
			NudgeIntervalMin:       60,
			DailyNudgeLimit:        3,
		},
		{
			TypeID:                 "ENFP",
			LearningStyle:          domain.LearningExploratory,
			CommunicationStyle:     domain.CommEnthusiastic,
			WorkPattern:            domain.PatternFlexible,
			MotivationTriggers:     []string{"novelty", "connection", "creativity"},
			CognitiveLoadThreshold: 0.6,
			NudgeIntervalMin:       30,
			DailyNudgeLimit:        5,
		},
		{
			TypeID:                 "ENFJ",
			LearningStyle:          domain.LearningSystematic,
			CommunicationStyle:     domain.CommSupportive,
			WorkPattern:            domain.PatternFlexible,
			MotivationTriggers:     []string{"connection", "growth", "achievement"},
			CognitiveLoadThreshold: 0.65,
			NudgeIntervalMin:       35,
			DailyNudgeLimit:        4,
		},
		{
			TypeID:                 "ISTJ",
			LearningStyle:          domain.LearningSystematic,
			CommunicationStyle:     domain.CommConsultative,
			WorkPattern:            domain.PatternDeepFocus,
			MotivationTriggers:     []string{"structure", "completion", "mastery"},
			CognitiveLoadThreshold: 0.75,
			NudgeIntervalMin:       60,
			DailyNudgeLimit:        3,
		},
		{
			TypeID:                 "ISFP",
			LearningStyle:          domain.LearningExploratory,
			CommunicationStyle:     domain.CommSupportive,
			WorkPattern:            domain.PatternFlexible,
			MotivationTriggers:     []string{"harmony", "creativity", "novelty"},
			CognitiveLoadThreshold: 0.6,
			NudgeIntervalMin:       30,
			DailyNudgeLimit:        4,
		},
		{
			TypeID:                 "ESTP",
			LearningStyle:          domain.LearningExploratory,
			CommunicationStyle:     domain.CommEnthusiastic,
			WorkPattern:            domain.PatternFlexible,
			MotivationTriggers:     []string{"action", "novelty", "achievement"},
			CognitiveLoadThreshold: 0.55,
			NudgeIntervalMin:       25,
			DailyNudgeLimit:        5,
		},
	}
}
