package contract

import (
	"time"

	"github.com/attune-cli/attune/internal/domain"
)

type NudgeErrorCode string

const (
	ErrInvalidProfileKey NudgeErrorCode = "INVALID_PROFILE_KEY"
	ErrInvalidContext    NudgeErrorCode = "INVALID_CONTEXT"
	ErrEmptyCatalog      NudgeErrorCode = "EMPTY_CATALOG"
	ErrInternalError     NudgeErrorCode = "INTERNAL_ERROR"
)

type NudgeError struct {
	Code    NudgeErrorCode
	Message string
}

func (e *NudgeError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ActionJSON is the wire shape of one personalized action step.
type ActionJSON struct {
	Description     string  `json:"description"`
	DurationMinutes float64 `json:"duration_minutes"`
	Priority        int     `json:"priority"`
	SuccessMetric   string  `json:"success_metric,omitempty"`
	Communication   string  `json:"communication,omitempty"`
}

// FollowUpJSON is the wire shape of a follow-up check.
type FollowUpJSON struct {
	TimingMinutes int    `json:"timing_minutes"`
	CheckType     string `json:"check_type"`
}

// RecommendationJSON is the JSON-serializable recommendation object. A gated
// call renders as a JSON null.
type RecommendationJSON struct {
	SelectedTemplateID  string        `json:"selected_template_id"`
	PersonalizedActions []ActionJSON  `json:"personalized_actions"`
	TimingScore         float64       `json:"timing_score"`
	FollowUp            *FollowUpJSON `json:"follow_up,omitempty"`
}

// NudgeEnvelopeJSON wraps the recommendation with call metadata for the CLI
// --json output.
type NudgeEnvelopeJSON struct {
	GeneratedAt    time.Time           `json:"generated_at"`
	UserID         string              `json:"user_id"`
	ProfileID      string              `json:"profile_id"`
	TimingScore    float64             `json:"timing_score"`
	CognitiveLoad  float64             `json:"cognitive_load"`
	Recommendation *RecommendationJSON `json:"recommendation"`
	Gates          []GateJSON          `json:"gates,omitempty"`
}

type GateJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FollowUpToJSON converts a domain follow-up, tolerating nil.
func FollowUpToJSON(f *domain.FollowUp) *FollowUpJSON {
	if f == nil {
		return nil
	}
	return &FollowUpJSON{
		TimingMinutes: f.TimingMin,
		CheckType:     string(f.CheckType),
	}
}
