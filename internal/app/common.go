package app

import "github.com/attune-cli/attune/internal/domain"

type ReasonCode string

const (
	ReasonTriggerMatch    ReasonCode = "TRIGGER_MATCH"
	ReasonMotivationMatch ReasonCode = "MOTIVATION_MATCH"
	ReasonLoadOverride    ReasonCode = "LOAD_OVERRIDE"
	ReasonDefaultFallback ReasonCode = "DEFAULT_FALLBACK"
	ReasonDurationScaled  ReasonCode = "DURATION_SCALED"
	ReasonStepIndexed     ReasonCode = "STEP_INDEXED"
)

type Reason struct {
	Code        ReasonCode
	Message     string
	WeightDelta *float64
}

type GateCode string

const (
	GateTiming           GateCode = "GATE_TIMING"
	GateFrequency        GateCode = "GATE_FREQUENCY"
	GateDailyLimit       GateCode = "GATE_DAILY_LIMIT"
	GateRecentDismissals GateCode = "GATE_RECENT_DISMISSALS"
	GateFlowState        GateCode = "GATE_FLOW_STATE"
)

// Gate explains why no recommendation was produced for a call.
type Gate struct {
	Code    GateCode
	Message string
}

// PersonalizedAction is an action step after profile adaptation, ready for
// rendering by the caller.
type PersonalizedAction struct {
	Description     string
	DurationMin     float64
	Priority        int
	SuccessMetric   string
	CommunicationAs domain.CommunicationStyle
}

// Recommendation is the selected, personalized intervention.
type Recommendation struct {
	NudgeID     string
	TemplateID  string
	Actions     []PersonalizedAction
	TimingScore float64
	Load        float64
	Reasons     []Reason
	FollowUp    *domain.FollowUp
}
