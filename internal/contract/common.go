package contract

import "github.com/attune-cli/attune/internal/app"

type ReasonCode = app.ReasonCode

const (
	ReasonTriggerMatch    ReasonCode = app.ReasonTriggerMatch
	ReasonMotivationMatch ReasonCode = app.ReasonMotivationMatch
	ReasonLoadOverride    ReasonCode = app.ReasonLoadOverride
	ReasonDefaultFallback ReasonCode = app.ReasonDefaultFallback
	ReasonDurationScaled  ReasonCode = app.ReasonDurationScaled
	ReasonStepIndexed     ReasonCode = app.ReasonStepIndexed
)

type Reason = app.Reason

type GateCode = app.GateCode

const (
	GateTiming           GateCode = app.GateTiming
	GateFrequency        GateCode = app.GateFrequency
	GateDailyLimit       GateCode = app.GateDailyLimit
	GateRecentDismissals GateCode = app.GateRecentDismissals
	GateFlowState        GateCode = app.GateFlowState
)

type Gate = app.Gate

type NudgeRequest = app.NudgeRequest

type NudgeResponse = app.NudgeResponse

type Recommendation = app.Recommendation

type PersonalizedAction = app.PersonalizedAction

// ToEnvelope maps a use-case response onto the stable JSON surface.
func ToEnvelope(resp *NudgeResponse) NudgeEnvelopeJSON {
	env := NudgeEnvelopeJSON{
		GeneratedAt:   resp.GeneratedAt,
		UserID:        resp.UserID,
		ProfileID:     resp.ProfileID,
		TimingScore:   resp.TimingScore,
		CognitiveLoad: resp.Load,
	}
	for _, g := range resp.Gates {
		env.Gates = append(env.Gates, GateJSON{Code: string(g.Code), Message: g.Message})
	}
	if resp.Recommendation == nil {
		return env
	}

	rec := &RecommendationJSON{
		SelectedTemplateID: resp.Recommendation.TemplateID,
		TimingScore:        resp.Recommendation.TimingScore,
		FollowUp:           nil,
	}
	rec.FollowUp = FollowUpToJSON(resp.Recommendation.FollowUp)
	for _, a := range resp.Recommendation.Actions {
		rec.PersonalizedActions = append(rec.PersonalizedActions, ActionJSON{
			Description:     a.Description,
			DurationMinutes: a.DurationMin,
			Priority:        a.Priority,
			SuccessMetric:   a.SuccessMetric,
			Communication:   string(a.CommunicationAs),
		})
	}
	env.Recommendation = rec
	return env
}
