package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attune-cli/attune/internal/app"
	"github.com/attune-cli/attune/internal/catalog"
	"github.com/attune-cli/attune/internal/contract"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/engine"
	"github.com/attune-cli/attune/internal/repository"
)

// Flow-state guard bounds. A long undisturbed focus streak under threshold
// load is a moment to protect, not to interrupt.
const (
	flowFocusMin         = 45
	flowMaxInterruptions = 2
)

// RecommendationContext bundles all data loaded for one nudge cycle.
type RecommendationContext struct {
	Now     time.Time
	Context domain.UserContext
	Profile domain.PersonalityProfile

	LastNudge          *domain.NudgeRecord
	NudgesToday        int
	RecentInteractions []*domain.Interaction
}

// ContextLoader validates the request and loads the profile plus the history
// the gates read.
type ContextLoader struct {
	catalog      *catalog.Catalog
	overrides    repository.ProfileOverrideRepo
	nudges       repository.NudgeLogRepo
	interactions repository.InteractionRepo
}

// Load resolves the profile (override first, then built-in) and gathers the
// user's recent nudge and interaction history.
func (cl *ContextLoader) Load(ctx context.Context, req app.NudgeRequest) (*RecommendationContext, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	uc := req.Context
	uc.UserID = domain.CoalesceStr(uc.UserID, req.UserID)
	uc.Now = now
	uc = uc.Normalized()

	profile, err := cl.resolveProfile(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	last, err := cl.nudges.LastForUser(ctx, uc.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading last nudge: %w", err)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := cl.nudges.CountSince(ctx, uc.UserID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("counting today's nudges: %w", err)
	}

	recent, err := cl.interactions.ListRecent(ctx, uc.UserID, repository.HistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("loading recent interactions: %w", err)
	}

	return &RecommendationContext{
		Now:                now,
		Context:            uc,
		Profile:            *profile,
		LastNudge:          last,
		NudgesToday:        today,
		RecentInteractions: recent,
	}, nil
}

// resolveProfile looks up the personality type: user override first, then
// the built-in catalog.
func (cl *ContextLoader) resolveProfile(ctx context.Context, typeID string) (*domain.PersonalityProfile, error) {
	if typeID == "" {
		return nil, &contract.NudgeError{
			Code:    contract.ErrInvalidProfileKey,
			Message: "profile type must not be empty",
		}
	}

	if cl.overrides != nil {
		p, err := cl.overrides.Get(ctx, typeID)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("loading profile override: %w", err)
		}
	}

	if p, ok := cl.catalog.Profile(typeID); ok {
		return &p, nil
	}
	return nil, &contract.NudgeError{
		Code:    contract.ErrInvalidProfileKey,
		Message: fmt.Sprintf("unknown personality type %q", typeID),
	}
}

// EvaluateGates runs the delivery gates in order and returns the first hit,
// or nil when the nudge may be delivered. Gates only read history; callers
// must not write anything for a gated cycle.
func EvaluateGates(rctx *RecommendationContext, load, timingScore float64) *app.Gate {
	profile := rctx.Profile

	threshold := engine.TimingThresholdFor(profile)
	if timingScore < threshold {
		return &app.Gate{
			Code:    app.GateTiming,
			Message: fmt.Sprintf("Timing score %.2f below threshold %.2f", timingScore, threshold),
		}
	}

	if rctx.LastNudge != nil && profile.NudgeIntervalMin > 0 {
		interval := time.Duration(profile.NudgeIntervalMin) * time.Minute
		since := rctx.Now.Sub(rctx.LastNudge.CreatedAt)
		if since < interval {
			return &app.Gate{
				Code:    app.GateFrequency,
				Message: fmt.Sprintf("Last nudge %s ago, minimum spacing is %dm", since.Round(time.Minute), profile.NudgeIntervalMin),
			}
		}
	}

	if profile.DailyNudgeLimit > 0 && rctx.NudgesToday >= profile.DailyNudgeLimit {
		return &app.Gate{
			Code:    app.GateDailyLimit,
			Message: fmt.Sprintf("Daily limit of %d nudges reached", profile.DailyNudgeLimit),
		}
	}

	if dismissals := countDismissals(rctx.RecentInteractions); dismissals >= 2 {
		return &app.Gate{
			Code:    app.GateRecentDismissals,
			Message: fmt.Sprintf("%d of the last %d interactions were dismissals", dismissals, len(rctx.RecentInteractions)),
		}
	}

	if inFlowState(rctx.Context, load, profile.CognitiveLoadThreshold) {
		return &app.Gate{
			Code:    app.GateFlowState,
			Message: "User appears to be in flow; holding the nudge",
		}
	}

	return nil
}

func countDismissals(interactions []*domain.Interaction) int {
	n := 0
	for _, in := range interactions {
		if in.Outcome == domain.OutcomeDismissed {
			n++
		}
	}
	return n
}

func inFlowState(uc domain.UserContext, load, loadThreshold float64) bool {
	if uc.FocusDurationMin == nil || *uc.FocusDurationMin <= flowFocusMin {
		return false
	}
	interruptions := 0
	if uc.InterruptionCount != nil {
		interruptions = *uc.InterruptionCount
	}
	return interruptions < flowMaxInterruptions && load < loadThreshold
}

// AssembleResponse builds the use-case response shared by delivered and
// gated cycles.
func AssembleResponse(rctx *RecommendationContext, rec *app.Recommendation, load, timingScore float64, gate *app.Gate) *app.NudgeResponse {
	resp := &app.NudgeResponse{
		GeneratedAt:    rctx.Now,
		UserID:         rctx.Context.UserID,
		ProfileID:      rctx.Profile.TypeID,
		Recommendation: rec,
		TimingScore:    timingScore,
		Load:           load,
	}
	if gate != nil {
		resp.Gates = append(resp.Gates, *gate)
	}
	return resp
}
