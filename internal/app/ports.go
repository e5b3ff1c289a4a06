package app

import (
	"context"
	"time"

	"github.com/attune-cli/attune/internal/domain"
)

type NudgeRequest struct {
	UserID    string
	ProfileID string
	Context   domain.UserContext

	// DryRun skips the history append so the call has no side effects.
	DryRun bool
	// Now overrides the clock for deterministic testing.
	Now *time.Time
}

func NewNudgeRequest(userID, profileID string, uc domain.UserContext) NudgeRequest {
	return NudgeRequest{
		UserID:    userID,
		ProfileID: profileID,
		Context:   uc,
	}
}

type NudgeResponse struct {
	GeneratedAt time.Time
	ProfileID   string
	UserID      string

	// Recommendation is nil when a gate blocked the nudge.
	Recommendation *Recommendation
	TimingScore    float64
	Load           float64
	Gates          []Gate
}

type RecommendUseCase interface {
	Recommend(ctx context.Context, req NudgeRequest) (*NudgeResponse, error)
}

type LogInteractionUseCase interface {
	LogInteraction(ctx context.Context, in *domain.Interaction) error
}
