package service

import (
	"context"

	"github.com/attune-cli/attune/internal/app"
	"github.com/attune-cli/attune/internal/domain"
)

type NudgeService interface {
	Recommend(ctx context.Context, req app.NudgeRequest) (*app.NudgeResponse, error)
	History(ctx context.Context, userID string, limit int) ([]*domain.NudgeRecord, error)
}

// LogOutcomeRequest records what the user did with a delivered nudge. An
// empty NudgeID resolves to the user's most recent nudge.
type LogOutcomeRequest struct {
	UserID  string
	NudgeID string
	Outcome domain.Outcome
	Reason  string
}

type InteractionService interface {
	Log(ctx context.Context, req LogOutcomeRequest) (*domain.Interaction, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Interaction, error)
}

// ProfileView pairs a profile with where it came from.
type ProfileView struct {
	Profile    *domain.PersonalityProfile
	Overridden bool
}

type ProfileService interface {
	Get(ctx context.Context, typeID string) (*ProfileView, error)
	List(ctx context.Context) ([]ProfileView, error)
	SetOverride(ctx context.Context, p *domain.PersonalityProfile) error
	ResetOverride(ctx context.Context, typeID string) error
}

// ProfileInsight is the per-personality-type effectiveness report.
type ProfileInsight struct {
	ProfileID      string
	Total          int
	Accepted       int
	Dismissed      int
	Ignored        int
	AcceptanceRate float64
}

// TemplateInsight is the per-template effectiveness report.
type TemplateInsight struct {
	TemplateID     string
	Total          int
	Accepted       int
	Dismissed      int
	AcceptanceRate float64
}

// InsightsReport aggregates interaction outcomes for the stats command.
// Reporting only; nothing here feeds back into selection.
type InsightsReport struct {
	Profiles  []ProfileInsight
	Templates []TemplateInsight
}

type InsightsService interface {
	Report(ctx context.Context) (*InsightsReport, error)
}
