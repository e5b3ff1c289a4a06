package repository

import (
	"context"
	"errors"
	"time"

	"github.com/attune-cli/attune/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// HistoryWindow is the number of nudge log entries kept per user. The log is
// a rolling window, not an archive; Append trims older rows.
const HistoryWindow = 10

// ProfileOverrideRepo stores user-customized personality profiles. Lookups
// that miss here fall back to the built-in catalog.
type ProfileOverrideRepo interface {
	Get(ctx context.Context, typeID string) (*domain.PersonalityProfile, error)
	List(ctx context.Context) ([]*domain.PersonalityProfile, error)
	Upsert(ctx context.Context, p *domain.PersonalityProfile) error
	Delete(ctx context.Context, typeID string) error
}

type NudgeLogRepo interface {
	Append(ctx context.Context, rec *domain.NudgeRecord) error
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.NudgeRecord, error)
	LastForUser(ctx context.Context, userID string) (*domain.NudgeRecord, error)
	CountSince(ctx context.Context, userID string, since time.Time) (int, error)
}

// ProfileInteractionSummary aggregates interaction outcomes per personality type.
type ProfileInteractionSummary struct {
	ProfileID string
	Total     int
	Accepted  int
	Dismissed int
	Ignored   int
}

// TemplateInteractionSummary aggregates interaction outcomes per template.
type TemplateInteractionSummary struct {
	TemplateID string
	Total      int
	Accepted   int
	Dismissed  int
}

type InteractionRepo interface {
	Create(ctx context.Context, in *domain.Interaction) error
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Interaction, error)
	SummaryByProfile(ctx context.Context) ([]ProfileInteractionSummary, error)
	SummaryByTemplate(ctx context.Context) ([]TemplateInteractionSummary, error)
}
