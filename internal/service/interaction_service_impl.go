package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attune-cli/attune/internal/contract"
	"github.com/attune-cli/attune/internal/db"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/repository"
	"github.com/google/uuid"
)

type interactionService struct {
	interactions repository.InteractionRepo
	uow          db.UnitOfWork
	observer     UseCaseObserver
}

func NewInteractionService(
	interactions repository.InteractionRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) InteractionService {
	return &interactionService{
		interactions: interactions,
		uow:          uow,
		observer:     useCaseObserverOrNoop(observers),
	}
}

// Log records an outcome for a delivered nudge. The nudge lookup and the
// interaction insert share a transaction so the outcome always points at a
// nudge that existed when it was recorded.
func (s *interactionService) Log(ctx context.Context, req LogOutcomeRequest) (in *domain.Interaction, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"user":    req.UserID,
		"outcome": string(req.Outcome),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "log-interaction",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.UserID == "" {
		return nil, &contract.NudgeError{
			Code:    contract.ErrInvalidContext,
			Message: "user id must not be empty",
		}
	}
	if !domain.ValidOutcomes[string(req.Outcome)] {
		return nil, &contract.NudgeError{
			Code:    contract.ErrInvalidContext,
			Message: fmt.Sprintf("unknown outcome %q", req.Outcome),
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txNudges := repository.NewSQLiteNudgeLogRepo(tx)
		txInteractions := repository.NewSQLiteInteractionRepo(tx)

		nudge, txErr := s.resolveNudge(ctx, txNudges, req)
		if txErr != nil {
			return txErr
		}

		in = &domain.Interaction{
			ID:         uuid.New().String(),
			UserID:     req.UserID,
			NudgeID:    nudge.ID,
			ProfileID:  nudge.ProfileID,
			TemplateID: nudge.TemplateID,
			Outcome:    req.Outcome,
			Reason:     req.Reason,
			CreatedAt:  time.Now().UTC(),
		}
		return txInteractions.Create(ctx, in)
	})
	if err != nil {
		return nil, err
	}
	fields["nudge_id"] = in.NudgeID
	return in, nil
}

// resolveNudge finds the nudge the outcome refers to: an explicit ID if
// given, otherwise the user's most recent nudge.
func (s *interactionService) resolveNudge(ctx context.Context, nudges repository.NudgeLogRepo, req LogOutcomeRequest) (*domain.NudgeRecord, error) {
	if req.NudgeID == "" {
		last, err := nudges.LastForUser(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &contract.NudgeError{
					Code:    contract.ErrInvalidContext,
					Message: fmt.Sprintf("no nudge history for user %q", req.UserID),
				}
			}
			return nil, err
		}
		return last, nil
	}

	recent, err := nudges.ListRecent(ctx, req.UserID, repository.HistoryWindow)
	if err != nil {
		return nil, err
	}
	for _, rec := range recent {
		if rec.ID == req.NudgeID {
			return rec, nil
		}
	}
	return nil, &contract.NudgeError{
		Code:    contract.ErrInvalidContext,
		Message: fmt.Sprintf("nudge %q not found in recent history for user %q", req.NudgeID, req.UserID),
	}
}

func (s *interactionService) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Interaction, error) {
	return s.interactions.ListRecent(ctx, userID, limit)
}
