package service

import (
	"context"
	"fmt"
	"time"

	"github.com/attune-cli/attune/internal/app"
	"github.com/attune-cli/attune/internal/catalog"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/engine"
	"github.com/attune-cli/attune/internal/repository"
	"github.com/google/uuid"
)

type nudgeService struct {
	loader   *ContextLoader
	catalog  *catalog.Catalog
	nudges   repository.NudgeLogRepo
	observer UseCaseObserver
}

func NewNudgeService(
	cat *catalog.Catalog,
	overrides repository.ProfileOverrideRepo,
	nudges repository.NudgeLogRepo,
	interactions repository.InteractionRepo,
	observers ...UseCaseObserver,
) NudgeService {
	return &nudgeService{
		loader: &ContextLoader{
			catalog:      cat,
			overrides:    overrides,
			nudges:       nudges,
			interactions: interactions,
		},
		catalog:  cat,
		nudges:   nudges,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *nudgeService) Recommend(ctx context.Context, req app.NudgeRequest) (resp *app.NudgeResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"user":    req.UserID,
		"profile": req.ProfileID,
		"dry_run": req.DryRun,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "recommend-nudge",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	rctx, err := s.loader.Load(ctx, req)
	if err != nil {
		return nil, err
	}

	load := engine.EstimateLoad(rctx.Context)
	timingScore := engine.TimingScore(rctx.Context)
	fields["load"] = load
	fields["timing_score"] = timingScore

	if gate := EvaluateGates(rctx, load, timingScore); gate != nil {
		fields["gate"] = string(gate.Code)
		return AssembleResponse(rctx, nil, load, timingScore, gate), nil
	}

	scored := engine.Select(engine.SelectionInput{
		Context: rctx.Context,
		Profile: rctx.Profile,
		Load:    load,
	}, s.catalog.Templates())

	actions, personalizeReasons := engine.Personalize(scored.Template.Actions, rctx.Profile)

	rec := &app.Recommendation{
		NudgeID:     uuid.New().String(),
		TemplateID:  scored.Template.TemplateID,
		Actions:     actions,
		TimingScore: timingScore,
		Load:        load,
		Reasons:     append(scored.Reasons, personalizeReasons...),
		FollowUp:    scored.Template.FollowUp,
	}
	fields["template"] = rec.TemplateID

	if !req.DryRun {
		record := &domain.NudgeRecord{
			ID:          rec.NudgeID,
			UserID:      rctx.Context.UserID,
			ProfileID:   rctx.Profile.TypeID,
			TemplateID:  rec.TemplateID,
			TimingScore: timingScore,
			Load:        load,
			CreatedAt:   rctx.Now,
		}
		if err = s.nudges.Append(ctx, record); err != nil {
			return nil, fmt.Errorf("recording nudge: %w", err)
		}
	}

	return AssembleResponse(rctx, rec, load, timingScore, nil), nil
}

func (s *nudgeService) History(ctx context.Context, userID string, limit int) ([]*domain.NudgeRecord, error) {
	return s.nudges.ListRecent(ctx, userID, limit)
}
