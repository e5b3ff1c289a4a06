package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attune-cli/attune/internal/catalog"
	"github.com/attune-cli/attune/internal/contract"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/repository"
)

type profileService struct {
	catalog   *catalog.Catalog
	overrides repository.ProfileOverrideRepo
	observer  UseCaseObserver
}

func NewProfileService(
	cat *catalog.Catalog,
	overrides repository.ProfileOverrideRepo,
	observers ...UseCaseObserver,
) ProfileService {
	return &profileService{
		catalog:   cat,
		overrides: overrides,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Get(ctx context.Context, typeID string) (*ProfileView, error) {
	p, err := s.overrides.Get(ctx, typeID)
	if err == nil {
		return &ProfileView{Profile: p, Overridden: true}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading profile override: %w", err)
	}

	if builtin, ok := s.catalog.Profile(typeID); ok {
		return &ProfileView{Profile: &builtin}, nil
	}
	return nil, &contract.NudgeError{
		Code:    contract.ErrInvalidProfileKey,
		Message: fmt.Sprintf("unknown personality type %q", typeID),
	}
}

// List returns every known personality type in catalog order, with overrides
// applied where present. Override-only types not in the catalog come last.
func (s *profileService) List(ctx context.Context) ([]ProfileView, error) {
	overrides, err := s.overrides.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing profile overrides: %w", err)
	}
	byID := make(map[string]*domain.PersonalityProfile, len(overrides))
	for _, o := range overrides {
		byID[o.TypeID] = o
	}

	var views []ProfileView
	for _, id := range s.catalog.ProfileIDs() {
		if o, ok := byID[id]; ok {
			views = append(views, ProfileView{Profile: o, Overridden: true})
			delete(byID, id)
			continue
		}
		p, _ := s.catalog.Profile(id)
		views = append(views, ProfileView{Profile: &p})
	}
	for _, o := range overrides {
		if _, remains := byID[o.TypeID]; remains {
			views = append(views, ProfileView{Profile: o, Overridden: true})
		}
	}
	return views, nil
}

func (s *profileService) SetOverride(ctx context.Context, p *domain.PersonalityProfile) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "set-profile-override",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"profile": p.TypeID},
		})
	}()

	if err = p.Validate(); err != nil {
		return &contract.NudgeError{
			Code:    contract.ErrInvalidProfileKey,
			Message: err.Error(),
		}
	}
	return s.overrides.Upsert(ctx, p)
}

func (s *profileService) ResetOverride(ctx context.Context, typeID string) error {
	if _, err := s.overrides.Get(ctx, typeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &contract.NudgeError{
				Code:    contract.ErrInvalidProfileKey,
				Message: fmt.Sprintf("no override stored for %q", typeID),
			}
		}
		return err
	}
	return s.overrides.Delete(ctx, typeID)
}
