package service

import (
	"context"
	"fmt"

	"github.com/attune-cli/attune/internal/repository"
)

type insightsService struct {
	interactions repository.InteractionRepo
}

func NewInsightsService(interactions repository.InteractionRepo) InsightsService {
	return &insightsService{interactions: interactions}
}

// Report summarizes interaction outcomes per personality type and per
// template. Purely descriptive; selection never reads these numbers.
func (s *insightsService) Report(ctx context.Context) (*InsightsReport, error) {
	byProfile, err := s.interactions.SummaryByProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarizing by profile: %w", err)
	}
	byTemplate, err := s.interactions.SummaryByTemplate(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarizing by template: %w", err)
	}

	report := &InsightsReport{}
	for _, p := range byProfile {
		report.Profiles = append(report.Profiles, ProfileInsight{
			ProfileID:      p.ProfileID,
			Total:          p.Total,
			Accepted:       p.Accepted,
			Dismissed:      p.Dismissed,
			Ignored:        p.Ignored,
			AcceptanceRate: rate(p.Accepted, p.Total),
		})
	}
	for _, t := range byTemplate {
		report.Templates = append(report.Templates, TemplateInsight{
			TemplateID:     t.TemplateID,
			Total:          t.Total,
			Accepted:       t.Accepted,
			Dismissed:      t.Dismissed,
			AcceptanceRate: rate(t.Accepted, t.Total),
		})
	}
	return report, nil
}

func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
