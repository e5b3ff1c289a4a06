package service

import (
	"testing"
	"time"

	"github.com/attune-cli/attune/internal/app"
	"github.com/attune-cli/attune/internal/catalog"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/repository"
	"github.com/attune-cli/attune/internal/testutil"
	"github.com/stretchr/testify/require"
)

// serviceFixture wires real repositories over an in-memory database, the way
// main assembles the application.
type serviceFixture struct {
	catalog      *catalog.Catalog
	overrides    *repository.SQLiteProfileOverrideRepo
	nudges       *repository.SQLiteNudgeLogRepo
	interactions *repository.SQLiteInteractionRepo

	nudgeSvc       NudgeService
	interactionSvc InteractionService
	profileSvc     ProfileService
	insightsSvc    InsightsService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	database := testutil.NewTestDB(t)

	cat, err := catalog.Default()
	require.NoError(t, err)

	f := &serviceFixture{
		catalog:      cat,
		overrides:    repository.NewSQLiteProfileOverrideRepo(database),
		nudges:       repository.NewSQLiteNudgeLogRepo(database),
		interactions: repository.NewSQLiteInteractionRepo(database),
	}
	uow := testutil.NewTestUoW(database)
	f.nudgeSvc = NewNudgeService(cat, f.overrides, f.nudges, f.interactions)
	f.interactionSvc = NewInteractionService(f.interactions, uow)
	f.profileSvc = NewProfileService(cat, f.overrides)
	f.insightsSvc = NewInsightsService(f.interactions)
	return f
}

// goodMomentRequest builds a request that passes every gate for a fresh user:
// morning, high energy, medium complexity scores 0.8 on timing.
func goodMomentRequest(userID, profileID string, now time.Time, triggers ...string) app.NudgeRequest {
	req := app.NewNudgeRequest(userID, profileID, domain.UserContext{
		UserID:         userID,
		TimeOfDay:      domain.TimeMorning,
		EnergyLevel:    domain.EnergyHigh,
		TaskComplexity: domain.ComplexityMedium,
		TriggersActive: triggers,
	})
	req.Now = &now
	return req
}

func testClock() time.Time {
	return time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
}
