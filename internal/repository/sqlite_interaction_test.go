package repository

import (
	"context"
	"testing"
	"time"

	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionRepo_CreateAndListRecent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInteractionRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	i1 := testutil.NewTestInteraction("alice", "nudge-1", "INTJ",
		testutil.WithInteractionCreatedAt(base))
	i2 := testutil.NewTestInteraction("alice", "nudge-2", "INTJ",
		testutil.WithOutcome(domain.OutcomeDismissed),
		testutil.WithInteractionCreatedAt(base.Add(time.Hour)))
	require.NoError(t, repo.Create(ctx, i1))
	require.NoError(t, repo.Create(ctx, i2))

	list, err := repo.ListRecent(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, i2.ID, list[0].ID)
	assert.Equal(t, domain.OutcomeDismissed, list[0].Outcome)
	assert.Equal(t, i1.ID, list[1].ID)
	assert.Equal(t, domain.OutcomeAccepted, list[1].Outcome)
}

func TestInteractionRepo_ListRecent_Limit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInteractionRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		in := testutil.NewTestInteraction("bob", "nudge-x", "ENTJ",
			testutil.WithInteractionCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Create(ctx, in))
	}

	list, err := repo.ListRecent(ctx, "bob", 3)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestInteractionRepo_SummaryByProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInteractionRepo(db)
	ctx := context.Background()

	seed := []struct {
		profile string
		outcome domain.Outcome
	}{
		{"INTJ", domain.OutcomeAccepted},
		{"INTJ", domain.OutcomeAccepted},
		{"INTJ", domain.OutcomeDismissed},
		{"ENFP", domain.OutcomeIgnored},
	}
	for _, s := range seed {
		in := testutil.NewTestInteraction("u", "n", s.profile, testutil.WithOutcome(s.outcome))
		require.NoError(t, repo.Create(ctx, in))
	}

	summaries, err := repo.SummaryByProfile(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "ENFP", summaries[0].ProfileID)
	assert.Equal(t, 1, summaries[0].Total)
	assert.Equal(t, 1, summaries[0].Ignored)

	assert.Equal(t, "INTJ", summaries[1].ProfileID)
	assert.Equal(t, 3, summaries[1].Total)
	assert.Equal(t, 2, summaries[1].Accepted)
	assert.Equal(t, 1, summaries[1].Dismissed)
}

func TestInteractionRepo_SummaryByTemplate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInteractionRepo(db)
	ctx := context.Background()

	seed := []struct {
		template string
		outcome  domain.Outcome
	}{
		{"focus", domain.OutcomeAccepted},
		{"focus", domain.OutcomeDismissed},
		{"break", domain.OutcomeAccepted},
	}
	for _, s := range seed {
		in := testutil.NewTestInteraction("u", "n", "INTJ",
			testutil.WithInteractionTemplate(s.template),
			testutil.WithOutcome(s.outcome))
		require.NoError(t, repo.Create(ctx, in))
	}

	summaries, err := repo.SummaryByTemplate(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "break", summaries[0].TemplateID)
	assert.Equal(t, 1, summaries[0].Accepted)

	assert.Equal(t, "focus", summaries[1].TemplateID)
	assert.Equal(t, 2, summaries[1].Total)
	assert.Equal(t, 1, summaries[1].Accepted)
	assert.Equal(t, 1, summaries[1].Dismissed)
}

func TestInteractionRepo_Create_RejectsBadOutcome(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInteractionRepo(db)

	in := testutil.NewTestInteraction("u", "n", "INTJ")
	in.Outcome = domain.Outcome("maybe")
	err := repo.Create(context.Background(), in)
	assert.Error(t, err)
}
