package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/attune-cli/attune/internal/contract"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/repository"
	"github.com/attune-cli/attune/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionService_Log_ResolvesLastNudge(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	now := testClock()

	older := testutil.NewTestNudgeRecord("alice", "INTJ",
		testutil.WithNudgeCreatedAt(now.Add(-2*time.Hour)))
	newest := testutil.NewTestNudgeRecord("alice", "INTJ",
		testutil.WithNudgeTemplate("focus"),
		testutil.WithNudgeCreatedAt(now.Add(-time.Hour)))
	require.NoError(t, f.nudges.Append(ctx, older))
	require.NoError(t, f.nudges.Append(ctx, newest))

	in, err := f.interactionSvc.Log(ctx, LogOutcomeRequest{
		UserID:  "alice",
		Outcome: domain.OutcomeAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, newest.ID, in.NudgeID)
	assert.Equal(t, "focus", in.TemplateID)
	assert.Equal(t, "INTJ", in.ProfileID)

	stored, err := f.interactionSvc.ListRecent(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, domain.OutcomeAccepted, stored[0].Outcome)
}

func TestInteractionService_Log_ExplicitNudgeID(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	now := testClock()

	target := testutil.NewTestNudgeRecord("alice", "INTJ",
		testutil.WithNudgeCreatedAt(now.Add(-2*time.Hour)))
	newest := testutil.NewTestNudgeRecord("alice", "INTJ",
		testutil.WithNudgeCreatedAt(now.Add(-time.Hour)))
	require.NoError(t, f.nudges.Append(ctx, target))
	require.NoError(t, f.nudges.Append(ctx, newest))

	in, err := f.interactionSvc.Log(ctx, LogOutcomeRequest{
		UserID:  "alice",
		NudgeID: target.ID,
		Outcome: domain.OutcomeDismissed,
		Reason:  "busy",
	})
	require.NoError(t, err)
	assert.Equal(t, target.ID, in.NudgeID)
	assert.Equal(t, "busy", in.Reason)
}

func TestInteractionService_Log_NoHistory(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.interactionSvc.Log(context.Background(), LogOutcomeRequest{
		UserID:  "nobody",
		Outcome: domain.OutcomeAccepted,
	})
	require.Error(t, err)

	var nudgeErr *contract.NudgeError
	require.ErrorAs(t, err, &nudgeErr)
	assert.Equal(t, contract.ErrInvalidContext, nudgeErr.Code)
}

func TestInteractionService_Log_UnknownNudgeID(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	rec := testutil.NewTestNudgeRecord("alice", "INTJ")
	require.NoError(t, f.nudges.Append(ctx, rec))

	_, err := f.interactionSvc.Log(ctx, LogOutcomeRequest{
		UserID:  "alice",
		NudgeID: "no-such-nudge",
		Outcome: domain.OutcomeAccepted,
	})
	require.Error(t, err)

	var nudgeErr *contract.NudgeError
	require.ErrorAs(t, err, &nudgeErr)
	assert.Equal(t, contract.ErrInvalidContext, nudgeErr.Code)
}

func TestInteractionService_Log_RejectsUnknownOutcome(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.interactionSvc.Log(context.Background(), LogOutcomeRequest{
		UserID:  "alice",
		Outcome: domain.Outcome("shrugged"),
	})
	require.Error(t, err)

	var nudgeErr *contract.NudgeError
	require.ErrorAs(t, err, &nudgeErr)
	assert.Equal(t, contract.ErrInvalidContext, nudgeErr.Code)
}

func TestInteractionService_Log_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	nudges := repository.NewSQLiteNudgeLogRepo(database)
	interactions := repository.NewSQLiteInteractionRepo(database)

	rec := testutil.NewTestNudgeRecord("alice", "INTJ")
	require.NoError(t, nudges.Append(ctx, rec))

	injected := errors.New("disk full")
	svc := NewInteractionService(interactions, &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 1,
		Err:    injected,
	})

	_, err := svc.Log(ctx, LogOutcomeRequest{
		UserID:  "alice",
		Outcome: domain.OutcomeAccepted,
	})
	require.ErrorIs(t, err, injected)

	stored, err := interactions.ListRecent(ctx, "alice", 10)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
