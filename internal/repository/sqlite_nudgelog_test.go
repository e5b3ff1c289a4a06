package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/attune-cli/attune/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNudgeLogRepo_AppendAndListRecent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNudgeLogRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	r1 := testutil.NewTestNudgeRecord("alice", "INTJ", testutil.WithNudgeCreatedAt(base))
	r2 := testutil.NewTestNudgeRecord("alice", "INTJ",
		testutil.WithNudgeTemplate("focus"),
		testutil.WithNudgeCreatedAt(base.Add(30*time.Minute)))
	require.NoError(t, repo.Append(ctx, r1))
	require.NoError(t, repo.Append(ctx, r2))

	list, err := repo.ListRecent(ctx, "alice", 5)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Most recent first.
	assert.Equal(t, r2.ID, list[0].ID)
	assert.Equal(t, "focus", list[0].TemplateID)
	assert.Equal(t, r1.ID, list[1].ID)
}

func TestNudgeLogRepo_Append_TrimsToWindow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNudgeLogRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < HistoryWindow+3; i++ {
		rec := testutil.NewTestNudgeRecord("bob", "ENTJ",
			testutil.WithNudgeTemplate(fmt.Sprintf("tmpl-%02d", i)),
			testutil.WithNudgeCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Append(ctx, rec))
	}

	list, err := repo.ListRecent(ctx, "bob", 0)
	require.NoError(t, err)
	require.Len(t, list, HistoryWindow)
	// Oldest three rows were trimmed; newest survives.
	assert.Equal(t, "tmpl-12", list[0].TemplateID)
	assert.Equal(t, "tmpl-03", list[len(list)-1].TemplateID)
}

func TestNudgeLogRepo_Trim_IsPerUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNudgeLogRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < HistoryWindow+2; i++ {
		rec := testutil.NewTestNudgeRecord("carol", "ENFP",
			testutil.WithNudgeCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Append(ctx, rec))
	}
	other := testutil.NewTestNudgeRecord("dave", "ISTJ", testutil.WithNudgeCreatedAt(base))
	require.NoError(t, repo.Append(ctx, other))

	carol, err := repo.ListRecent(ctx, "carol", 0)
	require.NoError(t, err)
	assert.Len(t, carol, HistoryWindow)

	dave, err := repo.ListRecent(ctx, "dave", 0)
	require.NoError(t, err)
	assert.Len(t, dave, 1)
}

func TestNudgeLogRepo_LastForUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNudgeLogRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	r1 := testutil.NewTestNudgeRecord("erin", "INTP", testutil.WithNudgeCreatedAt(base))
	r2 := testutil.NewTestNudgeRecord("erin", "INTP", testutil.WithNudgeCreatedAt(base.Add(time.Hour)))
	require.NoError(t, repo.Append(ctx, r1))
	require.NoError(t, repo.Append(ctx, r2))

	last, err := repo.LastForUser(ctx, "erin")
	require.NoError(t, err)
	assert.Equal(t, r2.ID, last.ID)
}

func TestNudgeLogRepo_LastForUser_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNudgeLogRepo(db)

	_, err := repo.LastForUser(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNudgeLogRepo_CountSince(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNudgeLogRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		rec := testutil.NewTestNudgeRecord("frank", "ESTP",
			testutil.WithNudgeCreatedAt(base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, repo.Append(ctx, rec))
	}

	count, err := repo.CountSince(ctx, "frank", base.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = repo.CountSince(ctx, "frank", base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
