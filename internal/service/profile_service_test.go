package service

import (
	"context"
	"testing"

	"github.com/attune-cli/attune/internal/contract"
	"github.com/attune-cli/attune/internal/domain"
	"github.com/attune-cli/attune/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_Get_Builtin(t *testing.T) {
	f := newServiceFixture(t)

	view, err := f.profileSvc.Get(context.Background(), "INTJ")
	require.NoError(t, err)
	assert.False(t, view.Overridden)
	assert.Equal(t, 0.8, view.Profile.CognitiveLoadThreshold)
}

func TestProfileService_Get_OverrideShadowsBuiltin(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	override := testutil.NewTestProfile("INTJ", testutil.WithLoadThreshold(0.9))
	require.NoError(t, f.profileSvc.SetOverride(ctx, override))

	view, err := f.profileSvc.Get(ctx, "INTJ")
	require.NoError(t, err)
	assert.True(t, view.Overridden)
	assert.Equal(t, 0.9, view.Profile.CognitiveLoadThreshold)
}

func TestProfileService_Get_Unknown(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.profileSvc.Get(context.Background(), "ZZZZ")
	require.Error(t, err)

	var nudgeErr *contract.NudgeError
	require.ErrorAs(t, err, &nudgeErr)
	assert.Equal(t, contract.ErrInvalidProfileKey, nudgeErr.Code)
}

func TestProfileService_List_CatalogOrderWithOverrides(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	require.NoError(t, f.profileSvc.SetOverride(ctx, testutil.NewTestProfile("ENTJ")))

	views, err := f.profileSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, len(f.catalog.ProfileIDs()))

	assert.Equal(t, "INTJ", views[0].Profile.TypeID)
	assert.False(t, views[0].Overridden)
	assert.Equal(t, "ENTJ", views[2].Profile.TypeID)
	assert.True(t, views[2].Overridden)
}

func TestProfileService_List_IncludesOverrideOnlyTypes(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	custom := testutil.NewTestProfile("XXXX")
	require.NoError(t, f.profileSvc.SetOverride(ctx, custom))

	views, err := f.profileSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, len(f.catalog.ProfileIDs())+1)

	last := views[len(views)-1]
	assert.Equal(t, "XXXX", last.Profile.TypeID)
	assert.True(t, last.Overridden)
}

func TestProfileService_SetOverride_RejectsInvalid(t *testing.T) {
	f := newServiceFixture(t)

	bad := testutil.NewTestProfile("INTJ", testutil.WithLoadThreshold(1.5))
	err := f.profileSvc.SetOverride(context.Background(), bad)
	require.Error(t, err)

	var nudgeErr *contract.NudgeError
	require.ErrorAs(t, err, &nudgeErr)
	assert.Equal(t, contract.ErrInvalidProfileKey, nudgeErr.Code)
}

func TestProfileService_SetOverride_RejectsBadWorkPattern(t *testing.T) {
	f := newServiceFixture(t)

	bad := testutil.NewTestProfile("INTJ")
	bad.WorkPattern = domain.WorkPattern("frantic")
	err := f.profileSvc.SetOverride(context.Background(), bad)
	assert.Error(t, err)
}

func TestProfileService_ResetOverride(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	require.NoError(t, f.profileSvc.SetOverride(ctx, testutil.NewTestProfile("INTJ", testutil.WithLoadThreshold(0.9))))
	require.NoError(t, f.profileSvc.ResetOverride(ctx, "INTJ"))

	view, err := f.profileSvc.Get(ctx, "INTJ")
	require.NoError(t, err)
	assert.False(t, view.Overridden)
	assert.Equal(t, 0.8, view.Profile.CognitiveLoadThreshold)
}

func TestProfileService_ResetOverride_NothingStored(t *testing.T) {
	f := newServiceFixture(t)

	err := f.profileSvc.ResetOverride(context.Background(), "INTJ")
	require.Error(t, err)

	var nudgeErr *contract.NudgeError
	require.ErrorAs(t, err, &nudgeErr)
	assert.Equal(t, contract.ErrInvalidProfileKey, nudgeErr.Code)
}
