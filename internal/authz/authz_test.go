package authz

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
)

func TestCanPerform_Viewer(t *testing.T) {
	require.True(t, CanPerform(models.RoleViewer, ActionView))
	require.False(t, CanPerform(models.RoleViewer, ActionCreateOkr))
	require.False(t, CanPerform(models.RoleViewer, ActionCreateReview))
	require.False(t, CanPerform(models.RoleViewer, ActionInviteMember))
}

func TestCanPerform_Member(t *testing.T) {
	require.True(t, CanPerform(models.RoleMember, ActionView))
	require.True(t, CanPerform(models.RoleMember, ActionCreateOkr))
	require.True(t, CanPerform(models.RoleMember, ActionCreateReview))
	require.False(t, CanPerform(models.RoleMember, ActionEditOkr))
	require.False(t, CanPerform(models.RoleMember, ActionDeleteOkr))
	require.False(t, CanPerform(models.RoleMember, ActionChangeRole))
	require.False(t, CanPerform(models.RoleMember, ActionDeleteTeam))
}

func TestCanPerform_Admin(t *testing.T) {
	for _, action := range []Action{
		ActionView,
		ActionCreateOkr,
		ActionEditOkr,
		ActionDeleteOkr,
		ActionCreateReview,
		ActionEditReview,
		ActionDeleteReview,
		ActionInviteMember,
		ActionChangeRole,
		ActionRemoveMember,
		ActionEditTeamSettings,
		ActionDeleteTeam,
	} {
		require.True(t, CanPerform(models.RoleAdmin, action), "admin should be allowed to %s", action)
	}
}

func TestCanPerform_NoMembership(t *testing.T) {
	require.False(t, CanPerform(models.RoleNone, ActionView))
	require.False(t, CanPerform(models.RoleNone, ActionCreateOkr))
	require.False(t, CanPerform(models.RoleNone, ActionDeleteTeam))
}

func TestCanPerform_UnknownAction(t *testing.T) {
	require.False(t, CanPerform(models.RoleAdmin, Action("launch_rocket")))
}

func TestCanPerformOwned_OwnerOverride(t *testing.T) {
	// Owners may edit their own OKRs and reviews regardless of role,
	// as long as they still hold a membership.
	require.True(t, CanPerformOwned(models.RoleMember, ActionEditOkr, true))
	require.True(t, CanPerformOwned(models.RoleViewer, ActionEditReview, true))
	require.True(t, CanPerformOwned(models.RoleMember, ActionDeleteReview, true))
}

func TestCanPerformOwned_NonOwnerStillGated(t *testing.T) {
	require.False(t, CanPerformOwned(models.RoleMember, ActionEditOkr, false))
	require.True(t, CanPerformOwned(models.RoleAdmin, ActionEditOkr, false))
}

func TestCanPerformOwned_OverrideRequiresMembership(t *testing.T) {
	require.False(t, CanPerformOwned(models.RoleNone, ActionEditOkr, true))
}

func TestCanPerformOwned_NoOverrideForOkrDeletion(t *testing.T) {
	require.False(t, CanPerformOwned(models.RoleMember, ActionDeleteOkr, true))
}
