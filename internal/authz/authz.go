// Package authz decides whether a team role may perform an action. Roles are
// strictly ordered viewer < member < admin; a user without a membership row
// has RoleNone, which satisfies no action.
package authz

import "github.com/tuanemuy/okr-manager-sub001/internal/models"

type Action string

const (
	ActionView             Action = "view"
	ActionCreateOkr        Action = "create_okr"
	ActionEditOkr          Action = "edit_okr"
	ActionDeleteOkr        Action = "delete_okr"
	ActionCreateReview     Action = "create_review"
	ActionEditReview       Action = "edit_review"
	ActionDeleteReview     Action = "delete_review"
	ActionInviteMember     Action = "invite_member"
	ActionChangeRole       Action = "change_role"
	ActionRemoveMember     Action = "remove_member"
	ActionEditTeamSettings Action = "edit_team_settings"
	ActionDeleteTeam       Action = "delete_team"
)

// minRole maps each action to the lowest role allowed to perform it.
var minRole = map[Action]models.Role{
	ActionView:             models.RoleViewer,
	ActionCreateOkr:        models.RoleMember,
	ActionCreateReview:     models.RoleMember,
	ActionEditOkr:          models.RoleAdmin,
	ActionDeleteOkr:        models.RoleAdmin,
	ActionEditReview:       models.RoleAdmin,
	ActionDeleteReview:     models.RoleAdmin,
	ActionInviteMember:     models.RoleAdmin,
	ActionChangeRole:       models.RoleAdmin,
	ActionRemoveMember:     models.RoleAdmin,
	ActionEditTeamSettings: models.RoleAdmin,
	ActionDeleteTeam:       models.RoleAdmin,
}

func rank(r models.Role) int {
	switch r {
	case models.RoleViewer:
		return 1
	case models.RoleMember:
		return 2
	case models.RoleAdmin:
		return 3
	default:
		return 0
	}
}

// CanPerform reports whether a role clears the bar for an action, ignoring
// ownership. Unknown actions are denied.
func CanPerform(role models.Role, action Action) bool {
	min, ok := minRole[action]
	if !ok {
		return false
	}
	return rank(role) >= rank(min)
}

// CanPerformOwned reports whether a role may perform an action on a resource,
// where owners of the resource get the self-ownership override for
// edit/delete actions that would otherwise require admin.
func CanPerformOwned(role models.Role, action Action, isOwner bool) bool {
	if CanPerform(role, action) {
		return true
	}
	if !isOwner {
		return false
	}
	switch action {
	case ActionEditOkr, ActionEditReview, ActionDeleteReview:
		// The owner override still requires a real membership.
		return rank(role) >= rank(models.RoleViewer)
	}
	return false
}
