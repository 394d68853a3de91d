package models

import "time"

type Role string

const (
	// RoleNone is the role of a user with no membership row. It satisfies
	// no action, including view.
	RoleNone   Role = ""
	RoleViewer Role = "viewer"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a role that can be stored on a membership.
func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleMember, RoleAdmin:
		return true
	}
	return false
}

// TeamMember links a user to a team at a given role. The composite primary
// key guarantees at most one row per (team, user) pair.
type TeamMember struct {
	TeamID   TeamID    `gorm:"type:varchar(26);primarykey" json:"team_id"`
	UserID   UserID    `gorm:"type:varchar(26);primarykey" json:"user_id"`
	Role     Role      `gorm:"type:varchar(20);not null" json:"role"`
	JoinedAt time.Time `json:"joined_at"`

	// Relations
	Team Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
