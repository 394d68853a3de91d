package models

import (
	"time"

	"gorm.io/gorm"
)

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"
)

// Valid reports whether s is a known invitation status.
func (s InvitationStatus) Valid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusRejected:
		return true
	}
	return false
}

// Invitation is a pending offer of team membership sent to an email address.
// At most one pending invitation may exist per (team, email) pair; the
// transitions pending -> accepted and pending -> rejected are terminal.
type Invitation struct {
	ID           InvitationID     `gorm:"type:varchar(26);primarykey" json:"id"`
	TeamID       TeamID           `gorm:"type:varchar(26);not null;index" json:"team_id"`
	InvitedEmail string           `gorm:"type:varchar(255);not null;index" json:"invited_email"`
	InvitedByID  UserID           `gorm:"type:varchar(26);not null" json:"invited_by_id"`
	Role         Role             `gorm:"type:varchar(20);not null" json:"role"`
	Status       InvitationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relations
	Team      Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	InvitedBy User `gorm:"foreignKey:InvitedByID" json:"invited_by,omitempty"`
}
