package models

import (
	"time"

	"gorm.io/gorm"
)

type OkrType string

const (
	OkrTypeTeam     OkrType = "team"
	OkrTypePersonal OkrType = "personal"
)

// Valid reports whether t is a known OKR type.
func (t OkrType) Valid() bool {
	return t == OkrTypeTeam || t == OkrTypePersonal
}

// OkrStatus is derived from quarter and progress, never stored.
type OkrStatus string

const (
	OkrStatusActive    OkrStatus = "active"
	OkrStatusCompleted OkrStatus = "completed"
	OkrStatusOverdue   OkrStatus = "overdue"
	OkrStatusDueSoon   OkrStatus = "due_soon"
)

// Okr is an objective scoped to a team and a quarter. Personal OKRs are
// still team-scoped; the type only changes who may see them.
type Okr struct {
	ID             OkrID          `gorm:"type:varchar(26);primarykey" json:"id"`
	Title          string         `gorm:"type:varchar(255);not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Type           OkrType        `gorm:"type:varchar(20);not null;default:'team'" json:"type"`
	TeamID         TeamID         `gorm:"type:varchar(26);not null;index" json:"team_id"`
	OwnerID        UserID         `gorm:"type:varchar(26);not null;index" json:"owner_id"`
	QuarterYear    int            `gorm:"not null" json:"quarter_year"`
	QuarterQuarter int            `gorm:"not null" json:"quarter_quarter"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Team       Team        `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Owner      User        `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	KeyResults []KeyResult `gorm:"foreignKey:OkrID" json:"key_results,omitempty"`
}
