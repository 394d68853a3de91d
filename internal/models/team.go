package models

import (
	"time"

	"gorm.io/gorm"
)

type ReviewFrequency string

const (
	ReviewFrequencyWeekly   ReviewFrequency = "weekly"
	ReviewFrequencyBiweekly ReviewFrequency = "biweekly"
	ReviewFrequencyMonthly  ReviewFrequency = "monthly"
)

// Valid reports whether f is one of the supported review cadences.
func (f ReviewFrequency) Valid() bool {
	switch f {
	case ReviewFrequencyWeekly, ReviewFrequencyBiweekly, ReviewFrequencyMonthly:
		return true
	}
	return false
}

type Team struct {
	ID              TeamID          `gorm:"type:varchar(26);primarykey" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	ReviewFrequency ReviewFrequency `gorm:"type:varchar(20);not null;default:'weekly'" json:"review_frequency"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relations
	Members []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	Okrs    []Okr        `gorm:"foreignKey:TeamID" json:"okrs,omitempty"`
}
