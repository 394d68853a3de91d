package models

import (
	"time"

	"gorm.io/gorm"
)

type ReviewType string

const (
	ReviewTypeProgress ReviewType = "progress"
	ReviewTypeFinal    ReviewType = "final"
)

// Valid reports whether t is a known review type.
func (t ReviewType) Valid() bool {
	return t == ReviewTypeProgress || t == ReviewTypeFinal
}

type Review struct {
	ID         ReviewID       `gorm:"type:varchar(26);primarykey" json:"id"`
	OkrID      OkrID          `gorm:"type:varchar(26);not null;index" json:"okr_id"`
	Type       ReviewType     `gorm:"type:varchar(20);not null" json:"type"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	ReviewerID UserID         `gorm:"type:varchar(26);not null" json:"reviewer_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Okr      Okr  `gorm:"foreignKey:OkrID" json:"okr,omitempty"`
	Reviewer User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}
