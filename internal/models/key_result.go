package models

import (
	"time"

	"gorm.io/gorm"
)

// KeyResult is a quantitative target under an Okr. CurrentValue may exceed
// TargetValue; the progress computation clamps the contribution at 100%.
type KeyResult struct {
	ID           KeyResultID    `gorm:"type:varchar(26);primarykey" json:"id"`
	OkrID        OkrID          `gorm:"type:varchar(26);not null;index" json:"okr_id"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	TargetValue  float64        `gorm:"not null" json:"target_value"`
	CurrentValue float64        `gorm:"not null;default:0" json:"current_value"`
	Unit         string         `gorm:"type:varchar(50)" json:"unit"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Okr Okr `gorm:"foreignKey:OkrID" json:"okr,omitempty"`
}
