package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           UserID         `gorm:"type:varchar(26);primarykey" json:"id"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DisplayName  string         `gorm:"type:varchar(255);not null" json:"display_name"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Memberships []TeamMember `gorm:"foreignKey:UserID" json:"-"`
	OwnedOkrs   []Okr        `gorm:"foreignKey:OwnerID" json:"-"`
}
