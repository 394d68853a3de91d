package models

import "time"

// NotificationSettings holds a user's notification preferences. A record is
// created with every flag enabled the first time it is read.
type NotificationSettings struct {
	UserID          UserID    `gorm:"type:varchar(26);primarykey" json:"user_id"`
	Invitations     bool      `gorm:"not null;default:true" json:"invitations"`
	ReviewReminders bool      `gorm:"not null;default:true" json:"review_reminders"`
	ProgressUpdates bool      `gorm:"not null;default:true" json:"progress_updates"`
	TeamUpdates     bool      `gorm:"not null;default:true" json:"team_updates"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultNotificationSettings returns the settings used on first access.
func DefaultNotificationSettings(userID UserID) *NotificationSettings {
	return &NotificationSettings{
		UserID:          userID,
		Invitations:     true,
		ReviewReminders: true,
		ProgressUpdates: true,
		TeamUpdates:     true,
	}
}
