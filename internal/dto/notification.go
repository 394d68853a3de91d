package dto

import "github.com/tuanemuy/okr-manager-sub001/internal/models"

// NotificationSettingsDTO represents notification preferences in API responses
type NotificationSettingsDTO struct {
	Invitations     bool `json:"invitations"`
	ReviewReminders bool `json:"review_reminders"`
	ProgressUpdates bool `json:"progress_updates"`
	TeamUpdates     bool `json:"team_updates"`
}

// ToNotificationSettingsDTO converts settings to DTO
func ToNotificationSettingsDTO(settings models.NotificationSettings) NotificationSettingsDTO {
	return NotificationSettingsDTO{
		Invitations:     settings.Invitations,
		ReviewReminders: settings.ReviewReminders,
		ProgressUpdates: settings.ProgressUpdates,
		TeamUpdates:     settings.TeamUpdates,
	}
}
