package services

import (
	"errors"
	"fmt"

	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"github.com/tuanemuy/okr-manager-sub001/internal/repository"
	"gorm.io/gorm"
)

// NotificationService manages per-user notification preferences.
type NotificationService struct {
	settingsRepo repository.NotificationSettingsRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(settingsRepo repository.NotificationSettingsRepository) *NotificationService {
	return &NotificationService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings returns the user's notification settings, creating the record
// with every flag enabled on first access.
func (s *NotificationService) GetSettings(userID models.UserID) (*models.NotificationSettings, error) {
	settings, err := s.settingsRepo.Find(userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find notification settings: %w", err)
	}

	settings = models.DefaultNotificationSettings(userID)
	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to create notification settings: %w", err)
	}

	return settings, nil
}

// UpdateSettingsInput carries the full set of notification flags; the update
// overwrites the stored record.
type UpdateSettingsInput struct {
	Invitations     bool
	ReviewReminders bool
	ProgressUpdates bool
	TeamUpdates     bool
}

// UpdateSettings overwrites the user's notification settings.
func (s *NotificationService) UpdateSettings(userID models.UserID, input UpdateSettingsInput) (*models.NotificationSettings, error) {
	settings := &models.NotificationSettings{
		UserID:          userID,
		Invitations:     input.Invitations,
		ReviewReminders: input.ReviewReminders,
		ProgressUpdates: input.ProgressUpdates,
		TeamUpdates:     input.TeamUpdates,
	}

	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to update notification settings: %w", err)
	}

	return settings, nil
}
