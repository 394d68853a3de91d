package repository

import (
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNotificationSettingsRepository is a GORM implementation of
// NotificationSettingsRepository
type GormNotificationSettingsRepository struct {
	db *gorm.DB
}

// NewNotificationSettingsRepository creates a new NotificationSettingsRepository
func NewNotificationSettingsRepository(db *gorm.DB) NotificationSettingsRepository {
	return &GormNotificationSettingsRepository{db: db}
}

// Find finds the settings for a user
func (r *GormNotificationSettingsRepository) Find(userID models.UserID) (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	if err := r.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save creates or overwrites the settings for a user
func (r *GormNotificationSettingsRepository) Save(settings *models.NotificationSettings) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"invitations", "review_reminders", "progress_updates", "team_updates", "updated_at",
			}),
		}).
		Create(settings).Error
}
