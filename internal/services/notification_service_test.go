package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuanemuy/okr-manager-sub001/internal/repository"
)

func TestNotificationService_GetSettings_CreatesDefaults(t *testing.T) {
	db := openTestDB(t)
	service := NewNotificationService(repository.NewNotificationSettingsRepository(db))

	user := createTestUser(t, db, "user@example.com")

	settings, err := service.GetSettings(user.ID)
	require.NoError(t, err)
	require.True(t, settings.Invitations)
	require.True(t, settings.ReviewReminders)
	require.True(t, settings.ProgressUpdates)
	require.True(t, settings.TeamUpdates)
}

func TestNotificationService_UpdateSettings(t *testing.T) {
	db := openTestDB(t)
	service := NewNotificationService(repository.NewNotificationSettingsRepository(db))

	user := createTestUser(t, db, "user@example.com")

	updated, err := service.UpdateSettings(user.ID, UpdateSettingsInput{
		Invitations:     true,
		ReviewReminders: false,
		ProgressUpdates: false,
		TeamUpdates:     true,
	})
	require.NoError(t, err)
	require.False(t, updated.ReviewReminders)

	// The update persists across reads.
	settings, err := service.GetSettings(user.ID)
	require.NoError(t, err)
	require.True(t, settings.Invitations)
	require.False(t, settings.ReviewReminders)
	require.False(t, settings.ProgressUpdates)
	require.True(t, settings.TeamUpdates)
}
