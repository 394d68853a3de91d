package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuanemuy/okr-manager-sub001/internal/database"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openGuardedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Invitation{},
		&models.Okr{},
		&models.KeyResult{},
		&models.Review{},
		&models.NotificationSettings{},
	)
	require.NoError(t, err)
	require.NoError(t, database.AddIndexes(db, "sqlite"))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func pendingInvitation(teamID models.TeamID, email string) *models.Invitation {
	return &models.Invitation{
		ID:           models.NewInvitationID(),
		TeamID:       teamID,
		InvitedEmail: email,
		InvitedByID:  models.NewUserID(),
		Role:         models.RoleMember,
		Status:       models.InvitationStatusPending,
	}
}

func TestInvitationRepository_Create_RejectsDuplicatePending(t *testing.T) {
	db := openGuardedTestDB(t)
	repo := NewInvitationRepository(db)

	teamID := models.NewTeamID()
	require.NoError(t, repo.Create(pendingInvitation(teamID, "dup@example.com")))

	// The unique index, not just the service-level pre-check, rejects the
	// second pending row for the same (team, email).
	err := repo.Create(pendingInvitation(teamID, "dup@example.com"))
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&models.Invitation{}).
		Where("team_id = ? AND invited_email = ? AND status = ?",
			teamID, "dup@example.com", models.InvitationStatusPending).
		Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestInvitationRepository_Create_AllowsPendingAfterTransition(t *testing.T) {
	db := openGuardedTestDB(t)
	repo := NewInvitationRepository(db)

	teamID := models.NewTeamID()
	first := pendingInvitation(teamID, "again@example.com")
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.UpdateStatus(first.ID, models.InvitationStatusRejected))

	// Only the pending state is guarded; a fresh invite after rejection
	// is a new pending row.
	require.NoError(t, repo.Create(pendingInvitation(teamID, "again@example.com")))
}

func TestInvitationRepository_Create_DifferentTeamsUnaffected(t *testing.T) {
	db := openGuardedTestDB(t)
	repo := NewInvitationRepository(db)

	require.NoError(t, repo.Create(pendingInvitation(models.NewTeamID(), "same@example.com")))
	require.NoError(t, repo.Create(pendingInvitation(models.NewTeamID(), "same@example.com")))
}
