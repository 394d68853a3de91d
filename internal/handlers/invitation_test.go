package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuanemuy/okr-manager-sub001/internal/database"
	"github.com/tuanemuy/okr-manager-sub001/internal/dto"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"github.com/tuanemuy/okr-manager-sub001/internal/repository"
	"github.com/tuanemuy/okr-manager-sub001/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type invitationTestEnv struct {
	db      *gorm.DB
	handler *InvitationHandler
	service *services.InvitationService
	admin   *models.User
	team    *models.Team
}

func setupInvitationTestEnv(t *testing.T) invitationTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Invitation{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)
	service := services.NewInvitationService(repository.NewInvitationRepository(db), teamRepo, userRepo)
	handler := NewInvitationHandler(service)

	admin, err := services.NewAuthService(userRepo).Signup(services.SignupInput{
		Email:       "admin@example.com",
		DisplayName: "Admin",
		Password:    "supersecret",
	})
	require.NoError(t, err)

	team, err := services.NewTeamService(teamRepo).CreateTeam(services.CreateTeamInput{
		Name:      "Platform",
		CreatorID: admin.ID,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return invitationTestEnv{
		db:      db,
		handler: handler,
		service: service,
		admin:   admin,
		team:    team,
	}
}

func TestInvitationHandler_ListInvitations_FilterByEmail(t *testing.T) {
	env := setupInvitationTestEnv(t)

	for _, email := range []string{"first@example.com", "second@example.com"} {
		_, err := env.service.Invite(services.InviteInput{
			TeamID:  env.team.ID,
			ActorID: env.admin.ID,
			Email:   email,
			Role:    models.RoleMember,
		})
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodGet,
		"/api/invitations?team_id="+string(env.team.ID)+"&invited_email=First@Example.com",
		nil, env.admin.ID)

	env.handler.ListInvitations(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.InvitationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, int64(1), response.TotalCount)
	require.Len(t, response.Invitations, 1)
	require.Equal(t, "first@example.com", response.Invitations[0].InvitedEmail)
}

func TestInvitationHandler_ListInvitations_StatusFilter(t *testing.T) {
	env := setupInvitationTestEnv(t)

	invitee, err := services.NewAuthService(repository.NewUserRepository(env.db)).Signup(services.SignupInput{
		Email:       "invitee@example.com",
		DisplayName: "Invitee",
		Password:    "supersecret",
	})
	require.NoError(t, err)

	invitation, err := env.service.Invite(services.InviteInput{
		TeamID:  env.team.ID,
		ActorID: env.admin.ID,
		Email:   invitee.Email,
		Role:    models.RoleMember,
	})
	require.NoError(t, err)
	_, err = env.service.Invite(services.InviteInput{
		TeamID:  env.team.ID,
		ActorID: env.admin.ID,
		Email:   "pending@example.com",
		Role:    models.RoleViewer,
	})
	require.NoError(t, err)

	_, err = env.service.Reject(invitation.ID, invitee.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodGet,
		"/api/invitations?team_id="+string(env.team.ID)+"&status=pending",
		nil, env.admin.ID)

	env.handler.ListInvitations(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.InvitationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, int64(1), response.TotalCount)
	require.Equal(t, models.InvitationStatusPending, response.Invitations[0].Status)
}
