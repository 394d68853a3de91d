package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tuanemuy/okr-manager-sub001/internal/constants"
	"github.com/tuanemuy/okr-manager-sub001/internal/database"
	"github.com/tuanemuy/okr-manager-sub001/internal/dto"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"github.com/tuanemuy/okr-manager-sub001/internal/repository"
	"github.com/tuanemuy/okr-manager-sub001/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type okrTestEnv struct {
	db      *gorm.DB
	handler *OkrHandler
	user    *models.User
	team    *models.Team
}

func setupOkrTestEnv(t *testing.T) okrTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Okr{},
		&models.KeyResult{},
		&models.Review{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	teamRepo := repository.NewTeamRepository(db)
	okrService := services.NewOkrService(repository.NewOkrRepository(db), teamRepo)
	handler := NewOkrHandler(okrService)

	user, err := services.NewAuthService(repository.NewUserRepository(db)).Signup(services.SignupInput{
		Email:       "owner@example.com",
		DisplayName: "Owner",
		Password:    "supersecret",
	})
	require.NoError(t, err)

	team, err := services.NewTeamService(teamRepo).CreateTeam(services.CreateTeamInput{
		Name:      "Platform",
		CreatorID: user.ID,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return okrTestEnv{
		db:      db,
		handler: handler,
		user:    user,
		team:    team,
	}
}

func jsonContext(t *testing.T, w *httptest.ResponseRecorder, method, path string, payload any, userID models.UserID) *gin.Context {
	t.Helper()

	c, _ := gin.CreateTestContext(w)

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	c.Request = httptest.NewRequest(method, path, &body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(constants.ContextKeyUserID, userID)

	return c
}

func TestOkrHandler_CreateOkr(t *testing.T) {
	env := setupOkrTestEnv(t)

	payload := map[string]any{
		"title":           "Improve reliability",
		"team_id":         env.team.ID,
		"quarter_year":    2025,
		"quarter_quarter": 3,
		"key_results": []map[string]any{
			{"title": "Close incidents", "target_value": 50, "current_value": 35},
		},
	}

	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodPost, "/api/okrs", payload, env.user.ID)

	env.handler.CreateOkr(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.OkrDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Improve reliability", response.Title)
	require.Equal(t, models.OkrTypeTeam, response.Type)
	require.Equal(t, 70, response.Progress)
	require.Len(t, response.KeyResults, 1)
	require.NotEmpty(t, response.Status)
}

func TestOkrHandler_CreateOkr_MissingKeyResults(t *testing.T) {
	env := setupOkrTestEnv(t)

	payload := map[string]any{
		"title":           "No key results",
		"team_id":         env.team.ID,
		"quarter_year":    2025,
		"quarter_quarter": 3,
	}

	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodPost, "/api/okrs", payload, env.user.ID)

	env.handler.CreateOkr(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOkrHandler_GetOkr(t *testing.T) {
	env := setupOkrTestEnv(t)

	payload := map[string]any{
		"title":           "Improve reliability",
		"team_id":         env.team.ID,
		"quarter_year":    2025,
		"quarter_quarter": 3,
		"key_results": []map[string]any{
			{"title": "Close incidents", "target_value": 50},
		},
	}

	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodPost, "/api/okrs", payload, env.user.ID)
	env.handler.CreateOkr(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.OkrDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = httptest.NewRecorder()
	c = jsonContext(t, w, http.MethodGet, "/api/okrs/"+string(created.ID), nil, env.user.ID)
	c.Params = gin.Params{{Key: "id", Value: string(created.ID)}}

	env.handler.GetOkr(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.OkrDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, created.ID, response.ID)
	require.Equal(t, 0, response.Progress)
}

func TestOkrHandler_GetOkr_NotFound(t *testing.T) {
	env := setupOkrTestEnv(t)

	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodGet, "/api/okrs/missing", nil, env.user.ID)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	env.handler.GetOkr(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOkrHandler_SearchOkrs(t *testing.T) {
	env := setupOkrTestEnv(t)

	payload := map[string]any{
		"title":           "Improve reliability",
		"team_id":         env.team.ID,
		"quarter_year":    2025,
		"quarter_quarter": 3,
		"key_results": []map[string]any{
			{"title": "Close incidents", "target_value": 50},
		},
	}
	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodPost, "/api/okrs", payload, env.user.ID)
	env.handler.CreateOkr(c)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	c = jsonContext(t, w, http.MethodGet, "/api/okrs?q=reliability", nil, env.user.ID)

	env.handler.SearchOkrs(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.OkrListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, int64(1), response.TotalCount)
	require.Len(t, response.Okrs, 1)
	require.Equal(t, 1, response.Page)
	require.Equal(t, constants.DefaultPageSize, response.PageSize)
}

func TestOkrHandler_AddKeyResult(t *testing.T) {
	env := setupOkrTestEnv(t)

	payload := map[string]any{
		"title":           "Improve reliability",
		"team_id":         env.team.ID,
		"quarter_year":    2025,
		"quarter_quarter": 3,
		"key_results": []map[string]any{
			{"title": "Close incidents", "target_value": 50},
		},
	}
	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodPost, "/api/okrs", payload, env.user.ID)
	env.handler.CreateOkr(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.OkrDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = httptest.NewRecorder()
	c = jsonContext(t, w, http.MethodPost, "/api/okrs/"+string(created.ID)+"/key-results", map[string]any{
		"title":        "Reduce p99 latency",
		"target_value": 200,
		"unit":         "ms",
	}, env.user.ID)
	c.Params = gin.Params{{Key: "id", Value: string(created.ID)}}

	env.handler.AddKeyResult(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var keyResult dto.KeyResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &keyResult))
	require.Equal(t, created.ID, keyResult.OkrID)
	require.Equal(t, "ms", keyResult.Unit)
}

func TestOkrHandler_UpdateKeyResultProgress(t *testing.T) {
	env := setupOkrTestEnv(t)

	payload := map[string]any{
		"title":           "Improve reliability",
		"team_id":         env.team.ID,
		"quarter_year":    2025,
		"quarter_quarter": 3,
		"key_results": []map[string]any{
			{"title": "Close incidents", "target_value": 50},
		},
	}
	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodPost, "/api/okrs", payload, env.user.ID)
	env.handler.CreateOkr(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.OkrDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created.KeyResults, 1)
	keyResultID := created.KeyResults[0].ID

	w = httptest.NewRecorder()
	c = jsonContext(t, w, http.MethodPatch, "/api/key-results/"+string(keyResultID), map[string]any{
		"current_value": 35,
	}, env.user.ID)
	c.Params = gin.Params{{Key: "id", Value: string(keyResultID)}}

	env.handler.UpdateKeyResultProgress(c)

	require.Equal(t, http.StatusOK, w.Code)

	var keyResult dto.KeyResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &keyResult))
	require.Equal(t, float64(35), keyResult.CurrentValue)
}
