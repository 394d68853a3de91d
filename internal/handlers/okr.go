package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tuanemuy/okr-manager-sub001/internal/dto"
	apierrors "github.com/tuanemuy/okr-manager-sub001/internal/errors"
	"github.com/tuanemuy/okr-manager-sub001/internal/middleware"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"github.com/tuanemuy/okr-manager-sub001/internal/services"
	"github.com/tuanemuy/okr-manager-sub001/internal/utils"
)

type OkrHandler struct {
	okrService *services.OkrService
}

func NewOkrHandler(okrService *services.OkrService) *OkrHandler {
	return &OkrHandler{okrService: okrService}
}

// KeyResultRequest is the request shape for a key result
type KeyResultRequest struct {
	Title        string  `json:"title" binding:"required"`
	TargetValue  float64 `json:"target_value" binding:"required"`
	CurrentValue float64 `json:"current_value"`
	Unit         string  `json:"unit"`
}

func (r KeyResultRequest) toInput() services.KeyResultInput {
	return services.KeyResultInput{
		Title:        r.Title,
		TargetValue:  r.TargetValue,
		CurrentValue: r.CurrentValue,
		Unit:         r.Unit,
	}
}

// CreateOkr creates an OKR with its key results
func (h *OkrHandler) CreateOkr(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateOkrRequest struct {
		Title          string             `json:"title" binding:"required"`
		Description    string             `json:"description"`
		Type           models.OkrType     `json:"type"`
		TeamID         models.TeamID      `json:"team_id" binding:"required"`
		QuarterYear    int                `json:"quarter_year" binding:"required"`
		QuarterQuarter int                `json:"quarter_quarter" binding:"required"`
		KeyResults     []KeyResultRequest `json:"key_results" binding:"required"`
	}

	var req CreateOkrRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	keyResults := make([]services.KeyResultInput, len(req.KeyResults))
	for i, kr := range req.KeyResults {
		keyResults[i] = kr.toInput()
	}

	okr, err := h.okrService.CreateOkr(services.CreateOkrInput{
		Title:          req.Title,
		Description:    req.Description,
		Type:           req.Type,
		TeamID:         req.TeamID,
		ActorID:        userID,
		QuarterYear:    req.QuarterYear,
		QuarterQuarter: req.QuarterQuarter,
		KeyResults:     keyResults,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOkrDTO(*okr))
}

// GetOkr returns an OKR with key results, progress and status
func (h *OkrHandler) GetOkr(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	okrID := models.OkrID(c.Param("id"))

	okr, err := h.okrService.GetOkr(okrID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOkrDTO(*okr))
}

// UpdateOkr updates an OKR
func (h *OkrHandler) UpdateOkr(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	okrID := models.OkrID(c.Param("id"))

	type UpdateOkrRequest struct {
		Title          *string         `json:"title"`
		Description    *string         `json:"description"`
		Type           *models.OkrType `json:"type"`
		QuarterYear    *int            `json:"quarter_year"`
		QuarterQuarter *int            `json:"quarter_quarter"`
	}

	var req UpdateOkrRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	okr, err := h.okrService.UpdateOkr(okrID, userID, services.UpdateOkrInput{
		Title:          req.Title,
		Description:    req.Description,
		Type:           req.Type,
		QuarterYear:    req.QuarterYear,
		QuarterQuarter: req.QuarterQuarter,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOkrDTO(*okr))
}

// DeleteOkr deletes an OKR and its key results
func (h *OkrHandler) DeleteOkr(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	okrID := models.OkrID(c.Param("id"))

	if err := h.okrService.DeleteOkr(okrID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Okr deleted successfully"})
}

// SearchOkrs lists OKRs visible to the caller with filters and pagination
func (h *OkrHandler) SearchOkrs(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	pagination := utils.GetPaginationParams(c)

	input := services.SearchOkrsInput{
		ActorID:  userID,
		Query:    c.Query("q"),
		Page:     pagination.Page,
		PageSize: pagination.Limit,
	}

	if teamID := c.Query("team_id"); teamID != "" {
		id := models.TeamID(teamID)
		input.TeamID = &id
	}
	if okrType := c.Query("type"); okrType != "" {
		t := models.OkrType(okrType)
		input.Type = &t
	}
	if ownerID := c.Query("owner_id"); ownerID != "" {
		id := models.UserID(ownerID)
		input.OwnerID = &id
	}
	if year := c.Query("quarter_year"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			apierrors.BadRequest(c, "Invalid quarter_year")
			return
		}
		input.QuarterYear = &y
	}
	if quarter := c.Query("quarter"); quarter != "" {
		q, err := strconv.Atoi(quarter)
		if err != nil {
			apierrors.BadRequest(c, "Invalid quarter")
			return
		}
		input.QuarterQuarter = &q
	}

	okrs, total, err := h.okrService.SearchOkrs(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]dto.OkrDTO, len(okrs))
	for i, okr := range okrs {
		items[i] = toOkrDTO(okr)
	}

	c.JSON(http.StatusOK, dto.OkrListResponse{
		Okrs:       items,
		Page:       pagination.Page,
		PageSize:   pagination.Limit,
		TotalCount: total,
	})
}

// AddKeyResult adds a key result to an OKR
func (h *OkrHandler) AddKeyResult(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	okrID := models.OkrID(c.Param("id"))

	var req KeyResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	keyResult, err := h.okrService.AddKeyResult(okrID, userID, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToKeyResultDTO(*keyResult))
}

// UpdateKeyResultProgress records progress on a key result
func (h *OkrHandler) UpdateKeyResultProgress(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	keyResultID := models.KeyResultID(c.Param("id"))

	type ProgressRequest struct {
		CurrentValue *float64 `json:"current_value" binding:"required"`
	}

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	keyResult, err := h.okrService.UpdateKeyResultProgress(keyResultID, userID, *req.CurrentValue)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToKeyResultDTO(*keyResult))
}

// DeleteKeyResult removes a key result
func (h *OkrHandler) DeleteKeyResult(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	keyResultID := models.KeyResultID(c.Param("id"))

	if err := h.okrService.DeleteKeyResult(keyResultID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Key result deleted successfully"})
}

// toOkrDTO derives progress and status before shaping the response.
func toOkrDTO(okr models.Okr) dto.OkrDTO {
	progress := services.ComputeProgress(okr.KeyResults)
	status := services.ComputeStatus(okr.QuarterYear, okr.QuarterQuarter, progress, time.Now())
	return dto.ToOkrDTO(okr, progress, status)
}
