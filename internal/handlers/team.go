package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuanemuy/okr-manager-sub001/internal/dto"
	apierrors "github.com/tuanemuy/okr-manager-sub001/internal/errors"
	"github.com/tuanemuy/okr-manager-sub001/internal/middleware"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"github.com/tuanemuy/okr-manager-sub001/internal/services"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeam creates a new team with the caller as admin
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTeamRequest struct {
		Name            string                 `json:"name" binding:"required"`
		Description     string                 `json:"description"`
		ReviewFrequency models.ReviewFrequency `json:"review_frequency"`
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	team, err := h.teamService.CreateTeam(services.CreateTeamInput{
		Name:            req.Name,
		Description:     req.Description,
		ReviewFrequency: req.ReviewFrequency,
		CreatorID:       userID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamDTO(*team))
}

// ListTeams returns all teams the caller is a member of
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	memberships, err := h.teamService.ListTeamsForUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	teams := make([]dto.TeamWithRoleDTO, len(memberships))
	for i, m := range memberships {
		teams[i] = dto.ToTeamWithRoleDTO(m)
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GetTeam returns team details including members
func (h *TeamHandler) GetTeam(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	teamID := models.TeamID(c.Param("id"))

	team, members, role, err := h.teamService.GetTeamWithMembers(teamID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDetailDTO(*team, members, role))
}

// UpdateTeam updates team settings
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	teamID := models.TeamID(c.Param("id"))

	type UpdateTeamRequest struct {
		Name            *string                 `json:"name"`
		Description     *string                 `json:"description"`
		ReviewFrequency *models.ReviewFrequency `json:"review_frequency"`
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	team, err := h.teamService.UpdateTeamSettings(teamID, userID, services.UpdateTeamSettingsInput{
		Name:            req.Name,
		Description:     req.Description,
		ReviewFrequency: req.ReviewFrequency,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamDTO(*team))
}

// DeleteTeam deletes a team once every other member has been removed
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	teamID := models.TeamID(c.Param("id"))

	if err := h.teamService.DeleteTeam(teamID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

// UpdateMemberRole changes a member's role
func (h *TeamHandler) UpdateMemberRole(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	teamID := models.TeamID(c.Param("id"))
	targetID := models.UserID(c.Param("user_id"))

	type UpdateRoleRequest struct {
		Role models.Role `json:"role" binding:"required"`
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	member, err := h.teamService.UpdateMemberRole(teamID, userID, targetID, req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember removes a member from the team
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	teamID := models.TeamID(c.Param("id"))
	targetID := models.UserID(c.Param("user_id"))

	if err := h.teamService.RemoveMember(teamID, userID, targetID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}
