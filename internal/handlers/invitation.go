package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuanemuy/okr-manager-sub001/internal/dto"
	apierrors "github.com/tuanemuy/okr-manager-sub001/internal/errors"
	"github.com/tuanemuy/okr-manager-sub001/internal/middleware"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"github.com/tuanemuy/okr-manager-sub001/internal/services"
	"github.com/tuanemuy/okr-manager-sub001/internal/utils"
)

type InvitationHandler struct {
	invitationService *services.InvitationService
}

func NewInvitationHandler(invitationService *services.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

// Invite sends a team invitation to an email address
func (h *InvitationHandler) Invite(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	teamID := models.TeamID(c.Param("id"))

	type InviteRequest struct {
		Email string      `json:"email" binding:"required"`
		Role  models.Role `json:"role" binding:"required"`
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	invitation, err := h.invitationService.Invite(services.InviteInput{
		TeamID:  teamID,
		ActorID: userID,
		Email:   req.Email,
		Role:    req.Role,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvitationDTO(*invitation))
}

// ListInvitations lists invitations. With team_id the caller must be a team
// admin; without it the listing covers invitations sent to the caller.
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	pagination := utils.GetPaginationParams(c)

	input := services.ListInvitationsInput{
		ActorID:  userID,
		Page:     pagination.Page,
		PageSize: pagination.Limit,
	}

	if teamID := c.Query("team_id"); teamID != "" {
		id := models.TeamID(teamID)
		input.TeamID = &id
	}
	if email := c.Query("invited_email"); email != "" {
		input.InvitedEmail = &email
	}
	if status := c.Query("status"); status != "" {
		s := models.InvitationStatus(status)
		input.Status = &s
	}

	invitations, total, err := h.invitationService.List(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationListResponse(invitations, pagination.Page, pagination.Limit, total))
}

// Accept accepts an invitation and joins the team
func (h *InvitationHandler) Accept(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	invitationID := models.InvitationID(c.Param("id"))

	invitation, err := h.invitationService.Accept(invitationID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationDTO(*invitation))
}

// Reject declines an invitation
func (h *InvitationHandler) Reject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	invitationID := models.InvitationID(c.Param("id"))

	invitation, err := h.invitationService.Reject(invitationID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationDTO(*invitation))
}
