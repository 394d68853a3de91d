package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuanemuy/okr-manager-sub001/internal/dto"
	apierrors "github.com/tuanemuy/okr-manager-sub001/internal/errors"
	"github.com/tuanemuy/okr-manager-sub001/internal/middleware"
	"github.com/tuanemuy/okr-manager-sub001/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetSettings returns the caller's notification settings
func (h *NotificationHandler) GetSettings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	settings, err := h.notificationService.GetSettings(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationSettingsDTO(*settings))
}

// UpdateSettings replaces the caller's notification settings
func (h *NotificationHandler) UpdateSettings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateSettingsRequest struct {
		Invitations     *bool `json:"invitations" binding:"required"`
		ReviewReminders *bool `json:"review_reminders" binding:"required"`
		ProgressUpdates *bool `json:"progress_updates" binding:"required"`
		TeamUpdates     *bool `json:"team_updates" binding:"required"`
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	settings, err := h.notificationService.UpdateSettings(userID, services.UpdateSettingsInput{
		Invitations:     *req.Invitations,
		ReviewReminders: *req.ReviewReminders,
		ProgressUpdates: *req.ProgressUpdates,
		TeamUpdates:     *req.TeamUpdates,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationSettingsDTO(*settings))
}
