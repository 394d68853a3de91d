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

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReview attaches a review to an OKR
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	okrID := models.OkrID(c.Param("id"))

	type CreateReviewRequest struct {
		Type    models.ReviewType `json:"type" binding:"required"`
		Content string            `json:"content" binding:"required"`
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	review, err := h.reviewService.CreateReview(services.CreateReviewInput{
		OkrID:   okrID,
		ActorID: userID,
		Type:    req.Type,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewDTO(*review))
}

// ListReviews returns the reviews of an OKR
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	okrID := models.OkrID(c.Param("id"))
	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewService.ListReviews(okrID, userID, pagination.Page, pagination.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewListResponse(reviews, pagination.Page, pagination.Limit, total))
}

// UpdateReview edits a review
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	reviewID := models.ReviewID(c.Param("id"))

	type UpdateReviewRequest struct {
		Type    *models.ReviewType `json:"type"`
		Content *string            `json:"content"`
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	review, err := h.reviewService.UpdateReview(reviewID, userID, services.UpdateReviewInput{
		Type:    req.Type,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewDTO(*review))
}

// DeleteReview removes a review
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	reviewID := models.ReviewID(c.Param("id"))

	if err := h.reviewService.DeleteReview(reviewID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
