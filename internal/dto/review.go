package dto

import (
	"time"

	"github.com/tuanemuy/okr-manager-sub001/internal/models"
)

// ReviewDTO represents a review in API responses
type ReviewDTO struct {
	ID         models.ReviewID   `json:"id"`
	OkrID      models.OkrID      `json:"okr_id"`
	Type       models.ReviewType `json:"type"`
	Content    string            `json:"content"`
	ReviewerID models.UserID     `json:"reviewer_id"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Reviewer   *UserDTO          `json:"reviewer,omitempty"`
}

// ReviewListResponse represents a paginated list of reviews
type ReviewListResponse struct {
	Reviews    []ReviewDTO `json:"reviews"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalCount int64       `json:"total_count"`
}

// ToReviewDTO converts a Review model to ReviewDTO
func ToReviewDTO(review models.Review) ReviewDTO {
	dto := ReviewDTO{
		ID:         review.ID,
		OkrID:      review.OkrID,
		Type:       review.Type,
		Content:    review.Content,
		ReviewerID: review.ReviewerID,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}

	// Include reviewer if preloaded
	if review.Reviewer.ID != "" {
		reviewer := ToUserDTO(review.Reviewer)
		dto.Reviewer = &reviewer
	}

	return dto
}

// ToReviewListResponse builds the paginated review response
func ToReviewListResponse(reviews []models.Review, page, pageSize int, total int64) ReviewListResponse {
	dtos := make([]ReviewDTO, len(reviews))
	for i, review := range reviews {
		dtos[i] = ToReviewDTO(review)
	}

	return ReviewListResponse{
		Reviews:    dtos,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}
}
