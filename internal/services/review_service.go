package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tuanemuy/okr-manager-sub001/internal/authz"
	"github.com/tuanemuy/okr-manager-sub001/internal/constants"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"github.com/tuanemuy/okr-manager-sub001/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
)

// ReviewService handles review business logic.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	okrRepo    repository.OkrRepository
	teamRepo   repository.TeamRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repository.ReviewRepository, okrRepo repository.OkrRepository, teamRepo repository.TeamRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		okrRepo:    okrRepo,
		teamRepo:   teamRepo,
	}
}

// CreateReviewInput represents input for creating a review.
type CreateReviewInput struct {
	OkrID   models.OkrID
	ActorID models.UserID
	Type    models.ReviewType
	Content string
}

// UpdateReviewInput represents input for updating a review.
type UpdateReviewInput struct {
	Type    *models.ReviewType
	Content *string
}

// CreateReview attaches a review to an OKR. Member role or above.
func (s *ReviewService) CreateReview(input CreateReviewInput) (*models.Review, error) {
	if !input.Type.Valid() {
		return nil, validationErr("type", "must be progress or final")
	}
	if err := validateReviewContent(input.Content); err != nil {
		return nil, err
	}

	okr, err := s.findOkr(input.OkrID)
	if err != nil {
		return nil, err
	}

	role, err := resolveRole(s.teamRepo, okr.TeamID, input.ActorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanPerform(role, authz.ActionCreateReview) {
		return nil, ErrForbidden
	}

	review := &models.Review{
		ID:         models.NewReviewID(),
		OkrID:      input.OkrID,
		Type:       input.Type,
		Content:    input.Content,
		ReviewerID: input.ActorID,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

// UpdateReview edits a review. Admin or the original author.
func (s *ReviewService) UpdateReview(reviewID models.ReviewID, actorID models.UserID, input UpdateReviewInput) (*models.Review, error) {
	review, err := s.loadForEdit(reviewID, actorID, authz.ActionEditReview)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, validationErr("type", "must be progress or final")
		}
		review.Type = *input.Type
	}
	if input.Content != nil {
		if err := validateReviewContent(*input.Content); err != nil {
			return nil, err
		}
		review.Content = *input.Content
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	return review, nil
}

// DeleteReview removes a review. Admin or the original author.
func (s *ReviewService) DeleteReview(reviewID models.ReviewID, actorID models.UserID) error {
	review, err := s.loadForEdit(reviewID, actorID, authz.ActionDeleteReview)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(review.ID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}

// ListReviews returns the reviews of an OKR ordered by creation time.
func (s *ReviewService) ListReviews(okrID models.OkrID, actorID models.UserID, page, pageSize int) ([]models.Review, int64, error) {
	okr, err := s.findOkr(okrID)
	if err != nil {
		return nil, 0, err
	}

	role, err := resolveRole(s.teamRepo, okr.TeamID, actorID)
	if err != nil {
		return nil, 0, err
	}
	if !authz.CanPerform(role, authz.ActionView) {
		return nil, 0, ErrForbidden
	}

	reviews, total, err := s.reviewRepo.ListByOkr(okrID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, total, nil
}

// loadForEdit loads a review and authorizes an edit-class action with the
// author override.
func (s *ReviewService) loadForEdit(reviewID models.ReviewID, actorID models.UserID, action authz.Action) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	okr, err := s.findOkr(review.OkrID)
	if err != nil {
		return nil, err
	}

	role, err := resolveRole(s.teamRepo, okr.TeamID, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanPerformOwned(role, action, review.ReviewerID == actorID) {
		return nil, ErrForbidden
	}

	return review, nil
}

func (s *ReviewService) findOkr(okrID models.OkrID) (*models.Okr, error) {
	okr, err := s.okrRepo.FindByID(okrID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOkrNotFound
		}
		return nil, fmt.Errorf("failed to find okr: %w", err)
	}
	return okr, nil
}

func validateReviewContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return validationErr("content", "content is required")
	}
	if len(content) > constants.MaxReviewContentLength {
		return validationErr("content",
			fmt.Sprintf("content cannot exceed %d characters", constants.MaxReviewContentLength))
	}
	return nil
}
