package repository

import (
	"github.com/tuanemuy/okr-manager-sub001/internal/database"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"gorm.io/gorm"
)

// GormReviewRepository is a GORM implementation of ReviewRepository
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create creates a new review
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// FindByID finds a review by ID
func (r *GormReviewRepository) FindByID(id models.ReviewID) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Update updates a review
func (r *GormReviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

// Delete deletes a review
func (r *GormReviewRepository) Delete(id models.ReviewID) error {
	return r.db.Where("id = ?", id).Delete(&models.Review{}).Error
}

// ListByOkr lists reviews of an OKR ordered by creation time
func (r *GormReviewRepository) ListByOkr(okrID models.OkrID, page, pageSize int) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{}).Where("okr_id = ?", okrID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at ASC").
		Scopes(database.Paginate(page, pageSize))

	var reviews []models.Review
	if err := listQuery.Preload("Reviewer").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}
