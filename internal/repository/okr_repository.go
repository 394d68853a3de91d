package repository

import (
	"github.com/tuanemuy/okr-manager-sub001/internal/database"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"gorm.io/gorm"
)

// GormOkrRepository is a GORM implementation of OkrRepository
type GormOkrRepository struct {
	db *gorm.DB
}

// NewOkrRepository creates a new OkrRepository
func NewOkrRepository(db *gorm.DB) OkrRepository {
	return &GormOkrRepository{db: db}
}

// CreateWithKeyResults creates an OKR and its key results atomically
func (r *GormOkrRepository) CreateWithKeyResults(okr *models.Okr, keyResults []models.KeyResult) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(okr).Error; err != nil {
			return err
		}

		if len(keyResults) == 0 {
			return nil
		}

		for i := range keyResults {
			keyResults[i].OkrID = okr.ID
		}
		return tx.Create(&keyResults).Error
	})
}

// FindByID finds an OKR by ID with optional preloading
func (r *GormOkrRepository) FindByID(id models.OkrID, preload ...string) (*models.Okr, error) {
	var okr models.Okr
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("id = ?", id).First(&okr).Error; err != nil {
		return nil, err
	}

	return &okr, nil
}

// Update updates an OKR
func (r *GormOkrRepository) Update(okr *models.Okr) error {
	return r.db.Save(okr).Error
}

// Delete deletes an OKR and cascades to its key results and reviews
func (r *GormOkrRepository) Delete(id models.OkrID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("okr_id = ?", id).Delete(&models.KeyResult{}).Error; err != nil {
			return err
		}

		if err := tx.Where("okr_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Okr{}).Error
	})
}

// Search retrieves OKRs with free-text search, filtering and pagination
func (r *GormOkrRepository) Search(filter OkrFilter) ([]models.Okr, int64, error) {
	if len(filter.TeamIDs) == 0 {
		return []models.Okr{}, 0, nil
	}

	query := r.db.Model(&models.Okr{}).Where("okrs.team_id IN ?", filter.TeamIDs)

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("okrs.title LIKE ? OR okrs.description LIKE ?", like, like)
	}
	if filter.Type != nil {
		query = query.Where("okrs.type = ?", *filter.Type)
	}
	if filter.OwnerID != nil {
		query = query.Where("okrs.owner_id = ?", *filter.OwnerID)
	}
	if filter.QuarterYear != nil {
		query = query.Where("okrs.quarter_year = ?", *filter.QuarterYear)
	}
	if filter.QuarterQuarter != nil {
		query = query.Where("okrs.quarter_quarter = ?", *filter.QuarterQuarter)
	}
	if filter.ViewerID != nil {
		if len(filter.AdminTeamIDs) > 0 {
			query = query.Where("okrs.type = ? OR okrs.owner_id = ? OR okrs.team_id IN ?",
				models.OkrTypeTeam, *filter.ViewerID, filter.AdminTeamIDs)
		} else {
			query = query.Where("okrs.type = ? OR okrs.owner_id = ?",
				models.OkrTypeTeam, *filter.ViewerID)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("okrs.created_at DESC").
		Scopes(database.Paginate(filter.Page, filter.PageSize))

	var okrs []models.Okr
	if err := listQuery.Preload("KeyResults").Preload("Owner").Find(&okrs).Error; err != nil {
		return nil, 0, err
	}

	return okrs, total, nil
}

// AddKeyResult adds a key result to an OKR
func (r *GormOkrRepository) AddKeyResult(keyResult *models.KeyResult) error {
	return r.db.Create(keyResult).Error
}

// FindKeyResult finds a key result by ID
func (r *GormOkrRepository) FindKeyResult(id models.KeyResultID) (*models.KeyResult, error) {
	var keyResult models.KeyResult
	if err := r.db.Where("id = ?", id).First(&keyResult).Error; err != nil {
		return nil, err
	}
	return &keyResult, nil
}

// UpdateKeyResult updates a key result
func (r *GormOkrRepository) UpdateKeyResult(keyResult *models.KeyResult) error {
	return r.db.Save(keyResult).Error
}

// DeleteKeyResult deletes a key result
func (r *GormOkrRepository) DeleteKeyResult(id models.KeyResultID) error {
	return r.db.Where("id = ?", id).Delete(&models.KeyResult{}).Error
}

// ListKeyResults lists the key results of an OKR
func (r *GormOkrRepository) ListKeyResults(okrID models.OkrID) ([]models.KeyResult, error) {
	var keyResults []models.KeyResult
	if err := r.db.Where("okr_id = ?", okrID).
		Order("created_at ASC").
		Find(&keyResults).Error; err != nil {
		return nil, err
	}
	return keyResults, nil
}

// CountKeyResults counts the key results of an OKR
func (r *GormOkrRepository) CountKeyResults(okrID models.OkrID) (int64, error) {
	var count int64
	err := r.db.Model(&models.KeyResult{}).
		Where("okr_id = ?", okrID).
		Count(&count).Error
	return count, err
}
