package repository

import (
	"errors"

	"github.com/tuanemuy/okr-manager-sub001/internal/database"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"gorm.io/gorm"
)

// GormInvitationRepository is a GORM implementation of InvitationRepository
type GormInvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new InvitationRepository
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &GormInvitationRepository{db: db}
}

// Create creates a new invitation
func (r *GormInvitationRepository) Create(invitation *models.Invitation) error {
	return r.db.Create(invitation).Error
}

// FindByID finds an invitation by ID
func (r *GormInvitationRepository) FindByID(id models.InvitationID) (*models.Invitation, error) {
	var invitation models.Invitation
	if err := r.db.Where("id = ?", id).First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

// FindPending finds the pending invitation for a (team, email) pair
func (r *GormInvitationRepository) FindPending(teamID models.TeamID, email string) (*models.Invitation, error) {
	var invitation models.Invitation
	if err := r.db.Where("team_id = ? AND invited_email = ? AND status = ?",
		teamID, email, models.InvitationStatusPending).
		First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

// List retrieves invitations with filtering and pagination
func (r *GormInvitationRepository) List(filter InvitationFilter) ([]models.Invitation, int64, error) {
	query := r.db.Model(&models.Invitation{})

	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.InvitedEmail != nil {
		query = query.Where("invited_email = ?", *filter.InvitedEmail)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC").
		Scopes(database.Paginate(filter.Page, filter.PageSize))

	var invitations []models.Invitation
	if err := listQuery.Preload("Team").Find(&invitations).Error; err != nil {
		return nil, 0, err
	}

	return invitations, total, nil
}

// UpdateStatus transitions an invitation out of pending. The pending guard in
// the WHERE clause makes concurrent transitions race-safe: the loser sees
// zero affected rows and gets gorm.ErrRecordNotFound.
func (r *GormInvitationRepository) UpdateStatus(id models.InvitationID, status models.InvitationStatus) error {
	return updateStatusPendingGuard(r.db, id, status)
}

// AcceptWithMembership marks the invitation accepted and creates the
// membership atomically. An existing (team, user) row is left untouched so a
// second accept resolves to idempotent success instead of a duplicate.
func (r *GormInvitationRepository) AcceptWithMembership(invitation *models.Invitation, member *models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := updateStatusPendingGuard(tx, invitation.ID, models.InvitationStatusAccepted); err != nil {
			return err
		}

		var existing models.TeamMember
		err := tx.Where("team_id = ? AND user_id = ?", member.TeamID, member.UserID).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(member).Error
	})
}

func updateStatusPendingGuard(db *gorm.DB, id models.InvitationID, status models.InvitationStatus) error {
	result := db.Model(&models.Invitation{}).
		Where("id = ? AND status = ?", id, models.InvitationStatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
