package repository

import (
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"gorm.io/gorm"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// CreateWithAdmin creates the team and its first admin membership atomically,
// so no team is ever visible without an admin.
func (r *GormTeamRepository) CreateWithAdmin(team *models.Team, admin *models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		admin.TeamID = team.ID
		return tx.Create(admin).Error
	})
}

// FindByID finds a team by ID
func (r *GormTeamRepository) FindByID(id models.TeamID) (*models.Team, error) {
	var team models.Team
	if err := r.db.Where("id = ?", id).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// Update updates a team
func (r *GormTeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team and all related data in a transaction
func (r *GormTeamRepository) Delete(id models.TeamID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var okrIDs []models.OkrID
		if err := tx.Model(&models.Okr{}).Where("team_id = ?", id).
			Pluck("id", &okrIDs).Error; err != nil {
			return err
		}

		if len(okrIDs) > 0 {
			if err := tx.Where("okr_id IN ?", okrIDs).Delete(&models.KeyResult{}).Error; err != nil {
				return err
			}
			if err := tx.Where("okr_id IN ?", okrIDs).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("team_id = ?", id).Delete(&models.Okr{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("team_id = ?", id).Delete(&models.Invitation{}).Error; err != nil {
			return err
		}

		if err := tx.Where("team_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Team{}).Error
	})
}

// AddMember adds a member to a team
func (r *GormTeamRepository) AddMember(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// RemoveMember removes a member from a team
func (r *GormTeamRepository) RemoveMember(teamID models.TeamID, userID models.UserID) error {
	return r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamMember{}).Error
}

// FindMember finds a specific team member
func (r *GormTeamRepository) FindMember(teamID models.TeamID, userID models.UserID) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateMemberRole changes a member's role
func (r *GormTeamRepository) UpdateMemberRole(teamID models.TeamID, userID models.UserID, role models.Role) error {
	result := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListMembers lists all members of a team
func (r *GormTeamRepository) ListMembers(teamID models.TeamID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Preload("User").
		Where("team_id = ?", teamID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListMembershipsByUserID lists all teams a user is a member of
func (r *GormTeamRepository) ListMembershipsByUserID(userID models.UserID) ([]models.TeamMember, error) {
	var memberships []models.TeamMember
	if err := r.db.Preload("Team").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// CountMembers counts the members of a team
func (r *GormTeamRepository) CountMembers(teamID models.TeamID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	return count, err
}

// CountAdmins counts the admin members of a team
func (r *GormTeamRepository) CountAdmins(teamID models.TeamID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND role = ?", teamID, models.RoleAdmin).
		Count(&count).Error
	return count, err
}
