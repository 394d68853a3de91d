package repository

import (
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id models.UserID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TeamRepository defines the interface for team and membership data access
type TeamRepository interface {
	// CreateWithAdmin creates a team and its first admin membership
	// within a single transaction.
	CreateWithAdmin(team *models.Team, admin *models.TeamMember) error

	// FindByID finds a team by ID
	FindByID(id models.TeamID) (*models.Team, error)

	// Update updates a team
	Update(team *models.Team) error

	// Delete deletes a team and all related data
	Delete(id models.TeamID) error

	// AddMember adds a member to a team
	AddMember(member *models.TeamMember) error

	// RemoveMember removes a member from a team
	RemoveMember(teamID models.TeamID, userID models.UserID) error

	// FindMember finds a specific team member
	FindMember(teamID models.TeamID, userID models.UserID) (*models.TeamMember, error)

	// UpdateMemberRole changes a member's role
	UpdateMemberRole(teamID models.TeamID, userID models.UserID, role models.Role) error

	// ListMembers lists all members of a team
	ListMembers(teamID models.TeamID) ([]models.TeamMember, error)

	// ListMembershipsByUserID lists all teams a user is a member of
	ListMembershipsByUserID(userID models.UserID) ([]models.TeamMember, error)

	// CountMembers counts the members of a team
	CountMembers(teamID models.TeamID) (int64, error)

	// CountAdmins counts the admin members of a team
	CountAdmins(teamID models.TeamID) (int64, error)
}

// InvitationFilter holds filtering options for listing invitations. Filters
// are AND-combined; nil fields are ignored.
type InvitationFilter struct {
	TeamID       *models.TeamID
	InvitedEmail *string
	Status       *models.InvitationStatus
	Page         int
	PageSize     int
}

// InvitationRepository defines the interface for invitation data access
type InvitationRepository interface {
	// Create creates a new invitation
	Create(invitation *models.Invitation) error

	// FindByID finds an invitation by ID
	FindByID(id models.InvitationID) (*models.Invitation, error)

	// FindPending finds the pending invitation for a (team, email) pair
	FindPending(teamID models.TeamID, email string) (*models.Invitation, error)

	// List retrieves invitations with filtering and pagination
	List(filter InvitationFilter) ([]models.Invitation, int64, error)

	// UpdateStatus transitions an invitation out of pending. It fails
	// with gorm.ErrRecordNotFound if the invitation is no longer pending.
	UpdateStatus(id models.InvitationID, status models.InvitationStatus) error

	// AcceptWithMembership marks the invitation accepted and creates the
	// membership within a single transaction. An existing membership row
	// is treated as success, not duplicated.
	AcceptWithMembership(invitation *models.Invitation, member *models.TeamMember) error
}

// OkrFilter holds filtering options for searching OKRs. When ViewerID is
// set, personal OKRs are restricted to those owned by the viewer or scoped
// to a team in AdminTeamIDs.
type OkrFilter struct {
	TeamIDs        []models.TeamID
	Query          string
	Type           *models.OkrType
	OwnerID        *models.UserID
	QuarterYear    *int
	QuarterQuarter *int
	ViewerID       *models.UserID
	AdminTeamIDs   []models.TeamID
	Page           int
	PageSize       int
}

// OkrRepository defines the interface for OKR and key-result data access
type OkrRepository interface {
	// CreateWithKeyResults creates an OKR and its key results within a
	// single transaction.
	CreateWithKeyResults(okr *models.Okr, keyResults []models.KeyResult) error

	// FindByID finds an OKR by ID with optional preloading
	FindByID(id models.OkrID, preload ...string) (*models.Okr, error)

	// Update updates an OKR
	Update(okr *models.Okr) error

	// Delete deletes an OKR and cascades to its key results and reviews
	Delete(id models.OkrID) error

	// Search retrieves OKRs with free-text search, filtering and pagination
	Search(filter OkrFilter) ([]models.Okr, int64, error)

	// AddKeyResult adds a key result to an OKR
	AddKeyResult(keyResult *models.KeyResult) error

	// FindKeyResult finds a key result by ID
	FindKeyResult(id models.KeyResultID) (*models.KeyResult, error)

	// UpdateKeyResult updates a key result
	UpdateKeyResult(keyResult *models.KeyResult) error

	// DeleteKeyResult deletes a key result
	DeleteKeyResult(id models.KeyResultID) error

	// ListKeyResults lists the key results of an OKR
	ListKeyResults(okrID models.OkrID) ([]models.KeyResult, error)

	// CountKeyResults counts the key results of an OKR
	CountKeyResults(okrID models.OkrID) (int64, error)
}

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	// Create creates a new review
	Create(review *models.Review) error

	// FindByID finds a review by ID
	FindByID(id models.ReviewID) (*models.Review, error)

	// Update updates a review
	Update(review *models.Review) error

	// Delete deletes a review
	Delete(id models.ReviewID) error

	// ListByOkr lists reviews of an OKR ordered by creation time
	ListByOkr(okrID models.OkrID, page, pageSize int) ([]models.Review, int64, error)
}

// NotificationSettingsRepository defines the interface for notification
// preference data access
type NotificationSettingsRepository interface {
	// Find finds the settings for a user
	Find(userID models.UserID) (*models.NotificationSettings, error)

	// Save creates or overwrites the settings for a user
	Save(settings *models.NotificationSettings) error
}
