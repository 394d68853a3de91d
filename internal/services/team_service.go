package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tuanemuy/okr-manager-sub001/internal/authz"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"github.com/tuanemuy/okr-manager-sub001/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrMemberNotFound = errors.New("team member not found")
	ErrLastAdmin      = errors.New("team must keep at least one admin")
	ErrTeamNotEmpty   = errors.New("team still has other members")
)

// TeamService provides business logic for team and membership operations.
type TeamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
	}
}

// CreateTeamInput represents parameters to create a new team.
type CreateTeamInput struct {
	Name            string
	Description     string
	ReviewFrequency models.ReviewFrequency
	CreatorID       models.UserID
}

// CreateTeam creates a team; the creator becomes its first admin in the same
// transaction, so the at-least-one-admin invariant holds from the start.
func (s *TeamService) CreateTeam(input CreateTeamInput) (*models.Team, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, validationErr("name", "team name is required")
	}

	frequency := input.ReviewFrequency
	if frequency == "" {
		frequency = models.ReviewFrequencyWeekly
	}
	if !frequency.Valid() {
		return nil, validationErr("review_frequency", "must be weekly, biweekly or monthly")
	}

	team := &models.Team{
		ID:              models.NewTeamID(),
		Name:            input.Name,
		Description:     input.Description,
		ReviewFrequency: frequency,
	}

	admin := &models.TeamMember{
		UserID:   input.CreatorID,
		Role:     models.RoleAdmin,
		JoinedAt: time.Now(),
	}

	if err := s.teamRepo.CreateWithAdmin(team, admin); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

// GetTeamWithMembers returns a team and all of its members, along with the
// actor's own role.
func (s *TeamService) GetTeamWithMembers(teamID models.TeamID, actorID models.UserID) (*models.Team, []models.TeamMember, models.Role, error) {
	team, err := s.findTeam(teamID)
	if err != nil {
		return nil, nil, models.RoleNone, err
	}

	role, err := resolveRole(s.teamRepo, teamID, actorID)
	if err != nil {
		return nil, nil, models.RoleNone, err
	}
	if !authz.CanPerform(role, authz.ActionView) {
		return nil, nil, models.RoleNone, ErrForbidden
	}

	members, err := s.teamRepo.ListMembers(teamID)
	if err != nil {
		return nil, nil, models.RoleNone, fmt.Errorf("failed to list team members: %w", err)
	}

	return team, members, role, nil
}

// ListTeamsForUser returns the memberships of a user with teams preloaded.
func (s *TeamService) ListTeamsForUser(userID models.UserID) ([]models.TeamMember, error) {
	memberships, err := s.teamRepo.ListMembershipsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return memberships, nil
}

// UpdateTeamSettingsInput holds optional team setting changes.
type UpdateTeamSettingsInput struct {
	Name            *string
	Description     *string
	ReviewFrequency *models.ReviewFrequency
}

// UpdateTeamSettings updates team settings. Admin only.
func (s *TeamService) UpdateTeamSettings(teamID models.TeamID, actorID models.UserID, input UpdateTeamSettingsInput) (*models.Team, error) {
	team, err := s.findTeam(teamID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAction(teamID, actorID, authz.ActionEditTeamSettings); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, validationErr("name", "team name cannot be empty")
		}
		team.Name = *input.Name
	}
	if input.Description != nil {
		team.Description = *input.Description
	}
	if input.ReviewFrequency != nil {
		if !input.ReviewFrequency.Valid() {
			return nil, validationErr("review_frequency", "must be weekly, biweekly or monthly")
		}
		team.ReviewFrequency = *input.ReviewFrequency
	}

	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return team, nil
}

// UpdateMemberRole changes a member's role. Admin only; demoting the sole
// admin is rejected so the team never drops to zero admins.
func (s *TeamService) UpdateMemberRole(teamID models.TeamID, actorID, targetID models.UserID, role models.Role) (*models.TeamMember, error) {
	if !role.Valid() {
		return nil, validationErr("role", "must be admin, member or viewer")
	}

	if _, err := s.findTeam(teamID); err != nil {
		return nil, err
	}

	if err := s.requireAction(teamID, actorID, authz.ActionChangeRole); err != nil {
		return nil, err
	}

	target, err := s.teamRepo.FindMember(teamID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find team member: %w", err)
	}

	if target.Role == models.RoleAdmin && role != models.RoleAdmin {
		if err := s.ensureNotLastAdmin(teamID); err != nil {
			return nil, err
		}
	}

	if err := s.teamRepo.UpdateMemberRole(teamID, targetID, role); err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	target.Role = role
	return target, nil
}

// RemoveMember removes a member from the team. Admin only; removing the sole
// admin is rejected.
func (s *TeamService) RemoveMember(teamID models.TeamID, actorID, targetID models.UserID) error {
	if _, err := s.findTeam(teamID); err != nil {
		return err
	}

	if err := s.requireAction(teamID, actorID, authz.ActionRemoveMember); err != nil {
		return err
	}

	target, err := s.teamRepo.FindMember(teamID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to find team member: %w", err)
	}

	if target.Role == models.RoleAdmin {
		if err := s.ensureNotLastAdmin(teamID); err != nil {
			return err
		}
	}

	if err := s.teamRepo.RemoveMember(teamID, targetID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}

// DeleteTeam removes a team. Admin only, and only once every other member
// has been removed.
func (s *TeamService) DeleteTeam(teamID models.TeamID, actorID models.UserID) error {
	if _, err := s.findTeam(teamID); err != nil {
		return err
	}

	if err := s.requireAction(teamID, actorID, authz.ActionDeleteTeam); err != nil {
		return err
	}

	count, err := s.teamRepo.CountMembers(teamID)
	if err != nil {
		return fmt.Errorf("failed to count members: %w", err)
	}
	if count > 1 {
		return ErrTeamNotEmpty
	}

	if err := s.teamRepo.Delete(teamID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

func (s *TeamService) findTeam(teamID models.TeamID) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	return team, nil
}

func (s *TeamService) requireAction(teamID models.TeamID, actorID models.UserID, action authz.Action) error {
	role, err := resolveRole(s.teamRepo, teamID, actorID)
	if err != nil {
		return err
	}
	if !authz.CanPerform(role, action) {
		return ErrForbidden
	}
	return nil
}

func (s *TeamService) ensureNotLastAdmin(teamID models.TeamID) error {
	admins, err := s.teamRepo.CountAdmins(teamID)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins <= 1 {
		return ErrLastAdmin
	}
	return nil
}
