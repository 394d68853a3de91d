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
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationPending    = errors.New("a pending invitation already exists for this email")
	ErrInvitationNotPending = errors.New("invitation has already been accepted or rejected")
	ErrNotInvitee           = errors.New("invitation was sent to a different email address")
)

// InvitationService manages the team invitation lifecycle.
type InvitationService struct {
	invitationRepo repository.InvitationRepository
	teamRepo       repository.TeamRepository
	userRepo       repository.UserRepository
}

// NewInvitationService creates a new InvitationService.
func NewInvitationService(invitationRepo repository.InvitationRepository, teamRepo repository.TeamRepository, userRepo repository.UserRepository) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
	}
}

// InviteInput represents parameters to invite someone to a team.
type InviteInput struct {
	TeamID  models.TeamID
	ActorID models.UserID
	Email   string
	Role    models.Role
}

// Invite creates a pending invitation. Only team admins may invite, and at
// most one pending invitation may exist per (team, email) pair.
func (s *InvitationService) Invite(input InviteInput) (*models.Invitation, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, validationErr("email", "a valid email address is required")
	}
	if !input.Role.Valid() {
		return nil, validationErr("role", "must be admin, member or viewer")
	}

	if _, err := s.teamRepo.FindByID(input.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	role, err := resolveRole(s.teamRepo, input.TeamID, input.ActorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanPerform(role, authz.ActionInviteMember) {
		return nil, ErrForbidden
	}

	if _, err := s.invitationRepo.FindPending(input.TeamID, email); err == nil {
		return nil, ErrInvitationPending
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}

	invitation := &models.Invitation{
		ID:           models.NewInvitationID(),
		TeamID:       input.TeamID,
		InvitedEmail: email,
		InvitedByID:  input.ActorID,
		Role:         input.Role,
		Status:       models.InvitationStatusPending,
	}

	if err := s.invitationRepo.Create(invitation); err != nil {
		// The unique index on live pending invitations catches concurrent
		// invites that both passed the FindPending check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrInvitationPending
		}
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return invitation, nil
}

// Accept transitions a pending invitation to accepted and creates the
// membership atomically. Accepting an already-accepted invitation whose
// membership exists is idempotent success.
func (s *InvitationService) Accept(invitationID models.InvitationID, actorID models.UserID) (*models.Invitation, error) {
	invitation, err := s.loadForTransition(invitationID, actorID)
	if err != nil {
		return nil, err
	}

	switch invitation.Status {
	case models.InvitationStatusAccepted:
		if _, err := s.teamRepo.FindMember(invitation.TeamID, actorID); err == nil {
			return invitation, nil
		}
		return nil, ErrInvitationNotPending
	case models.InvitationStatusRejected:
		return nil, ErrInvitationNotPending
	}

	member := &models.TeamMember{
		TeamID:   invitation.TeamID,
		UserID:   actorID,
		Role:     invitation.Role,
		JoinedAt: time.Now(),
	}

	if err := s.invitationRepo.AcceptWithMembership(invitation, member); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Lost a race against another transition.
			return nil, ErrInvitationNotPending
		}
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	invitation.Status = models.InvitationStatusAccepted
	return invitation, nil
}

// Reject transitions a pending invitation to rejected. No membership side
// effect.
func (s *InvitationService) Reject(invitationID models.InvitationID, actorID models.UserID) (*models.Invitation, error) {
	invitation, err := s.loadForTransition(invitationID, actorID)
	if err != nil {
		return nil, err
	}

	if invitation.Status != models.InvitationStatusPending {
		return nil, ErrInvitationNotPending
	}

	if err := s.invitationRepo.UpdateStatus(invitation.ID, models.InvitationStatusRejected); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotPending
		}
		return nil, fmt.Errorf("failed to reject invitation: %w", err)
	}

	invitation.Status = models.InvitationStatusRejected
	return invitation, nil
}

// ListInvitationsInput holds invitation listing filters. Filters are
// AND-combined.
type ListInvitationsInput struct {
	ActorID      models.UserID
	TeamID       *models.TeamID
	InvitedEmail *string
	Status       *models.InvitationStatus
	Page         int
	PageSize     int
}

// List returns invitations visible to the actor. A team filter requires the
// actor to be an admin of that team; without one the listing is scoped to
// invitations addressed to the actor's own email.
func (s *InvitationService) List(input ListInvitationsInput) ([]models.Invitation, int64, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, 0, validationErr("status", "must be pending, accepted or rejected")
	}

	filter := repository.InvitationFilter{
		TeamID:   input.TeamID,
		Status:   input.Status,
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	if input.InvitedEmail != nil {
		// Stored emails are lowercased at creation.
		email := strings.ToLower(strings.TrimSpace(*input.InvitedEmail))
		filter.InvitedEmail = &email
	}

	if input.TeamID != nil {
		role, err := resolveRole(s.teamRepo, *input.TeamID, input.ActorID)
		if err != nil {
			return nil, 0, err
		}
		if !authz.CanPerform(role, authz.ActionInviteMember) {
			return nil, 0, ErrForbidden
		}
	} else {
		user, err := s.userRepo.FindByID(input.ActorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, ErrUserNotFound
			}
			return nil, 0, fmt.Errorf("failed to find user: %w", err)
		}
		email := strings.ToLower(user.Email)
		filter.InvitedEmail = &email
	}

	invitations, total, err := s.invitationRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invitations: %w", err)
	}

	return invitations, total, nil
}

// loadForTransition loads the invitation and verifies that the actor is the
// invited identity, matched by email.
func (s *InvitationService) loadForTransition(invitationID models.InvitationID, actorID models.UserID) (*models.Invitation, error) {
	invitation, err := s.invitationRepo.FindByID(invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to find invitation: %w", err)
	}

	user, err := s.userRepo.FindByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !strings.EqualFold(invitation.InvitedEmail, user.Email) {
		return nil, ErrNotInvitee
	}

	return invitation, nil
}
