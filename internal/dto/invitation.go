package dto

import (
	"time"

	"github.com/tuanemuy/okr-manager-sub001/internal/models"
)

// InvitationDTO represents an invitation in API responses
type InvitationDTO struct {
	ID           models.InvitationID     `json:"id"`
	TeamID       models.TeamID           `json:"team_id"`
	InvitedEmail string                  `json:"invited_email"`
	InvitedByID  models.UserID           `json:"invited_by_id"`
	Role         models.Role             `json:"role"`
	Status       models.InvitationStatus `json:"status"`
	CreatedAt    time.Time               `json:"created_at"`
	Team         *TeamDTO                `json:"team,omitempty"`
}

// InvitationListResponse represents a paginated list of invitations
type InvitationListResponse struct {
	Invitations []InvitationDTO `json:"invitations"`
	Page        int             `json:"page"`
	PageSize    int             `json:"page_size"`
	TotalCount  int64           `json:"total_count"`
}

// ToInvitationDTO converts an Invitation model to InvitationDTO
func ToInvitationDTO(invitation models.Invitation) InvitationDTO {
	dto := InvitationDTO{
		ID:           invitation.ID,
		TeamID:       invitation.TeamID,
		InvitedEmail: invitation.InvitedEmail,
		InvitedByID:  invitation.InvitedByID,
		Role:         invitation.Role,
		Status:       invitation.Status,
		CreatedAt:    invitation.CreatedAt,
	}

	// Include team if preloaded
	if invitation.Team.ID != "" {
		team := ToTeamDTO(invitation.Team)
		dto.Team = &team
	}

	return dto
}

// ToInvitationListResponse builds the paginated invitation response
func ToInvitationListResponse(invitations []models.Invitation, page, pageSize int, total int64) InvitationListResponse {
	dtos := make([]InvitationDTO, len(invitations))
	for i, invitation := range invitations {
		dtos[i] = ToInvitationDTO(invitation)
	}

	return InvitationListResponse{
		Invitations: dtos,
		Page:        page,
		PageSize:    pageSize,
		TotalCount:  total,
	}
}
