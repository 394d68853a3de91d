package dto

import (
	"time"

	"github.com/tuanemuy/okr-manager-sub001/internal/models"
)

// TeamDTO represents a team in API responses
type TeamDTO struct {
	ID              models.TeamID          `json:"id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	ReviewFrequency models.ReviewFrequency `json:"review_frequency"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// TeamWithRoleDTO represents a team with the user's own role
type TeamWithRoleDTO struct {
	TeamDTO
	Role models.Role `json:"role"`
}

// TeamMemberDTO represents a member of a team
type TeamMemberDTO struct {
	User     UserDTO     `json:"user"`
	Role     models.Role `json:"role"`
	JoinedAt time.Time   `json:"joined_at"`
}

// TeamDetailDTO represents a team with its members
type TeamDetailDTO struct {
	TeamDTO
	Members  []TeamMemberDTO `json:"members"`
	YourRole models.Role     `json:"your_role"`
}

// ToTeamDTO converts a Team model to TeamDTO
func ToTeamDTO(team models.Team) TeamDTO {
	return TeamDTO{
		ID:              team.ID,
		Name:            team.Name,
		Description:     team.Description,
		ReviewFrequency: team.ReviewFrequency,
		CreatedAt:       team.CreatedAt,
		UpdatedAt:       team.UpdatedAt,
	}
}

// ToTeamWithRoleDTO converts a membership to a team DTO with the role
func ToTeamWithRoleDTO(member models.TeamMember) TeamWithRoleDTO {
	return TeamWithRoleDTO{
		TeamDTO: ToTeamDTO(member.Team),
		Role:    member.Role,
	}
}

// ToTeamMemberDTO converts a member to DTO
func ToTeamMemberDTO(member models.TeamMember) TeamMemberDTO {
	return TeamMemberDTO{
		User:     ToUserDTO(member.User),
		Role:     member.Role,
		JoinedAt: member.JoinedAt,
	}
}

// ToTeamDetailDTO converts a team with members to a detailed DTO
func ToTeamDetailDTO(team models.Team, members []models.TeamMember, yourRole models.Role) TeamDetailDTO {
	memberDTOs := make([]TeamMemberDTO, len(members))
	for i, member := range members {
		memberDTOs[i] = ToTeamMemberDTO(member)
	}

	return TeamDetailDTO{
		TeamDTO:  ToTeamDTO(team),
		Members:  memberDTOs,
		YourRole: yourRole,
	}
}
