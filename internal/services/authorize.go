package services

import (
	"errors"
	"fmt"

	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"github.com/tuanemuy/okr-manager-sub001/internal/repository"
	"gorm.io/gorm"
)

// resolveRole looks up the actor's role on a team. A missing membership row
// resolves to RoleNone rather than an error; RoleNone satisfies no action.
func resolveRole(teamRepo repository.TeamRepository, teamID models.TeamID, userID models.UserID) (models.Role, error) {
	member, err := teamRepo.FindMember(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoleNone, nil
		}
		return models.RoleNone, fmt.Errorf("failed to resolve team role: %w", err)
	}
	return member.Role, nil
}
