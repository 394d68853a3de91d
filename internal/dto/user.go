package dto

import "github.com/tuanemuy/okr-manager-sub001/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          models.UserID `json:"id"`
	Email       string        `json:"email"`
	DisplayName string        `json:"display_name"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}
}
