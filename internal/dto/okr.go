package dto

import (
	"time"

	"github.com/tuanemuy/okr-manager-sub001/internal/models"
)

// KeyResultDTO represents a key result in API responses
type KeyResultDTO struct {
	ID           models.KeyResultID `json:"id"`
	OkrID        models.OkrID       `json:"okr_id"`
	Title        string             `json:"title"`
	TargetValue  float64            `json:"target_value"`
	CurrentValue float64            `json:"current_value"`
	Unit         string             `json:"unit,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// OkrDTO represents an OKR with derived progress and status
type OkrDTO struct {
	ID             models.OkrID     `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Type           models.OkrType   `json:"type"`
	TeamID         models.TeamID    `json:"team_id"`
	OwnerID        models.UserID    `json:"owner_id"`
	QuarterYear    int              `json:"quarter_year"`
	QuarterQuarter int              `json:"quarter_quarter"`
	Progress       int              `json:"progress"`
	Status         models.OkrStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	Owner          *UserDTO         `json:"owner,omitempty"`
	KeyResults     []KeyResultDTO   `json:"key_results,omitempty"`
}

// OkrListResponse represents a paginated list of OKRs
type OkrListResponse struct {
	Okrs       []OkrDTO `json:"okrs"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalCount int64    `json:"total_count"`
}

// ToKeyResultDTO converts a KeyResult model to KeyResultDTO
func ToKeyResultDTO(keyResult models.KeyResult) KeyResultDTO {
	return KeyResultDTO{
		ID:           keyResult.ID,
		OkrID:        keyResult.OkrID,
		Title:        keyResult.Title,
		TargetValue:  keyResult.TargetValue,
		CurrentValue: keyResult.CurrentValue,
		Unit:         keyResult.Unit,
		CreatedAt:    keyResult.CreatedAt,
		UpdatedAt:    keyResult.UpdatedAt,
	}
}

// ToOkrDTO converts an Okr model to OkrDTO with derived progress and status
func ToOkrDTO(okr models.Okr, progress int, status models.OkrStatus) OkrDTO {
	dto := OkrDTO{
		ID:             okr.ID,
		Title:          okr.Title,
		Description:    okr.Description,
		Type:           okr.Type,
		TeamID:         okr.TeamID,
		OwnerID:        okr.OwnerID,
		QuarterYear:    okr.QuarterYear,
		QuarterQuarter: okr.QuarterQuarter,
		Progress:       progress,
		Status:         status,
		CreatedAt:      okr.CreatedAt,
		UpdatedAt:      okr.UpdatedAt,
	}

	// Include owner if preloaded
	if okr.Owner.ID != "" {
		owner := ToUserDTO(okr.Owner)
		dto.Owner = &owner
	}

	if len(okr.KeyResults) > 0 {
		dto.KeyResults = make([]KeyResultDTO, len(okr.KeyResults))
		for i, kr := range okr.KeyResults {
			dto.KeyResults[i] = ToKeyResultDTO(kr)
		}
	}

	return dto
}
