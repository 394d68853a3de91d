package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tuanemuy/okr-manager-sub001/internal/authz"
	"github.com/tuanemuy/okr-manager-sub001/internal/constants"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
	"github.com/tuanemuy/okr-manager-sub001/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrOkrNotFound       = errors.New("okr not found")
	ErrKeyResultNotFound = errors.New("key result not found")
	ErrKeyResultLimit    = errors.New("okr already has the maximum number of key results")
)

// OkrService handles OKR and key-result business logic.
type OkrService struct {
	okrRepo  repository.OkrRepository
	teamRepo repository.TeamRepository
}

// NewOkrService creates a new OkrService.
func NewOkrService(okrRepo repository.OkrRepository, teamRepo repository.TeamRepository) *OkrService {
	return &OkrService{
		okrRepo:  okrRepo,
		teamRepo: teamRepo,
	}
}

// KeyResultInput represents a key result supplied at creation time.
type KeyResultInput struct {
	Title        string
	TargetValue  float64
	CurrentValue float64
	Unit         string
}

// CreateOkrInput represents input for creating an OKR.
type CreateOkrInput struct {
	Title          string
	Description    string
	Type           models.OkrType
	TeamID         models.TeamID
	ActorID        models.UserID
	QuarterYear    int
	QuarterQuarter int
	KeyResults     []KeyResultInput
}

// UpdateOkrInput represents input for updating an OKR.
type UpdateOkrInput struct {
	Title          *string
	Description    *string
	Type           *models.OkrType
	QuarterYear    *int
	QuarterQuarter *int
}

// SearchOkrsInput represents filters for searching OKRs.
type SearchOkrsInput struct {
	ActorID        models.UserID
	TeamID         *models.TeamID
	Query          string
	Type           *models.OkrType
	OwnerID        *models.UserID
	QuarterYear    *int
	QuarterQuarter *int
	Page           int
	PageSize       int
}

// CreateOkr creates an OKR with its key results. Member role or above.
func (s *OkrService) CreateOkr(input CreateOkrInput) (*models.Okr, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, validationErr("title", "title is required")
	}

	okrType := input.Type
	if okrType == "" {
		okrType = models.OkrTypeTeam
	}
	if !okrType.Valid() {
		return nil, validationErr("type", "must be team or personal")
	}

	if err := validateQuarter(input.QuarterYear, input.QuarterQuarter); err != nil {
		return nil, err
	}

	if len(input.KeyResults) < constants.MinKeyResults || len(input.KeyResults) > constants.MaxKeyResults {
		return nil, validationErr("key_results",
			fmt.Sprintf("an okr needs between %d and %d key results", constants.MinKeyResults, constants.MaxKeyResults))
	}
	for i, kr := range input.KeyResults {
		if err := validateKeyResult(fmt.Sprintf("key_results[%d]", i), kr); err != nil {
			return nil, err
		}
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
	if !authz.CanPerform(role, authz.ActionCreateOkr) {
		return nil, ErrForbidden
	}

	okr := &models.Okr{
		ID:             models.NewOkrID(),
		Title:          input.Title,
		Description:    input.Description,
		Type:           okrType,
		TeamID:         input.TeamID,
		OwnerID:        input.ActorID,
		QuarterYear:    input.QuarterYear,
		QuarterQuarter: input.QuarterQuarter,
	}

	keyResults := make([]models.KeyResult, len(input.KeyResults))
	for i, kr := range input.KeyResults {
		keyResults[i] = models.KeyResult{
			ID:           models.NewKeyResultID(),
			Title:        kr.Title,
			TargetValue:  kr.TargetValue,
			CurrentValue: kr.CurrentValue,
			Unit:         kr.Unit,
		}
	}

	if err := s.okrRepo.CreateWithKeyResults(okr, keyResults); err != nil {
		return nil, fmt.Errorf("failed to create okr: %w", err)
	}

	return s.okrRepo.FindByID(okr.ID, "KeyResults", "Owner")
}

// GetOkr returns an OKR with its key results. Personal OKRs are visible only
// to their owner and team admins.
func (s *OkrService) GetOkr(okrID models.OkrID, actorID models.UserID) (*models.Okr, error) {
	okr, err := s.okrRepo.FindByID(okrID, "KeyResults", "Owner")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOkrNotFound
		}
		return nil, fmt.Errorf("failed to find okr: %w", err)
	}

	role, err := resolveRole(s.teamRepo, okr.TeamID, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanPerform(role, authz.ActionView) {
		return nil, ErrForbidden
	}
	if !s.canSeePersonal(okr, actorID, role) {
		return nil, ErrForbidden
	}

	return okr, nil
}

// UpdateOkr updates an OKR. Admin or owner.
func (s *OkrService) UpdateOkr(okrID models.OkrID, actorID models.UserID, input UpdateOkrInput) (*models.Okr, error) {
	okr, _, err := s.loadForEdit(okrID, actorID, authz.ActionEditOkr)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, validationErr("title", "title cannot be empty")
		}
		okr.Title = *input.Title
	}
	if input.Description != nil {
		okr.Description = *input.Description
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, validationErr("type", "must be team or personal")
		}
		okr.Type = *input.Type
	}

	year := okr.QuarterYear
	quarter := okr.QuarterQuarter
	if input.QuarterYear != nil {
		year = *input.QuarterYear
	}
	if input.QuarterQuarter != nil {
		quarter = *input.QuarterQuarter
	}
	if err := validateQuarter(year, quarter); err != nil {
		return nil, err
	}
	okr.QuarterYear = year
	okr.QuarterQuarter = quarter

	if err := s.okrRepo.Update(okr); err != nil {
		return nil, fmt.Errorf("failed to update okr: %w", err)
	}

	return s.okrRepo.FindByID(okr.ID, "KeyResults", "Owner")
}

// DeleteOkr deletes an OKR and its key results. Admin only.
func (s *OkrService) DeleteOkr(okrID models.OkrID, actorID models.UserID) error {
	okr, err := s.okrRepo.FindByID(okrID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOkrNotFound
		}
		return fmt.Errorf("failed to find okr: %w", err)
	}

	role, err := resolveRole(s.teamRepo, okr.TeamID, actorID)
	if err != nil {
		return err
	}
	if !authz.CanPerform(role, authz.ActionDeleteOkr) {
		return ErrForbidden
	}

	if err := s.okrRepo.Delete(okrID); err != nil {
		return fmt.Errorf("failed to delete okr: %w", err)
	}

	return nil
}

// SearchOkrs returns OKRs visible to the actor matching the filters.
func (s *OkrService) SearchOkrs(input SearchOkrsInput) ([]models.Okr, int64, error) {
	if input.QuarterQuarter != nil && (*input.QuarterQuarter < 1 || *input.QuarterQuarter > 4) {
		return nil, 0, validationErr("quarter", "quarter must be between 1 and 4")
	}
	if input.Type != nil && !input.Type.Valid() {
		return nil, 0, validationErr("type", "must be team or personal")
	}

	memberships, err := s.teamRepo.ListMembershipsByUserID(input.ActorID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch team memberships: %w", err)
	}

	roleByTeam := make(map[models.TeamID]models.Role, len(memberships))
	for _, m := range memberships {
		roleByTeam[m.TeamID] = m.Role
	}

	var teamIDs []models.TeamID
	if input.TeamID != nil {
		if !authz.CanPerform(roleByTeam[*input.TeamID], authz.ActionView) {
			return nil, 0, ErrForbidden
		}
		teamIDs = []models.TeamID{*input.TeamID}
	} else {
		for _, m := range memberships {
			teamIDs = append(teamIDs, m.TeamID)
		}
	}

	if len(teamIDs) == 0 {
		return []models.Okr{}, 0, nil
	}

	var adminTeamIDs []models.TeamID
	for teamID, role := range roleByTeam {
		if role == models.RoleAdmin {
			adminTeamIDs = append(adminTeamIDs, teamID)
		}
	}

	actorID := input.ActorID
	filter := repository.OkrFilter{
		TeamIDs:        teamIDs,
		Query:          input.Query,
		Type:           input.Type,
		OwnerID:        input.OwnerID,
		QuarterYear:    input.QuarterYear,
		QuarterQuarter: input.QuarterQuarter,
		ViewerID:       &actorID,
		AdminTeamIDs:   adminTeamIDs,
		Page:           input.Page,
		PageSize:       input.PageSize,
	}

	okrs, total, err := s.okrRepo.Search(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search okrs: %w", err)
	}

	return okrs, total, nil
}

// AddKeyResult adds a key result to an OKR. Admin or owner; an OKR may hold
// at most five key results.
func (s *OkrService) AddKeyResult(okrID models.OkrID, actorID models.UserID, input KeyResultInput) (*models.KeyResult, error) {
	if err := validateKeyResult("key_result", input); err != nil {
		return nil, err
	}

	okr, _, err := s.loadForEdit(okrID, actorID, authz.ActionEditOkr)
	if err != nil {
		return nil, err
	}

	count, err := s.okrRepo.CountKeyResults(okr.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count key results: %w", err)
	}
	if count >= constants.MaxKeyResults {
		return nil, ErrKeyResultLimit
	}

	keyResult := &models.KeyResult{
		ID:           models.NewKeyResultID(),
		OkrID:        okr.ID,
		Title:        input.Title,
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
		Unit:         input.Unit,
	}

	if err := s.okrRepo.AddKeyResult(keyResult); err != nil {
		return nil, fmt.Errorf("failed to add key result: %w", err)
	}

	return keyResult, nil
}

// UpdateKeyResultProgress records progress on a key result. Admin or owner.
func (s *OkrService) UpdateKeyResultProgress(keyResultID models.KeyResultID, actorID models.UserID, currentValue float64) (*models.KeyResult, error) {
	if currentValue < 0 {
		return nil, validationErr("current_value", "current value cannot be negative")
	}

	keyResult, err := s.findKeyResult(keyResultID)
	if err != nil {
		return nil, err
	}

	if _, _, err := s.loadForEdit(keyResult.OkrID, actorID, authz.ActionEditOkr); err != nil {
		return nil, err
	}

	keyResult.CurrentValue = currentValue
	if err := s.okrRepo.UpdateKeyResult(keyResult); err != nil {
		return nil, fmt.Errorf("failed to update key result: %w", err)
	}

	return keyResult, nil
}

// DeleteKeyResult removes a key result. Admin or owner.
func (s *OkrService) DeleteKeyResult(keyResultID models.KeyResultID, actorID models.UserID) error {
	keyResult, err := s.findKeyResult(keyResultID)
	if err != nil {
		return err
	}

	if _, _, err := s.loadForEdit(keyResult.OkrID, actorID, authz.ActionEditOkr); err != nil {
		return err
	}

	if err := s.okrRepo.DeleteKeyResult(keyResultID); err != nil {
		return fmt.Errorf("failed to delete key result: %w", err)
	}

	return nil
}

// loadForEdit loads an OKR and authorizes an edit-class action with the
// self-ownership override.
func (s *OkrService) loadForEdit(okrID models.OkrID, actorID models.UserID, action authz.Action) (*models.Okr, models.Role, error) {
	okr, err := s.okrRepo.FindByID(okrID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.RoleNone, ErrOkrNotFound
		}
		return nil, models.RoleNone, fmt.Errorf("failed to find okr: %w", err)
	}

	role, err := resolveRole(s.teamRepo, okr.TeamID, actorID)
	if err != nil {
		return nil, models.RoleNone, err
	}
	if !authz.CanPerformOwned(role, action, okr.OwnerID == actorID) {
		return nil, models.RoleNone, ErrForbidden
	}

	return okr, role, nil
}

func (s *OkrService) findKeyResult(keyResultID models.KeyResultID) (*models.KeyResult, error) {
	keyResult, err := s.okrRepo.FindKeyResult(keyResultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyResultNotFound
		}
		return nil, fmt.Errorf("failed to find key result: %w", err)
	}
	return keyResult, nil
}

// canSeePersonal applies the personal-OKR visibility rule: owner or admin.
func (s *OkrService) canSeePersonal(okr *models.Okr, actorID models.UserID, role models.Role) bool {
	if okr.Type != models.OkrTypePersonal {
		return true
	}
	return okr.OwnerID == actorID || role == models.RoleAdmin
}

func validateQuarter(year, quarter int) error {
	if year < constants.MinQuarterYear || year > constants.MaxQuarterYear {
		return validationErr("quarter_year",
			fmt.Sprintf("year must be between %d and %d", constants.MinQuarterYear, constants.MaxQuarterYear))
	}
	if quarter < 1 || quarter > 4 {
		return validationErr("quarter_quarter", "quarter must be between 1 and 4")
	}
	return nil
}

func validateKeyResult(field string, input KeyResultInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return validationErr(field+".title", "title is required")
	}
	if input.TargetValue <= 0 {
		return validationErr(field+".target_value", "target value must be greater than zero")
	}
	if input.CurrentValue < 0 {
		return validationErr(field+".current_value", "current value cannot be negative")
	}
	return nil
}
