package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tuanemuy/okr-manager-sub001/internal/models"
)

func TestComputeProgress_Empty(t *testing.T) {
	require.Equal(t, 0, ComputeProgress(nil))
	require.Equal(t, 0, ComputeProgress([]models.KeyResult{}))
}

func TestComputeProgress_SingleKeyResult(t *testing.T) {
	keyResults := []models.KeyResult{
		{TargetValue: 50, CurrentValue: 35},
	}
	require.Equal(t, 70, ComputeProgress(keyResults))
}

func TestComputeProgress_ClampsOverachievement(t *testing.T) {
	keyResults := []models.KeyResult{
		{TargetValue: 100, CurrentValue: 250},
	}
	require.Equal(t, 100, ComputeProgress(keyResults))
}

func TestComputeProgress_RoundsHalfUp(t *testing.T) {
	// (25 + 100) / 2 = 62.5, rounded to 63
	keyResults := []models.KeyResult{
		{TargetValue: 100, CurrentValue: 25},
		{TargetValue: 100, CurrentValue: 100},
	}
	require.Equal(t, 63, ComputeProgress(keyResults))
}

func TestComputeProgress_ZeroTargetContributesNothing(t *testing.T) {
	keyResults := []models.KeyResult{
		{TargetValue: 0, CurrentValue: 10},
		{TargetValue: 10, CurrentValue: 10},
	}
	require.Equal(t, 50, ComputeProgress(keyResults))
}

func TestQuarterEnd(t *testing.T) {
	require.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), QuarterEnd(2024, 1))
	require.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), QuarterEnd(2024, 2))
	require.Equal(t, time.Date(2024, time.September, 30, 0, 0, 0, 0, time.UTC), QuarterEnd(2024, 3))
	require.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), QuarterEnd(2024, 4))
}

func TestComputeStatus_CompletedWinsOverElapsedQuarter(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, models.OkrStatusCompleted, ComputeStatus(2024, 1, 100, today))
}

func TestComputeStatus_Overdue(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, models.OkrStatusOverdue, ComputeStatus(2024, 1, 60, today))
}

func TestComputeStatus_DueSoonWithinQuarter(t *testing.T) {
	today := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, models.OkrStatusDueSoon, ComputeStatus(2024, 2, 40, today))

	// Last day of the quarter still counts
	lastDay := time.Date(2024, time.June, 30, 23, 0, 0, 0, time.UTC)
	require.Equal(t, models.OkrStatusDueSoon, ComputeStatus(2024, 2, 40, lastDay))
}

func TestComputeStatus_ActiveForFutureQuarter(t *testing.T) {
	today := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, models.OkrStatusActive, ComputeStatus(2024, 4, 0, today))
	require.Equal(t, models.OkrStatusActive, ComputeStatus(2025, 1, 0, today))
}
