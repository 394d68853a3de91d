package services

import (
	"math"
	"time"

	"github.com/tuanemuy/okr-manager-sub001/internal/models"
)

// ComputeProgress returns the 0-100 integer progress of an OKR from its key
// results. Each key result contributes min(current/target, 1) * 100, so
// over-achievement never pushes a single contribution past 100. The result
// is the arithmetic mean, rounded half-up. An empty list yields 0.
func ComputeProgress(keyResults []models.KeyResult) int {
	if len(keyResults) == 0 {
		return 0
	}

	var sum float64
	for _, kr := range keyResults {
		if kr.TargetValue <= 0 {
			// Validation rejects these at creation; a bypassed row
			// contributes nothing rather than dividing by zero.
			continue
		}
		ratio := kr.CurrentValue / kr.TargetValue
		if ratio > 1 {
			ratio = 1
		}
		sum += ratio * 100
	}

	return int(math.Floor(sum/float64(len(keyResults)) + 0.5))
}

// QuarterEnd returns the last calendar day of quarter q in the given year.
func QuarterEnd(year, quarter int) time.Time {
	// Day 0 of the following month is the last day of month 3*q.
	return time.Date(year, time.Month(3*quarter)+1, 0, 0, 0, 0, 0, time.UTC)
}

// ComputeStatus derives an OKR's status from its quarter and progress.
// Completed wins regardless of quarter; an elapsed quarter makes it overdue;
// the current quarter makes it due_soon; anything else is active.
func ComputeStatus(year, quarter, progress int, today time.Time) models.OkrStatus {
	if progress >= 100 {
		return models.OkrStatusCompleted
	}

	end := QuarterEnd(year, quarter)
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	if end.Before(day) {
		return models.OkrStatusOverdue
	}

	start := time.Date(year, time.Month(3*(quarter-1))+1, 1, 0, 0, 0, 0, time.UTC)
	if !day.Before(start) && !day.After(end) {
		return models.OkrStatusDueSoon
	}

	return models.OkrStatusActive
}
