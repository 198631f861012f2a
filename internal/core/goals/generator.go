// Package goals builds and recomputes the fixed 52-week per-area goal grid.
package goals

import (
	"github.com/lucafgreco/hexlife/internal/core/domain"
)

// Generate builds the structural grid for the tracked year: one goal per
// (area, week) pair, target fixed, counters zeroed. Generation is idempotent;
// counts are filled separately by Recompute.
func Generate(year int) []domain.WeeklyGoal {
	areas := domain.LifeAreas()
	grid := make([]domain.WeeklyGoal, 0, domain.WeeksPerYear*len(areas))

	for week := 1; week <= domain.WeeksPerYear; week++ {
		for _, area := range areas {
			grid = append(grid, domain.WeeklyGoal{
				Area:              area.ID,
				WeekNumber:        week,
				Year:              year,
				TargetCompletions: domain.DefaultWeeklyTarget,
			})
		}
	}
	return grid
}

// Recompute returns a fresh grid with CurrentCompletions and Completed
// derived from the habit collection, restricted to window days whose week and
// year match each goal. It is a pure full-grid recomputation: calling it
// twice with the same inputs yields identical grids.
func Recompute(grid []domain.WeeklyGoal, habits []*domain.Habit, window []domain.DateHeader) []domain.WeeklyGoal {
	out := make([]domain.WeeklyGoal, len(grid))

	for i, goal := range grid {
		completions := 0
		for _, day := range window {
			if day.WeekNumber != goal.WeekNumber || day.Year != goal.Year {
				continue
			}
			key := domain.DateKey(day.Date)
			for _, h := range habits {
				if h.Area == goal.Area && h.CompletedOn(key) {
					completions++
				}
			}
		}

		goal.CurrentCompletions = completions
		goal.Completed = completions >= goal.TargetCompletions
		out[i] = goal
	}
	return out
}
