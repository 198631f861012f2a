// Package metrics holds the pure derived-state computations: completion
// rates, weekly goal lookups and season-arc progress. Nothing in here
// mutates; every function is safe to call repeatedly during rendering.
package metrics

import (
	"math"
	"time"

	"github.com/lucafgreco/hexlife/internal/core/domain"
)

// AreaCompletionRate is the percentage of completed (habit, day) pairs for
// the area across the window, in [0, 100]. Areas with no habits rate 0.
func AreaCompletionRate(habits []*domain.Habit, areaID string, window []domain.DateHeader) float64 {
	var areaHabits []*domain.Habit
	for _, h := range habits {
		if h.Area == areaID {
			areaHabits = append(areaHabits, h)
		}
	}

	totalPossible := len(areaHabits) * len(window)
	if totalPossible == 0 {
		return 0
	}

	completed := 0
	for _, day := range window {
		key := domain.DateKey(day.Date)
		for _, h := range areaHabits {
			if h.CompletedOn(key) {
				completed++
			}
		}
	}

	return float64(completed) / float64(totalPossible) * 100
}

// WeeklyProgress looks up the goal row for (area, week, year). A missing row
// yields the default target with zero progress rather than an error.
func WeeklyProgress(grid []domain.WeeklyGoal, areaID string, week, year int) domain.WeeklyProgress {
	for _, g := range grid {
		if g.Area == areaID && g.WeekNumber == week && g.Year == year {
			return domain.WeeklyProgress{
				Current:   g.CurrentCompletions,
				Target:    g.TargetCompletions,
				Completed: g.Completed,
			}
		}
	}
	return domain.WeeklyProgress{Current: 0, Target: domain.DefaultWeeklyTarget, Completed: false}
}

// AreaSeasonStat is one area's progression within the current season arc.
type AreaSeasonStat struct {
	AreaID   string  `json:"area_id"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Done     int     `json:"done"`
	Possible int     `json:"possible"`
	Rate     float64 `json:"rate"`
}

// SeasonReport is the full season-arc progress view.
type SeasonReport struct {
	Season      domain.SeasonArc `json:"season"`
	DaysElapsed int              `json:"days_elapsed"`
	TotalDays   int              `json:"total_days"`
	Areas       []AreaSeasonStat `json:"areas"`
}

// SeasonProgress selects the arc containing now and derives a per-area
// efficiency rate scoped to the arc's elapsed days.
func SeasonProgress(habits []*domain.Habit, now time.Time) SeasonReport {
	season := domain.CurrentSeason(now)
	elapsed := season.DaysElapsed(now)

	report := SeasonReport{
		Season:      season,
		DaysElapsed: elapsed,
		TotalDays:   season.TotalDays(),
		Areas:       make([]AreaSeasonStat, 0, len(domain.LifeAreas())),
	}

	for _, area := range domain.LifeAreas() {
		done := 0
		habitCount := 0
		for _, h := range habits {
			if h.Area != area.ID {
				continue
			}
			habitCount++
			done += h.CompletionCount()
		}

		possible := habitCount * elapsed
		rate := 0.0
		if possible > 0 {
			rate = math.Round(float64(done) / float64(possible) * 100)
		}

		report.Areas = append(report.Areas, AreaSeasonStat{
			AreaID:   area.ID,
			Name:     area.Name,
			Color:    area.Color,
			Done:     done,
			Possible: possible,
			Rate:     rate,
		})
	}
	return report
}

// LevelProgress converts the raw will counter into the level/XP progression
// shown by the header: 100 will per level.
type LevelProgress struct {
	Level     int `json:"level"`
	XP        int `json:"xp"`
	NextLevel int `json:"next_level_at"`
	TotalWill int `json:"total_will"`
}

// Level derives the level progression from a will total.
func Level(totalWill int) LevelProgress {
	return LevelProgress{
		Level:     totalWill/100 + 1,
		XP:        totalWill % 100,
		NextLevel: 100,
		TotalWill: totalWill,
	}
}
