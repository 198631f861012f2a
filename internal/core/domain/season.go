package domain

import (
	"math"
	"time"
)

// SeasonArc is one of four fixed calendar-quarter progress windows. Arcs are
// derived from the clock, never persisted.
type SeasonArc struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Color string    `json:"color"`
}

func seasonArcs(year int) []SeasonArc {
	return []SeasonArc{
		{Name: "Winter Vanguard", Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), End: time.Date(year, time.March, 31, 0, 0, 0, 0, time.UTC), Color: "#60A5FA"},
		{Name: "Spring Growth", Start: time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC), End: time.Date(year, time.June, 30, 0, 0, 0, 0, time.UTC), Color: "#4ADE80"},
		{Name: "Summer Peak", Start: time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC), End: time.Date(year, time.September, 30, 0, 0, 0, 0, time.UTC), Color: "#FACC15"},
		{Name: "Autumn Harvest", Start: time.Date(year, time.October, 1, 0, 0, 0, 0, time.UTC), End: time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC), Color: "#FB923C"},
	}
}

// CurrentSeason selects the arc containing now's month.
func CurrentSeason(now time.Time) SeasonArc {
	return seasonArcs(now.Year())[int(now.Month()-1)/3]
}

// TotalDays is the inclusive day count of the arc.
func (s SeasonArc) TotalDays() int {
	return int(math.Ceil(s.End.Sub(s.Start).Hours()/24)) + 1
}

// DaysElapsed counts days since the arc started, never below 1 so a freshly
// started arc still reads "day 1".
func (s SeasonArc) DaysElapsed(now time.Time) int {
	elapsed := int(math.Ceil(now.Sub(s.Start).Hours() / 24))
	if elapsed < 1 {
		return 1
	}
	return elapsed
}
