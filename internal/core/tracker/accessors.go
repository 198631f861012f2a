package tracker

import (
	"github.com/lucafgreco/hexlife/internal/core/domain"
)

// Habits returns a deep copy of the habit collection; callers cannot mutate
// tracker state through it.
func (t *Tracker) Habits() []*domain.Habit {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*domain.Habit, 0, len(t.habits))
	for _, h := range t.habits {
		out = append(out, h.Clone())
	}
	return out
}

// HabitsByArea returns the habits belonging to one area, or all habits for
// the empty id (the "all areas" filter).
func (t *Tracker) HabitsByArea(areaID string) []*domain.Habit {
	if areaID == "" {
		return t.Habits()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var out []*domain.Habit
	for _, h := range t.habits {
		if h.Area == areaID {
			out = append(out, h.Clone())
		}
	}
	return out
}

// WeeklyGoals returns a copy of the full goal grid.
func (t *Tracker) WeeklyGoals() []domain.WeeklyGoal {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.WeeklyGoal, len(t.goals))
	copy(out, t.goals)
	return out
}

// DateRange returns the fixed display window built at initialization.
func (t *Tracker) DateRange() []domain.DateHeader {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.DateHeader, len(t.dates))
	copy(out, t.dates)
	return out
}

func (t *Tracker) TotalWill() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalWill
}

// CurrentWeek is the week number of the day Initialize ran on.
func (t *Tracker) CurrentWeek() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.week
}

// Year is the tracked year, fixed at initialization.
func (t *Tracker) Year() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.year
}

// Editing returns a copy of the active cursor, or nil when not editing.
func (t *Tracker) Editing() *EditCursor {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.editing == nil {
		return nil
	}
	c := *t.editing
	return &c
}

// Ready reports whether Initialize has completed.
func (t *Tracker) Ready() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ready
}
