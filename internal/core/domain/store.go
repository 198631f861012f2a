package domain

import "context"

// HabitUpdate carries the mutable fields of a habit for remote updates.
type HabitUpdate struct {
	Name  string `json:"name"`
	Area  string `json:"area"`
	Color string `json:"color"`
}

// UserStats is the singleton remote record holding the will counter.
type UserStats struct {
	TotalWill int `json:"total_will"`
}

// RemoteStore is the asynchronous CRUD contract against the hosted relational
// backend. Implementations never panic on expected conditions; transport and
// store failures surface as errors and the tracker decides how to recover
// (compensating rollback or full re-fetch).
type RemoteStore interface {
	// FetchHabits retrieves all habits with their completion day keys.
	FetchHabits(ctx context.Context) ([]*Habit, error)

	// FetchUserStats retrieves the singleton stats record.
	FetchUserStats(ctx context.Context) (UserStats, error)

	// AddHabit persists a new habit definition.
	AddHabit(ctx context.Context, habit *Habit) error

	// DeleteHabit removes a habit and its completion records.
	DeleteHabit(ctx context.Context, id string) error

	// UpdateHabit rewrites a habit's name, area and color.
	UpdateHabit(ctx context.Context, id string, update HabitUpdate) error

	// ToggleCompletion inserts or deletes the (habit, day) completion record
	// depending on isNowCompleted.
	ToggleCompletion(ctx context.Context, habitID, dateKey string, isNowCompleted bool) error

	// UpdateWillPower writes the new will total to the stats record.
	UpdateWillPower(ctx context.Context, total int) error
}
