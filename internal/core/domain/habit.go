package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
	ErrHabitNotFound    = errors.New("habit not found")
)

const MaxNameLen = 100

// Habit is owned by the tracker and mutated only through its operations.
// Completions maps a calendar-day key (YYYY-MM-DD) to done/not-done.
type Habit struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Area        string          `json:"area"`
	Color       string          `json:"color"`
	Completions map[string]bool `json:"completions"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewHabit validates the name, resolves the display color from the area
// catalog and assigns a fresh id. Unknown areas keep the given area id but
// fall back to the default color.
func NewHabit(name, areaID string) (*Habit, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrHabitNameEmpty
	}
	if len(trimmed) > MaxNameLen {
		return nil, ErrHabitNameTooLong
	}

	return &Habit{
		ID:          uuid.New().String(),
		Name:        trimmed,
		Area:        areaID,
		Color:       AreaColor(areaID),
		Completions: make(map[string]bool),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Rename rewrites name, area and color together. The color is always
// re-resolved from the catalog so it never drifts from the area.
func (h *Habit) Rename(name, areaID string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrHabitNameEmpty
	}
	if len(trimmed) > MaxNameLen {
		return ErrHabitNameTooLong
	}

	h.Name = trimmed
	h.Area = areaID
	h.Color = AreaColor(areaID)
	return nil
}

// CompletedOn reports whether the habit was done on the given day key.
func (h *Habit) CompletedOn(dateKey string) bool {
	return h.Completions[dateKey]
}

// CompletionCount counts all done days, regardless of window.
func (h *Habit) CompletionCount() int {
	n := 0
	for _, done := range h.Completions {
		if done {
			n++
		}
	}
	return n
}

// Clone returns a deep copy, used for operation snapshots.
func (h *Habit) Clone() *Habit {
	c := *h
	c.Completions = make(map[string]bool, len(h.Completions))
	for k, v := range h.Completions {
		c.Completions[k] = v
	}
	return &c
}
