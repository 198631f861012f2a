// Package tracker owns the authoritative in-memory state (habits, weekly
// goals, date window, will counter) and orchestrates optimistic updates
// against the remote store. All mutations go through its operations; readers
// get copies.
package tracker

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/lucafgreco/hexlife/internal/core/domain"
	"github.com/lucafgreco/hexlife/internal/core/goals"
)

// WillPerToggle is the will-point delta applied per completion toggle.
const WillPerToggle = 10

// EditCursor is the single optional editing state: a target habit plus its
// pending name/area draft.
type EditCursor struct {
	HabitID string `json:"habit_id"`
	Name    string `json:"name"`
	Area    string `json:"area"`
}

type Tracker struct {
	store domain.RemoteStore

	mu        sync.Mutex
	habits    []*domain.Habit
	goals     []domain.WeeklyGoal
	dates     []domain.DateHeader
	totalWill int
	year      int
	week      int
	editing   *EditCursor
	ready     bool

	subMu sync.Mutex
	subs  []func()
}

func New(store domain.RemoteStore) *Tracker {
	return &Tracker{store: store}
}

// Subscribe registers an observer invoked after every state change.
// Callbacks run outside the state lock and must not block for long.
func (t *Tracker) Subscribe(fn func()) {
	t.subMu.Lock()
	defer t.subMu.Unlock()
	t.subs = append(t.subs, fn)
}

func (t *Tracker) notify() {
	t.subMu.Lock()
	subs := make([]func(), len(t.subs))
	copy(subs, t.subs)
	t.subMu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func seedHabits() []*domain.Habit {
	now := time.Now().UTC()
	seeds := []struct{ id, name, area string }{
		{"1", "30 min Exercise", "health"},
		{"2", "Track Expenses", "finance"},
		{"3", "Read 30 pages", "knowledge"},
		{"4", "Speaking Practice", "communication"},
		{"5", "Practice coding", "skill"},
		{"6", "Meditate for 10 min", "meditation"},
	}

	habits := make([]*domain.Habit, 0, len(seeds))
	for _, s := range seeds {
		habits = append(habits, &domain.Habit{
			ID:          s.id,
			Name:        s.name,
			Area:        s.area,
			Color:       domain.AreaColor(s.area),
			Completions: make(map[string]bool),
			CreatedAt:   now,
		})
	}
	return habits
}

// Initialize builds the date window, generates the goal grid and loads state
// from the remote store. A failed fetch is logged and leaves the seed
// habits active; the tracker always ends up ready so the caller is never
// stuck loading. An empty store on a successful fetch is a first run: the
// seeds are persisted so later toggles and edits have backing records.
func (t *Tracker) Initialize(ctx context.Context) {
	today := time.Now().UTC()
	seeds := seedHabits()

	t.mu.Lock()
	t.dates = domain.BuildDateWindow(today)
	t.year = today.Year()
	t.week = domain.WeekNumber(today)
	t.habits = seeds
	t.goals = goals.Generate(t.year)
	t.mu.Unlock()

	remoteHabits, err := t.store.FetchHabits(ctx)
	if err != nil {
		log.Printf("tracker: loading habits failed, keeping defaults: %v", err)
	} else if len(remoteHabits) == 0 {
		for _, h := range seeds {
			if seedErr := t.store.AddHabit(ctx, h.Clone()); seedErr != nil {
				log.Printf("tracker: seeding habit %q failed: %v", h.Name, seedErr)
			}
		}
	}

	stats, err := t.store.FetchUserStats(ctx)
	if err != nil {
		log.Printf("tracker: loading user stats failed, starting at 0: %v", err)
		stats = domain.UserStats{}
	}

	t.mu.Lock()
	if len(remoteHabits) > 0 {
		t.habits = remoteHabits
	}
	t.totalWill = stats.TotalWill
	t.recomputeGoalsLocked()
	t.ready = true
	t.mu.Unlock()
	t.notify()
}

// recomputeGoalsLocked refreshes the full goal grid from current habits.
// Callers must hold mu.
func (t *Tracker) recomputeGoalsLocked() {
	t.goals = goals.Recompute(t.goals, t.habits, t.dates)
}

// RegenerateWeeklyGoals recomputes the full goal grid. Deterministic for
// unchanged inputs.
func (t *Tracker) RegenerateWeeklyGoals() {
	t.mu.Lock()
	t.recomputeGoalsLocked()
	t.mu.Unlock()
	t.notify()
}

func (t *Tracker) findHabitLocked(id string) *domain.Habit {
	for _, h := range t.habits {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// ToggleCompletion flips the habit's completion for the given day and moves
// the will counter by ±WillPerToggle, floored at zero. The local mutation is
// applied before the remote calls are issued; if either call fails, both
// local values are restored to the snapshot this operation took.
func (t *Tracker) ToggleCompletion(ctx context.Context, habitID string, date time.Time) error {
	key := domain.DateKey(date)

	t.mu.Lock()
	habit := t.findHabitLocked(habitID)
	if habit == nil {
		t.mu.Unlock()
		return domain.ErrHabitNotFound
	}

	wasCompleted := habit.CompletedOn(key)
	prevWill := t.totalWill

	delta := WillPerToggle
	if wasCompleted {
		delta = -WillPerToggle
	}
	newWill := prevWill + delta
	if newWill < 0 {
		newWill = 0
	}

	habit.Completions[key] = !wasCompleted
	t.totalWill = newWill
	t.recomputeGoalsLocked()
	t.mu.Unlock()
	t.notify()

	err := t.store.ToggleCompletion(ctx, habitID, key, !wasCompleted)
	if err == nil {
		err = t.store.UpdateWillPower(ctx, newWill)
	}
	if err != nil {
		log.Printf("tracker: toggle sync failed for habit %s on %s, rolling back: %v", habitID, key, err)

		t.mu.Lock()
		if h := t.findHabitLocked(habitID); h != nil {
			h.Completions[key] = wasCompleted
		}
		t.totalWill = prevWill
		t.recomputeGoalsLocked()
		t.mu.Unlock()
		t.notify()
		return err
	}
	return nil
}

// AddHabit validates and optimistically appends a new habit. A failed remote
// create removes the habit again (compensating delete).
func (t *Tracker) AddHabit(ctx context.Context, name, areaID string) (*domain.Habit, error) {
	habit, err := domain.NewHabit(name, areaID)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.habits = append(t.habits, habit)
	t.recomputeGoalsLocked()
	t.mu.Unlock()
	t.notify()

	if err := t.store.AddHabit(ctx, habit); err != nil {
		log.Printf("tracker: adding habit %q failed, removing it again: %v", habit.Name, err)

		t.mu.Lock()
		t.removeHabitLocked(habit.ID)
		t.recomputeGoalsLocked()
		t.mu.Unlock()
		t.notify()
		return nil, err
	}
	return habit.Clone(), nil
}

func (t *Tracker) removeHabitLocked(id string) {
	kept := t.habits[:0]
	for _, h := range t.habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	t.habits = kept
}

// DeleteHabit optimistically removes the habit. A failed remote delete may
// have partially applied, so recovery replaces the whole collection from the
// store instead of re-inserting the single habit.
func (t *Tracker) DeleteHabit(ctx context.Context, id string) error {
	t.mu.Lock()
	if t.findHabitLocked(id) == nil {
		t.mu.Unlock()
		return domain.ErrHabitNotFound
	}
	t.removeHabitLocked(id)
	t.recomputeGoalsLocked()
	t.mu.Unlock()
	t.notify()

	if err := t.store.DeleteHabit(ctx, id); err != nil {
		log.Printf("tracker: deleting habit %s failed, reloading collection: %v", id, err)
		t.reloadHabits(ctx)
		return err
	}
	return nil
}

// reloadHabits replaces the habit collection wholesale with the store's
// authoritative view. A failed reload keeps the optimistic state until the
// next successful sync.
func (t *Tracker) reloadHabits(ctx context.Context) {
	habits, err := t.store.FetchHabits(ctx)
	if err != nil {
		log.Printf("tracker: reload failed, local state may be stale: %v", err)
		return
	}

	t.mu.Lock()
	t.habits = habits
	t.recomputeGoalsLocked()
	t.mu.Unlock()
	t.notify()
}

// StartEdit opens the editing cursor on the habit's current name and area.
func (t *Tracker) StartEdit(habitID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	habit := t.findHabitLocked(habitID)
	if habit == nil {
		return domain.ErrHabitNotFound
	}

	t.editing = &EditCursor{HabitID: habit.ID, Name: habit.Name, Area: habit.Area}
	return nil
}

// SetEditDraft updates the pending name/area on the active cursor. No-op
// without an active cursor.
func (t *Tracker) SetEditDraft(name, areaID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.editing == nil {
		return
	}
	t.editing.Name = name
	t.editing.Area = areaID
}

// CancelEdit clears the editing cursor without touching the habit.
func (t *Tracker) CancelEdit() {
	t.mu.Lock()
	t.editing = nil
	t.mu.Unlock()
}

// SaveEdit applies the cursor's pending name/area to its habit, re-resolving
// the color from the catalog. No-op without a cursor or with a blank pending
// name. The cursor is cleared whether the remote update succeeds or not; a
// failed update falls back to a full reload, same as DeleteHabit.
func (t *Tracker) SaveEdit(ctx context.Context) error {
	t.mu.Lock()
	cursor := t.editing
	if cursor == nil || strings.TrimSpace(cursor.Name) == "" {
		t.mu.Unlock()
		return nil
	}
	t.editing = nil

	habit := t.findHabitLocked(cursor.HabitID)
	if habit == nil {
		t.mu.Unlock()
		return domain.ErrHabitNotFound
	}

	if err := habit.Rename(cursor.Name, cursor.Area); err != nil {
		t.mu.Unlock()
		return err
	}
	update := domain.HabitUpdate{Name: habit.Name, Area: habit.Area, Color: habit.Color}
	t.mu.Unlock()
	t.notify()

	if err := t.store.UpdateHabit(ctx, cursor.HabitID, update); err != nil {
		log.Printf("tracker: updating habit %s failed, reloading collection: %v", cursor.HabitID, err)
		t.reloadHabits(ctx)
		return err
	}
	return nil
}
