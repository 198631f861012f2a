package store

import (
	"context"
	"sort"
	"sync"

	"github.com/lucafgreco/hexlife/internal/core/domain"
)

var _ domain.RemoteStore = (*MemoryStore)(nil)

// MemoryStore keeps everything in process memory. It backs local development
// when no database is configured, and tests use its FailWith hook to exercise
// the tracker's rollback paths.
type MemoryStore struct {
	mu        sync.RWMutex
	habits    map[string]*domain.Habit
	totalWill int

	// FailWith, when non-nil, is returned by every mutation so tests can
	// simulate a broken backend.
	FailWith error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{habits: make(map[string]*domain.Habit)}
}

func (s *MemoryStore) FetchHabits(ctx context.Context) ([]*domain.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailWith != nil {
		return nil, s.FailWith
	}

	habits := make([]*domain.Habit, 0, len(s.habits))
	for _, h := range s.habits {
		habits = append(habits, h.Clone())
	}
	sort.Slice(habits, func(i, j int) bool {
		if habits[i].CreatedAt.Equal(habits[j].CreatedAt) {
			return habits[i].ID < habits[j].ID
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
	return habits, nil
}

func (s *MemoryStore) FetchUserStats(ctx context.Context) (domain.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailWith != nil {
		return domain.UserStats{}, s.FailWith
	}
	return domain.UserStats{TotalWill: s.totalWill}, nil
}

func (s *MemoryStore) AddHabit(ctx context.Context, habit *domain.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}
	s.habits[habit.ID] = habit.Clone()
	return nil
}

func (s *MemoryStore) DeleteHabit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}
	if _, ok := s.habits[id]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(s.habits, id)
	return nil
}

func (s *MemoryStore) UpdateHabit(ctx context.Context, id string, update domain.HabitUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}
	h, ok := s.habits[id]
	if !ok {
		return domain.ErrHabitNotFound
	}
	h.Name = update.Name
	h.Area = update.Area
	h.Color = update.Color
	return nil
}

func (s *MemoryStore) ToggleCompletion(ctx context.Context, habitID, dateKey string, isNowCompleted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}
	h, ok := s.habits[habitID]
	if !ok {
		return domain.ErrHabitNotFound
	}
	if isNowCompleted {
		h.Completions[dateKey] = true
	} else {
		delete(h.Completions, dateKey)
	}
	return nil
}

func (s *MemoryStore) UpdateWillPower(ctx context.Context, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}
	s.totalWill = total
	return nil
}
