package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lucafgreco/hexlife/internal/adapters/store"
	"github.com/lucafgreco/hexlife/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHabit(t *testing.T, name, area string) *domain.Habit {
	t.Helper()
	h, err := domain.NewHabit(name, area)
	require.NoError(t, err)
	return h
}

func TestMemoryStoreHabits(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: add then fetch returns independent copies", func(t *testing.T) {
		s := store.NewMemoryStore()
		h := newHabit(t, "Run", "health")
		require.NoError(t, s.AddHabit(ctx, h))

		habits, err := s.FetchHabits(ctx)
		require.NoError(t, err)
		require.Len(t, habits, 1)
		assert.Equal(t, h.ID, habits[0].ID)

		habits[0].Name = "mutated"
		again, err := s.FetchHabits(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Run", again[0].Name)
	})

	t.Run("Success: fetch orders habits by creation time", func(t *testing.T) {
		s := store.NewMemoryStore()
		older := newHabit(t, "Older", "health")
		older.CreatedAt = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
		newer := newHabit(t, "Newer", "skill")
		newer.CreatedAt = time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

		require.NoError(t, s.AddHabit(ctx, newer))
		require.NoError(t, s.AddHabit(ctx, older))

		habits, err := s.FetchHabits(ctx)
		require.NoError(t, err)
		require.Len(t, habits, 2)
		assert.Equal(t, "Older", habits[0].Name)
		assert.Equal(t, "Newer", habits[1].Name)
	})

	t.Run("Success: update rewrites name, area and color", func(t *testing.T) {
		s := store.NewMemoryStore()
		h := newHabit(t, "Run", "health")
		require.NoError(t, s.AddHabit(ctx, h))

		update := domain.HabitUpdate{Name: "Long run", Area: "skill", Color: "#EF4444"}
		require.NoError(t, s.UpdateHabit(ctx, h.ID, update))

		habits, err := s.FetchHabits(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Long run", habits[0].Name)
		assert.Equal(t, "skill", habits[0].Area)
		assert.Equal(t, "#EF4444", habits[0].Color)
	})

	t.Run("Success: delete removes the habit", func(t *testing.T) {
		s := store.NewMemoryStore()
		h := newHabit(t, "Run", "health")
		require.NoError(t, s.AddHabit(ctx, h))
		require.NoError(t, s.DeleteHabit(ctx, h.ID))

		habits, err := s.FetchHabits(ctx)
		require.NoError(t, err)
		assert.Empty(t, habits)
	})

	t.Run("Error: delete and update reject unknown ids", func(t *testing.T) {
		s := store.NewMemoryStore()
		assert.ErrorIs(t, s.DeleteHabit(ctx, "ghost"), domain.ErrHabitNotFound)
		assert.ErrorIs(t, s.UpdateHabit(ctx, "ghost", domain.HabitUpdate{}), domain.ErrHabitNotFound)
	})
}

func TestMemoryStoreToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: toggle on records the day, toggle off clears it", func(t *testing.T) {
		s := store.NewMemoryStore()
		h := newHabit(t, "Run", "health")
		require.NoError(t, s.AddHabit(ctx, h))

		require.NoError(t, s.ToggleCompletion(ctx, h.ID, "2026-02-10", true))
		habits, err := s.FetchHabits(ctx)
		require.NoError(t, err)
		assert.True(t, habits[0].CompletedOn("2026-02-10"))

		require.NoError(t, s.ToggleCompletion(ctx, h.ID, "2026-02-10", false))
		habits, err = s.FetchHabits(ctx)
		require.NoError(t, err)
		assert.False(t, habits[0].CompletedOn("2026-02-10"))
	})

	t.Run("Error: unknown habit", func(t *testing.T) {
		s := store.NewMemoryStore()
		err := s.ToggleCompletion(ctx, "ghost", "2026-02-10", true)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})
}

func TestMemoryStoreWillPower(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	stats, err := s.FetchUserStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalWill)

	require.NoError(t, s.UpdateWillPower(ctx, 230))
	stats, err = s.FetchUserStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 230, stats.TotalWill)
}

func TestMemoryStoreFailWith(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend down")

	s := store.NewMemoryStore()
	h := newHabit(t, "Run", "health")
	require.NoError(t, s.AddHabit(ctx, h))

	s.FailWith = boom

	_, err := s.FetchHabits(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.FetchUserStats(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.AddHabit(ctx, newHabit(t, "X", "skill")), boom)
	assert.ErrorIs(t, s.DeleteHabit(ctx, h.ID), boom)
	assert.ErrorIs(t, s.UpdateHabit(ctx, h.ID, domain.HabitUpdate{}), boom)
	assert.ErrorIs(t, s.ToggleCompletion(ctx, h.ID, "2026-02-10", true), boom)
	assert.ErrorIs(t, s.UpdateWillPower(ctx, 10), boom)

	s.FailWith = nil
	habits, err := s.FetchHabits(ctx)
	require.NoError(t, err)
	assert.Len(t, habits, 1)
}
