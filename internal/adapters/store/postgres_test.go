package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucafgreco/hexlife/internal/core/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection reset")))
	assert.False(t, isUniqueViolation(nil))
}

func setupPostgres(t *testing.T) (*PostgresStore, *sqlx.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "hexlife_user"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "hexlife_db"),
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Skipf("Database connection failed (skipping integration tests): %v", err)
	}

	db.MustExec("TRUNCATE TABLE completions, habits, user_stats CASCADE")

	return NewPostgresStore(db), db, func() {
		db.Close()
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestPostgresStore_Integration(t *testing.T) {
	s, _, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()

	h, err := domain.NewHabit("Morning Run", "health")
	require.NoError(t, err)
	h.CreatedAt = time.Now().UTC().Truncate(time.Second)

	t.Run("Success: AddHabit then FetchHabits round-trips", func(t *testing.T) {
		require.NoError(t, s.AddHabit(ctx, h))

		habits, err := s.FetchHabits(ctx)
		require.NoError(t, err)
		require.Len(t, habits, 1)
		assert.Equal(t, h.ID, habits[0].ID)
		assert.Equal(t, "Morning Run", habits[0].Name)
		assert.Equal(t, "#09855c", habits[0].Color)
		assert.Empty(t, habits[0].Completions)
	})

	t.Run("Error: duplicate id is rejected", func(t *testing.T) {
		err := s.AddHabit(ctx, h)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Success: toggle on records the day, repeated toggle on stays clean", func(t *testing.T) {
		require.NoError(t, s.ToggleCompletion(ctx, h.ID, "2026-02-10", true))
		require.NoError(t, s.ToggleCompletion(ctx, h.ID, "2026-02-10", true))

		habits, err := s.FetchHabits(ctx)
		require.NoError(t, err)
		assert.True(t, habits[0].CompletedOn("2026-02-10"))
		assert.Equal(t, 1, habits[0].CompletionCount())
	})

	t.Run("Success: toggle off deletes the record", func(t *testing.T) {
		require.NoError(t, s.ToggleCompletion(ctx, h.ID, "2026-02-10", false))

		habits, err := s.FetchHabits(ctx)
		require.NoError(t, err)
		assert.False(t, habits[0].CompletedOn("2026-02-10"))
	})

	t.Run("Success: UpdateHabit rewrites name, area and color", func(t *testing.T) {
		update := domain.HabitUpdate{Name: "Evening Run", Area: "skill", Color: "#EF4444"}
		require.NoError(t, s.UpdateHabit(ctx, h.ID, update))

		habits, err := s.FetchHabits(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Evening Run", habits[0].Name)
		assert.Equal(t, "skill", habits[0].Area)
	})

	t.Run("Error: UpdateHabit on an unknown id", func(t *testing.T) {
		err := s.UpdateHabit(ctx, "ghost", domain.HabitUpdate{Name: "X"})
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Success: will power upserts on the singleton row", func(t *testing.T) {
		stats, err := s.FetchUserStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalWill)

		require.NoError(t, s.UpdateWillPower(ctx, 150))
		require.NoError(t, s.UpdateWillPower(ctx, 140))

		stats, err = s.FetchUserStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 140, stats.TotalWill)
	})

	t.Run("Success: DeleteHabit cascades over completions", func(t *testing.T) {
		require.NoError(t, s.ToggleCompletion(ctx, h.ID, "2026-02-11", true))
		require.NoError(t, s.DeleteHabit(ctx, h.ID))

		habits, err := s.FetchHabits(ctx)
		require.NoError(t, err)
		assert.Empty(t, habits)
	})

	t.Run("Error: DeleteHabit on an unknown id", func(t *testing.T) {
		assert.ErrorIs(t, s.DeleteHabit(ctx, "ghost"), domain.ErrHabitNotFound)
	})
}
