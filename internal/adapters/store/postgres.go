package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lucafgreco/hexlife/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// isUniqueViolation matches the unique-violation error class from either
// postgres driver: pgx (wired in the service) or lib/pq (integration tests).
func isUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// PostgresStore persists habits, completions and the user_stats singleton in
// the hosted relational backend.
type PostgresStore struct {
	db *sqlx.DB
}

var _ domain.RemoteStore = (*PostgresStore)(nil)

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type habitRow struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	Area      string       `db:"area"`
	Color     string       `db:"color"`
	CreatedAt sql.NullTime `db:"created_at"`
}

type completionRow struct {
	HabitID string `db:"habit_id"`
	DateKey string `db:"date_key"`
}

func (s *PostgresStore) FetchHabits(ctx context.Context) ([]*domain.Habit, error) {
	rows := []habitRow{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, name, area, color, created_at
		FROM habits
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("habit query error: %w", err)
	}

	comps := []completionRow{}
	err = s.db.SelectContext(ctx, &comps, `SELECT habit_id, date_key FROM completions`)
	if err != nil {
		return nil, fmt.Errorf("completion query error: %w", err)
	}

	byHabit := make(map[string]map[string]bool)
	for _, c := range comps {
		if byHabit[c.HabitID] == nil {
			byHabit[c.HabitID] = make(map[string]bool)
		}
		byHabit[c.HabitID][c.DateKey] = true
	}

	habits := make([]*domain.Habit, 0, len(rows))
	for _, r := range rows {
		completions := byHabit[r.ID]
		if completions == nil {
			completions = make(map[string]bool)
		}
		h := &domain.Habit{
			ID:          r.ID,
			Name:        r.Name,
			Area:        r.Area,
			Color:       r.Color,
			Completions: completions,
		}
		if r.CreatedAt.Valid {
			h.CreatedAt = r.CreatedAt.Time
		}
		habits = append(habits, h)
	}
	return habits, nil
}

func (s *PostgresStore) FetchUserStats(ctx context.Context) (domain.UserStats, error) {
	var stats domain.UserStats
	err := s.db.GetContext(ctx, &stats.TotalWill, `SELECT total_will FROM user_stats WHERE id = 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Singleton row not seeded yet, counter starts at zero.
			return domain.UserStats{}, nil
		}
		return domain.UserStats{}, fmt.Errorf("stats query error: %w", err)
	}
	return stats, nil
}

func (s *PostgresStore) AddHabit(ctx context.Context, h *domain.Habit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO habits (id, name, area, color, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		h.ID, h.Name, h.Area, h.Color, h.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("habit %s already exists: %w", h.ID, err)
		}
		return fmt.Errorf("failed to insert habit: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteHabit(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM completions WHERE habit_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete completions: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func (s *PostgresStore) UpdateHabit(ctx context.Context, id string, update domain.HabitUpdate) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE habits SET name = $1, area = $2, color = $3
		WHERE id = $4`,
		update.Name, update.Area, update.Color, id,
	)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

// ToggleCompletion has insert-or-delete semantics on the (habit, date)
// record. Toggling on a day that is already recorded counts as success, so a
// retried toggle stays idempotent.
func (s *PostgresStore) ToggleCompletion(ctx context.Context, habitID, dateKey string, isNowCompleted bool) error {
	if isNowCompleted {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO completions (habit_id, date_key, created_at)
			VALUES ($1, $2, NOW())`,
			habitID, dateKey,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return nil
			}
			return fmt.Errorf("failed to insert completion: %w", err)
		}
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM completions WHERE habit_id = $1 AND date_key = $2`,
		habitID, dateKey,
	)
	if err != nil {
		return fmt.Errorf("failed to delete completion: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateWillPower(ctx context.Context, total int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_stats (id, total_will, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET total_will = $1, updated_at = NOW()`,
		total,
	)
	if err != nil {
		return fmt.Errorf("failed to update will power: %w", err)
	}
	return nil
}
