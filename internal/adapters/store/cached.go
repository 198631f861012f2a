package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lucafgreco/hexlife/internal/core/domain"
)

const (
	habitsCacheKey = "hexlife:habits"
	statsCacheKey  = "hexlife:stats"
	cacheTTL       = 30 * time.Minute
)

var _ domain.RemoteStore = (*CachedStore)(nil)

// CachedStore is a read-through redis cache over another RemoteStore. Reads
// of the habit collection and stats record are cached; every mutation
// invalidates. Redis being down never fails an operation, it only loses the
// cache.
type CachedStore struct {
	next  domain.RemoteStore
	cache *redis.Client
}

func NewCachedStore(next domain.RemoteStore, cache *redis.Client) *CachedStore {
	return &CachedStore{next: next, cache: cache}
}

func (s *CachedStore) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[CACHE] invalidation failed for %v: %v", keys, err)
	}
}

func (s *CachedStore) FetchHabits(ctx context.Context) ([]*domain.Habit, error) {
	val, err := s.cache.Get(ctx, habitsCacheKey).Result()
	if err == nil {
		var habits []*domain.Habit
		if err := json.Unmarshal([]byte(val), &habits); err == nil {
			return habits, nil
		}

		log.Printf("[CACHE] corrupted habit payload, cleaning up key")
		s.cache.Del(ctx, habitsCacheKey)
	} else if err != redis.Nil {
		log.Printf("[CACHE] redis read error: %v", err)
	}

	habits, err := s.next.FetchHabits(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(habits); err == nil {
		if setErr := s.cache.Set(ctx, habitsCacheKey, data, cacheTTL).Err(); setErr != nil {
			log.Printf("[CACHE] redis set error: %v", setErr)
		}
	}
	return habits, nil
}

func (s *CachedStore) FetchUserStats(ctx context.Context) (domain.UserStats, error) {
	val, err := s.cache.Get(ctx, statsCacheKey).Result()
	if err == nil {
		var stats domain.UserStats
		if err := json.Unmarshal([]byte(val), &stats); err == nil {
			return stats, nil
		}
		s.cache.Del(ctx, statsCacheKey)
	} else if err != redis.Nil {
		log.Printf("[CACHE] redis read error: %v", err)
	}

	stats, err := s.next.FetchUserStats(ctx)
	if err != nil {
		return domain.UserStats{}, err
	}

	if data, err := json.Marshal(stats); err == nil {
		if setErr := s.cache.Set(ctx, statsCacheKey, data, cacheTTL).Err(); setErr != nil {
			log.Printf("[CACHE] redis set error: %v", setErr)
		}
	}
	return stats, nil
}

func (s *CachedStore) AddHabit(ctx context.Context, habit *domain.Habit) error {
	if err := s.next.AddHabit(ctx, habit); err != nil {
		return err
	}
	s.invalidate(ctx, habitsCacheKey)
	return nil
}

func (s *CachedStore) DeleteHabit(ctx context.Context, id string) error {
	if err := s.next.DeleteHabit(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, habitsCacheKey)
	return nil
}

func (s *CachedStore) UpdateHabit(ctx context.Context, id string, update domain.HabitUpdate) error {
	if err := s.next.UpdateHabit(ctx, id, update); err != nil {
		return err
	}
	s.invalidate(ctx, habitsCacheKey)
	return nil
}

func (s *CachedStore) ToggleCompletion(ctx context.Context, habitID, dateKey string, isNowCompleted bool) error {
	if err := s.next.ToggleCompletion(ctx, habitID, dateKey, isNowCompleted); err != nil {
		return err
	}
	s.invalidate(ctx, habitsCacheKey)
	return nil
}

func (s *CachedStore) UpdateWillPower(ctx context.Context, total int) error {
	if err := s.next.UpdateWillPower(ctx, total); err != nil {
		return err
	}
	s.invalidate(ctx, statsCacheKey)
	return nil
}
