package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestRedisClient_Integration(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	host := getEnv("REDIS_HOST", "localhost")
	port := getEnv("REDIS_PORT", "6379")
	pass := os.Getenv("REDIS_PASSWORD")

	rdb, err := NewRedisClient(host, port, pass, 1)
	if err != nil {
		t.Skipf("Skipping redis integration test: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()
	require.NoError(t, rdb.FlushDB(ctx).Err())

	t.Run("Success: constructor returns a pingable client", func(t *testing.T) {
		pong, err := rdb.Ping(ctx).Result()
		assert.NoError(t, err)
		assert.Equal(t, "PONG", pong)
	})

	t.Run("Success: set and get round-trip", func(t *testing.T) {
		key := "hexlife:test:roundtrip"
		require.NoError(t, rdb.Set(ctx, key, "cached", 1*time.Minute).Err())

		val, err := rdb.Get(ctx, key).Result()
		assert.NoError(t, err)
		assert.Equal(t, "cached", val)

		rdb.Del(ctx, key)
	})

	t.Run("Success: expired keys read back as redis.Nil", func(t *testing.T) {
		key := "hexlife:test:expiring"
		require.NoError(t, rdb.Set(ctx, key, "gone soon", 1*time.Second).Err())

		time.Sleep(1100 * time.Millisecond)

		_, err := rdb.Get(ctx, key).Result()
		assert.ErrorIs(t, err, redis.Nil)
	})

	t.Run("Success: pooled client handles concurrent writers", func(t *testing.T) {
		concurrency := 20
		done := make(chan error, concurrency)

		for i := 0; i < concurrency; i++ {
			go func(id int) {
				key := fmt.Sprintf("hexlife:test:concurrent:%d", id)
				if err := rdb.Set(ctx, key, "v", 10*time.Second).Err(); err != nil {
					done <- err
					return
				}
				_, err := rdb.Get(ctx, key).Result()
				done <- err
			}(i)
		}

		for i := 0; i < concurrency; i++ {
			assert.NoError(t, <-done)
		}
	})

	t.Run("Error: unreachable server fails at construction", func(t *testing.T) {
		_, err := NewRedisClient("localhost", "9999", "", 1)
		assert.Error(t, err)
	})
}
