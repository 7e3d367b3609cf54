package locking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// releaseScript deletes the key only while it still carries our token, so a
// lock that expired and was taken by another instance is left alone.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker is a Locker shared by every instance connected to the same
// Redis. Keys expire after ttl so a crashed holder cannot block a member
// forever.
type RedisLocker struct {
	client       *redis.Client
	prefix       string
	ttl          time.Duration
	pollInterval time.Duration
}

// NewRedisLocker connects to Redis and verifies the connection.
func NewRedisLocker(addr, password string, db int, ttl time.Duration) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisLockerWithClient(client, ttl), nil
}

// NewRedisLockerWithClient wraps an existing client.
func NewRedisLockerWithClient(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisLocker{
		client:       client,
		prefix:       "planner:lock:",
		ttl:          ttl,
		pollInterval: 25 * time.Millisecond,
	}
}

func (r *RedisLocker) lockOne(ctx context.Context, key, token string) error {
	redisKey := r.prefix + key
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()
	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return ErrTimeout
			}
			return fmt.Errorf("redis setnx %s: %w", key, err)
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ErrTimeout
		case <-ticker.C:
		}
	}
}

func (r *RedisLocker) unlockOne(key, token string) {
	// the caller's context may already be cancelled; release on a fresh one
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, r.client, []string{r.prefix + key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		logrus.WithError(err).WithField("key", key).Warn("failed to release redis lock")
	}
}

// Lock acquires every key in sorted order, polling until ctx is done.
func (r *RedisLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = normalize(keys)
	token := uuid.NewString()
	held := make([]string, 0, len(keys))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			r.unlockOne(held[i], token)
		}
	}

	for _, key := range keys {
		if err := r.lockOne(ctx, key, token); err != nil {
			release()
			return nil, err
		}
		held = append(held, key)
	}

	var once sync.Once
	return func() { once.Do(release) }, nil
}

// Ping reports whether Redis is reachable.
func (r *RedisLocker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *RedisLocker) Close() error {
	return r.client.Close()
}
