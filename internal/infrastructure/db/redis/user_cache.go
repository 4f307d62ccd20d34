package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ridenow/user-service/internal/core/domain"
)

// DefaultTTL is used when Set is called with a non-positive ttl.
const DefaultTTL = 300 * time.Second

const backendName = "redis"

// UserCache stores JSON user snapshots in Redis with an expiry.
// Key format is chosen by the caller (see domain.CacheKey).
type UserCache struct {
	client  *redis.Client
	timeout time.Duration
}

// NewUserCache creates a UserCache wrapping the given Redis client. Each
// operation is bounded by timeout.
func NewUserCache(client *redis.Client, timeout time.Duration) *UserCache {
	return &UserCache{client: client, timeout: timeoutOrDefault(timeout)}
}

// Get returns the user cached under key. A missing or expired key is
// reported as found=false with a nil error.
func (c *UserCache) Get(ctx context.Context, key string) (*domain.UserRecord, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domain.NewBackendError(backendName, "get", err)
	}

	var user domain.UserRecord
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, false, fmt.Errorf("decode cached user %q: %w", key, err)
	}
	return &user, true, nil
}

// Set caches user under key for ttl, or DefaultTTL when ttl <= 0.
func (c *UserCache) Set(ctx context.Context, key string, user *domain.UserRecord, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user %q: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return domain.NewBackendError(backendName, "set", err)
	}
	return nil
}
