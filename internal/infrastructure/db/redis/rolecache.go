package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const roleTTL = 5 * time.Minute

// RoleCache caches email→role lookups so the directory is not hit on every
// authenticated request. Entries expire after roleTTL and are invalidated
// eagerly on profile updates, bounding how long a revoked role survives.
// Key format: role:<email>
type RoleCache struct {
	client *redis.Client
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
func NewRoleCache(client *redis.Client) *RoleCache {
	return &RoleCache{client: client}
}

// Get returns the cached role for email and whether an entry was present.
func (c *RoleCache) Get(ctx context.Context, email string) (string, bool, error) {
	role, err := c.client.Get(ctx, c.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("role cache get: %w", err)
	}
	return role, true, nil
}

// Set stores the role for email with the cache TTL.
func (c *RoleCache) Set(ctx context.Context, email, role string) error {
	return c.client.Set(ctx, c.key(email), role, roleTTL).Err()
}

// Invalidate drops the entry for email.
func (c *RoleCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, c.key(email)).Err()
}

func (c *RoleCache) key(email string) string {
	return "role:" + email
}
