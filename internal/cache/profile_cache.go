package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cocktales/cocktales-api/internal/domain/entity"
)

const keyProfile = "profile:user:"

// ProfileCache caches profile lookups by user id in Redis. Writes to a
// profile must invalidate its entry.
type ProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewProfileCache returns a new ProfileCache.
func NewProfileCache(rdb *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached profile for userID, or nil on miss.
func (c *ProfileCache) Get(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	b, err := c.rdb.Get(ctx, keyProfile+userID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p entity.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Set stores the profile under its owner's id.
func (c *ProfileCache) Set(ctx context.Context, p *entity.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyProfile+p.UserID.String(), b, c.ttl).Err()
}

// Invalidate drops the cached entry for userID.
func (c *ProfileCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.rdb.Del(ctx, keyProfile+userID.String()).Err()
}
