package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devmarket/devmarket-api/internal/api/metrics"
	"github.com/devmarket/devmarket-api/internal/core/domain"
)

const (
	directoryKey = "profiles:directory"
	directoryTTL = 30 * time.Second
)

// ProfileCache is a read-through cache for the public profile directory.
// Every error is reported to the caller, which treats it as a miss; the
// cache never fails a request.
type ProfileCache struct {
	client *redis.Client
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// GetDirectory returns the cached directory and whether it was present.
func (c *ProfileCache) GetDirectory(ctx context.Context) ([]domain.ProfileView, bool, error) {
	raw, err := c.client.Get(ctx, directoryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.DirectoryCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("directory cache get: %w", err)
	}

	var views []domain.ProfileView
	if err := json.Unmarshal(raw, &views); err != nil {
		// stale or corrupt payload: drop it and treat as a miss
		_ = c.client.Del(ctx, directoryKey).Err()
		metrics.DirectoryCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}

	metrics.DirectoryCacheTotal.WithLabelValues("hit").Inc()
	return views, true, nil
}

// SetDirectory caches the directory for directoryTTL.
func (c *ProfileCache) SetDirectory(ctx context.Context, views []domain.ProfileView) error {
	raw, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("directory cache marshal: %w", err)
	}
	return c.client.Set(ctx, directoryKey, raw, directoryTTL).Err()
}

// Invalidate drops the cached directory after any profile write.
func (c *ProfileCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, directoryKey).Err()
}
