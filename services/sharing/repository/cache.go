package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
	"github.com/sentinela-app/sentinela/internal/pkg/database"
)

// resolveCountTTL keeps hit counters around for the life of the
// longest delegation token plus slack
const resolveCountTTL = 7 * 24 * time.Hour

// ShareCache provides Redis-backed resolve bookkeeping
type ShareCache struct {
	redisClient *database.RedisClient
}

// NewShareCache creates a new share cache
func NewShareCache(redisClient *database.RedisClient) *ShareCache {
	return &ShareCache{
		redisClient: redisClient,
	}
}

// IncrementResolveCount bumps and returns the token's hit counter
func (c *ShareCache) IncrementResolveCount(ctx context.Context, tokenID string) (int64, error) {
	key := fmt.Sprintf(constants.KeyShareResolveCount, tokenID)

	count, err := c.redisClient.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment resolve count: %w", err)
	}
	if count == 1 {
		// First hit sets the expiry.
		if err := c.redisClient.Client.Expire(ctx, key, resolveCountTTL).Err(); err != nil {
			return count, fmt.Errorf("failed to set resolve count TTL: %w", err)
		}
	}
	return count, nil
}
