package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/avamus/visionboard/internal/domain/entities"
	"github.com/avamus/visionboard/internal/usecase/calllog"
)

// RedisCallListCache caches each member's full call list as a JSON blob
// under calllogs:{memberId}. Cache errors are logged and treated as
// misses; the store stays the source of truth.
type RedisCallListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// Ensure the cache satisfies the usecase interface
var _ calllog.CallListCache = (*RedisCallListCache)(nil)

// NewRedisCallListCache creates a call list cache over a Redis client.
func NewRedisCallListCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCallListCache {
	return &RedisCallListCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func callListKey(memberID string) string {
	return fmt.Sprintf("calllogs:%s", memberID)
}

// GetCalls returns the cached list for a member, or a miss.
func (c *RedisCallListCache) GetCalls(ctx context.Context, memberID string) ([]*entities.CallLog, bool) {
	raw, err := c.client.Get(ctx, callListKey(memberID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("call list cache read failed",
			zap.String("member_id", memberID),
			zap.Error(err),
		)
		return nil, false
	}

	var logs []*entities.CallLog
	if err := json.Unmarshal(raw, &logs); err != nil {
		c.logger.Warn("call list cache entry corrupt, dropping",
			zap.String("member_id", memberID),
			zap.Error(err),
		)
		c.client.Del(ctx, callListKey(memberID))
		return nil, false
	}
	return logs, true
}

// SetCalls stores a member's list with the configured TTL.
func (c *RedisCallListCache) SetCalls(ctx context.Context, memberID string, logs []*entities.CallLog) {
	raw, err := json.Marshal(logs)
	if err != nil {
		c.logger.Warn("call list cache marshal failed",
			zap.String("member_id", memberID),
			zap.Error(err),
		)
		return
	}
	if err := c.client.Set(ctx, callListKey(memberID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("call list cache write failed",
			zap.String("member_id", memberID),
			zap.Error(err),
		)
	}
}

// Invalidate drops the cached list after any write for the member.
func (c *RedisCallListCache) Invalidate(ctx context.Context, memberID string) {
	if err := c.client.Del(ctx, callListKey(memberID)).Err(); err != nil {
		c.logger.Warn("call list cache invalidate failed",
			zap.String("member_id", memberID),
			zap.Error(err),
		)
	}
}
