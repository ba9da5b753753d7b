package cache

import (
	"context"
	"sync"
	"time"

	"github.com/avamus/visionboard/internal/domain/entities"
	"github.com/avamus/visionboard/internal/usecase/calllog"
)

// MemoryCallListCache is an in-process call list cache with expiration,
// used in development and tests when Redis is disabled.
type MemoryCallListCache struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	ttl   time.Duration
}

type memoryItem struct {
	logs       []*entities.CallLog
	expireTime time.Time
}

// Ensure the cache satisfies the usecase interface
var _ calllog.CallListCache = (*MemoryCallListCache)(nil)

// NewMemoryCallListCache creates a new in-memory call list cache.
func NewMemoryCallListCache(ttl time.Duration) *MemoryCallListCache {
	c := &MemoryCallListCache{
		items: make(map[string]*memoryItem),
		ttl:   ttl,
	}

	// Start cleanup goroutine to remove expired items
	go c.cleanupExpired()

	return c
}

// GetCalls returns the cached list for a member (miss if expired).
func (c *MemoryCallListCache) GetCalls(ctx context.Context, memberID string) ([]*entities.CallLog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[memberID]
	if !exists {
		return nil, false
	}
	if time.Now().After(item.expireTime) {
		return nil, false
	}
	return item.logs, true
}

// SetCalls stores a member's list with the configured TTL.
func (c *MemoryCallListCache) SetCalls(ctx context.Context, memberID string, logs []*entities.CallLog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[memberID] = &memoryItem{
		logs:       logs,
		expireTime: time.Now().Add(c.ttl),
	}
}

// Invalidate drops the member's cached list.
func (c *MemoryCallListCache) Invalidate(ctx context.Context, memberID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, memberID)
}

// cleanupExpired periodically removes expired items
func (c *MemoryCallListCache) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, item := range c.items {
			if now.After(item.expireTime) {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}
