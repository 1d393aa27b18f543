package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache is a small keyed JSON cache with explicit TTLs, used by the
// dashboard endpoints. Redis-backed when a client is configured so the cache
// is shared between instances, in-process otherwise.
type ResponseCache struct {
	rdb *redis.Client

	mu    sync.RWMutex
	local map[string]cacheEntry
}

type cacheEntry struct {
	payload   []byte
	expiresAt time.Time
}

func NewResponseCache(rdb *redis.Client) *ResponseCache {
	return &ResponseCache{
		rdb:   rdb,
		local: make(map[string]cacheEntry),
	}
}

// Get unmarshals the cached payload for key into dest. The second return is
// false on a miss or expired entry.
func (c *ResponseCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c.rdb != nil {
		payload, err := c.rdb.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, json.Unmarshal(payload, dest)
	}

	c.mu.RLock()
	entry, ok := c.local[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return false, nil
	}
	return true, json.Unmarshal(entry.payload, dest)
}

// Set stores value under key for ttl.
func (c *ResponseCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if c.rdb != nil {
		return c.rdb.Set(ctx, key, payload, ttl).Err()
	}

	c.mu.Lock()
	c.local[key] = cacheEntry{payload: payload, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}
