package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter enforces the failed-login policy: at most maxAttempts failures
// per identifier inside the sliding window. Backed by a redis sorted set so
// the counter is shared across instances; falls back to in-process state when
// no redis client is configured.
type LoginLimiter struct {
	rdb         *redis.Client
	maxAttempts int
	window      time.Duration

	mu    sync.Mutex
	local map[string][]time.Time
}

func NewLoginLimiter(rdb *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{
		rdb:         rdb,
		maxAttempts: maxAttempts,
		window:      window,
		local:       make(map[string][]time.Time),
	}
}

// Blocked reports whether identifier has exhausted its failure budget.
func (l *LoginLimiter) Blocked(ctx context.Context, identifier string) (bool, error) {
	now := time.Now()
	if l.rdb != nil {
		key := l.key(identifier)
		cutoff := now.Add(-l.window)
		if err := l.rdb.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", cutoff.UnixNano())).Err(); err != nil {
			return false, fmt.Errorf("trim login attempts: %w", err)
		}
		count, err := l.rdb.ZCard(ctx, key).Result()
		if err != nil {
			return false, fmt.Errorf("count login attempts: %w", err)
		}
		return count >= int64(l.maxAttempts), nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.trimLocked(identifier, now)) >= l.maxAttempts, nil
}

// RecordFailure registers one failed attempt for identifier.
func (l *LoginLimiter) RecordFailure(ctx context.Context, identifier string) error {
	now := time.Now()
	if l.rdb != nil {
		key := l.key(identifier)
		pipe := l.rdb.TxPipeline()
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
		pipe.Expire(ctx, key, l.window)
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("record login failure: %w", err)
		}
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.local[identifier] = append(l.trimLocked(identifier, now), now)
	return nil
}

// Reset clears the failure history after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, identifier string) error {
	if l.rdb != nil {
		return l.rdb.Del(ctx, l.key(identifier)).Err()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.local, identifier)
	return nil
}

func (l *LoginLimiter) key(identifier string) string {
	return "login:attempts:" + identifier
}

func (l *LoginLimiter) trimLocked(identifier string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	kept := l.local[identifier][:0]
	for _, t := range l.local[identifier] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.local[identifier] = kept
	return kept
}
