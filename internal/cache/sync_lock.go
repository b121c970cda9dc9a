package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const syncLockKey = "hostpanel:components:sync_lock"

// SyncLock is a Redis-backed lease that serializes overlapping catalog sync
// runs. The TTL bounds how long a crashed run can hold the lease.
type SyncLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSyncLock creates a sync lease with the given TTL.
func NewSyncLock(client *redis.Client, ttl time.Duration) *SyncLock {
	return &SyncLock{client: client, ttl: ttl}
}

// Acquire tries to take the lease. Returns false if another run holds it.
func (l *SyncLock) Acquire(ctx context.Context) (bool, error) {
	return l.client.SetNX(ctx, syncLockKey, time.Now().UTC().Format(time.RFC3339), l.ttl).Result()
}

// Release drops the lease. Safe to call if the lease already expired.
func (l *SyncLock) Release(ctx context.Context) error {
	return l.client.Del(ctx, syncLockKey).Err()
}
