package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireInviteLock attempts to acquire a lock for the given invite code
// so two concurrent redemptions cannot both create a member.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireInviteLock(ctx context.Context, code string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:invite:%s", code)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseInviteLock releases the lock for the given invite code.
func (s *LockStore) ReleaseInviteLock(ctx context.Context, code string) error {
	key := fmt.Sprintf("lock:invite:%s", code)

	return s.client.Del(ctx, key).Err()
}
