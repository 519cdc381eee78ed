package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisAdapter "github.com/afrisecure/ussd/pkg/adapters/redis"
)

func newTestLocker(t *testing.T) (*redisAdapter.Locker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisAdapter.NewLocker(client, "test:"), mr
}

func TestRedisLocker_LockUnlock(t *testing.T) {
	locker, mr := newTestLocker(t)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "session-1", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, mr.Exists("test:lock:session-1"))

	require.NoError(t, unlock(ctx))
	assert.False(t, mr.Exists("test:lock:session-1"))
}

func TestRedisLocker_Contention(t *testing.T) {
	locker, _ := newTestLocker(t)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "session-1", 5*time.Second)
	require.NoError(t, err)

	// A second holder gives up when its context expires.
	waitCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(waitCtx, "session-1", 5*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// After release the lock is free again.
	require.NoError(t, unlock(ctx))
	unlock2, err := locker.Lock(ctx, "session-1", 5*time.Second)
	require.NoError(t, err)
	require.NoError(t, unlock2(ctx))
}

func TestRedisLocker_IndependentKeys(t *testing.T) {
	locker, _ := newTestLocker(t)
	ctx := context.Background()

	unlockA, err := locker.Lock(ctx, "session-a", 5*time.Second)
	require.NoError(t, err)
	defer func() { _ = unlockA(ctx) }()

	// A lock on one session must not block another.
	quick, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	unlockB, err := locker.Lock(quick, "session-b", 5*time.Second)
	require.NoError(t, err)
	require.NoError(t, unlockB(ctx))
}
