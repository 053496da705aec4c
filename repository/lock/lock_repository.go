package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	redisclient "github.com/yuhsuan-lin/daigou-bot/cmd/redis"
)

// ErrNotAcquired is returned when the lock cannot be taken within the bounded wait.
var ErrNotAcquired = errors.New("store lock not acquired")

// Locker serializes every store-mutating sequence behind one coarse lock.
// Acquisition waits at most the configured bound; reads never take the lock.
type Locker interface {
	Acquire(ctx context.Context) (release func(), err error)
}

const (
	lockKey      = "store:write_lock"
	lockTTL      = 30 * time.Second
	pollInterval = 50 * time.Millisecond
)

// Releasing checks the holder token so an expired lock is never deleted out
// from under a newer holder.
var releaseScript = goredis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

type locker struct {
	wait time.Duration
	sem  chan struct{}
}

// NewLocker returns the store-wide write lock. It is backed by Redis when a
// client is configured, otherwise by an in-process semaphore (single-instance
// deployments only).
func NewLocker(wait time.Duration) Locker {
	return &locker{
		wait: wait,
		sem:  make(chan struct{}, 1),
	}
}

func (l *locker) Acquire(ctx context.Context) (func(), error) {
	if client := redisclient.Get(); client != nil {
		return l.acquireRedis(ctx, client)
	}
	return l.acquireLocal(ctx)
}

func (l *locker) acquireRedis(ctx context.Context, client *goredis.Client) (func(), error) {
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := client.SetNX(ctx, lockKey, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				_, _ = releaseScript.Run(context.Background(), client, []string{lockKey}, token).Result()
			}, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrNotAcquired
		}
		select {
		case <-ctx.Done():
			return nil, ErrNotAcquired
		case <-time.After(pollInterval):
		}
	}
}

func (l *locker) acquireLocal(ctx context.Context) (func(), error) {
	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case l.sem <- struct{}{}:
		return func() { <-l.sem }, nil
	case <-timer.C:
		return nil, ErrNotAcquired
	case <-ctx.Done():
		return nil, ErrNotAcquired
	}
}
