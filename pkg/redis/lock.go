package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"skydry-api/pkg/log"
)

// ErrLockNotAcquired is returned when another holder owns the lock after all attempts.
var ErrLockNotAcquired = errors.New("lock not acquired")

const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`

// LockOptions represents options for distributed locking
type LockOptions struct {
	// TTL is the lock expiration time
	TTL time.Duration
	// RetryDelay is the delay between attempts
	RetryDelay time.Duration
	// MaxRetries is the number of extra attempts after the first one
	MaxRetries int
}

// NewLockOptions creates lock options that try once and hold for ttl
func NewLockOptions(ttl time.Duration) *LockOptions {
	return &LockOptions{
		TTL:        ttl,
		RetryDelay: 100 * time.Millisecond,
	}
}

// Lock represents a distributed lock
type Lock struct {
	client *Client
	key    string
	value  string
	opts   *LockOptions
}

// NewLock creates a lock on key, namespaced through the client
func NewLock(client *Client, key string, opts *LockOptions) *Lock {
	if opts == nil {
		opts = NewLockOptions(30 * time.Second)
	}
	return &Lock{
		client: client,
		key:    client.Key("lock", key),
		value:  uuid.NewString(),
		opts:   opts,
	}
}

// Lock attempts to acquire the lock
func (l *Lock) Lock(ctx context.Context) error {
	for attempt := 0; ; attempt++ {
		acquired, err := l.client.GetClient().SetNX(ctx, l.key, l.value, l.opts.TTL).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if acquired {
			return nil
		}
		if attempt >= l.opts.MaxRetries {
			return ErrLockNotAcquired
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.opts.RetryDelay):
		}
	}
}

// Unlock releases the lock if it is still held by this holder
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, unlockScript, []string{l.key}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return fmt.Errorf("lock %s was not held by this client", l.key)
	}
	return nil
}

// LockWithFunc executes fn while holding the lock on key
func LockWithFunc(ctx context.Context, client *Client, key string, opts *LockOptions, fn func() error) error {
	lock := NewLock(client, key, opts)

	if err := lock.Lock(ctx); err != nil {
		return err
	}
	defer func() {
		if err := lock.Unlock(context.WithoutCancel(ctx)); err != nil {
			log.Warn("failed to release lock", zap.String("key", lock.key), zap.Error(err))
		}
	}()

	return fn()
}
