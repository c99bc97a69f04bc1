// Package lock serializes mutations of a single product across callers.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrNotAcquired = errors.New("lock not acquired")

type Locker interface {
	// Lock blocks until key is held by the caller or ctx is done.
	// The returned release func is safe to call once.
	Lock(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

type Options struct {
	TTL  time.Duration // how long a crashed holder can keep the key (Redis only)
	Wait time.Duration // upper bound on queueing behind other holders
}

var DefaultOptions = Options{TTL: 30 * time.Second, Wait: 10 * time.Second}

func ProductKey(productID string) string {
	return fmt.Sprintf("lock:product:%s", productID)
}

// Acquire waits up to opts.Wait for key. Waiters are served one at a time.
func Acquire(ctx context.Context, l Locker, key string, opts Options) (func(), error) {
	if opts.Wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Wait)
		defer cancel()
	}
	release, err := l.Lock(ctx, key, opts.TTL)
	if err != nil {
		if errors.Is(err, ErrNotAcquired) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrNotAcquired, key, err)
	}
	return release, nil
}
