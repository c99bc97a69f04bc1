package lock

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLockerWaitsForRelease(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryLocker()

	release, err := m.Lock(ctx, "k", time.Minute)
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		second, err := m.Lock(ctx, "k", time.Minute)
		if assert.NoError(t, err) {
			close(acquired)
			second()
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second caller got the key while it was held")
	case <-time.After(20 * time.Millisecond):
	}

	release()
	release() // second call is a no-op
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second caller never got the key")
	}
}

func TestMemoryLockerKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryLocker()

	a, err := m.Lock(ctx, ProductKey("p-1"), time.Minute)
	require.NoError(t, err)
	defer a()

	b, err := m.Lock(ctx, ProductKey("p-2"), time.Minute)
	require.NoError(t, err)
	b()
}

func TestMemoryLockerForgetsIdleKeys(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryLocker()

	release, err := m.Lock(ctx, "k", time.Minute)
	require.NoError(t, err)
	release()

	waitCtx, cancel := context.WithTimeout(ctx, time.Millisecond)
	defer cancel()
	hold, err := m.Lock(ctx, "other", time.Minute)
	require.NoError(t, err)
	_, err = m.Lock(waitCtx, "other", time.Minute)
	require.Error(t, err)
	hold()

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Empty(t, m.slots)
}

func TestAcquireGivesUpAfterWait(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryLocker()
	release, err := Acquire(ctx, m, ProductKey("p-1"), DefaultOptions)
	require.NoError(t, err)
	defer release()

	start := time.Now()
	_, err = Acquire(ctx, m, ProductKey("p-1"), Options{Wait: 30 * time.Millisecond})
	assert.ErrorIs(t, err, ErrNotAcquired)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestAcquireHonoursCallerContext(t *testing.T) {
	m := NewMemoryLocker()
	release, err := Acquire(context.Background(), m, "k", DefaultOptions)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Acquire(ctx, m, "k", DefaultOptions)
	assert.ErrorIs(t, err, context.Canceled)
}

type failingLocker struct{}

func (failingLocker) Lock(context.Context, string, time.Duration) (func(), error) {
	return nil, errors.New("connection refused")
}

func TestAcquireReportsBackendError(t *testing.T) {
	_, err := Acquire(context.Background(), failingLocker{}, "k", DefaultOptions)
	assert.ErrorIs(t, err, ErrNotAcquired)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAcquireSerializesEveryCaller(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryLocker()

	const callers = 200
	var (
		inside, maxInside int32
		served            int32
		wg                sync.WaitGroup
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := Acquire(ctx, m, "k", DefaultOptions)
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				cur := atomic.LoadInt32(&maxInside)
				if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
					break
				}
			}
			time.Sleep(100 * time.Microsecond)
			atomic.AddInt32(&inside, -1)
			atomic.AddInt32(&served, 1)
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, int32(callers), served)
}

func TestRedisLocker(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	r, err := NewRedisLocker(ctx, &RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer r.Close()

	key := ProductKey(uuid.New().String())
	release, err := r.Lock(ctx, key, time.Minute)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = r.Lock(waitCtx, key, time.Minute)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	done := make(chan error, 1)
	go func() {
		second, err := r.Lock(ctx, key, time.Minute)
		if err == nil {
			second()
		}
		done <- err
	}()
	release()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter never got the key")
	}
}
