package locking

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	locker := NewKeyedMutex()
	var inside, maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(context.Background(), MemberKey("ada"))
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, locker.size())
}

func TestKeyedMutexDifferentKeysDoNotBlock(t *testing.T) {
	locker := NewKeyedMutex()
	unlockA, err := locker.Lock(context.Background(), MemberKey("ada"))
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	unlockB, err := locker.Lock(ctx, MemberKey("grace"))
	require.NoError(t, err)
	unlockB()
}

func TestKeyedMutexTimeout(t *testing.T) {
	locker := NewKeyedMutex()
	unlock, err := locker.Lock(context.Background(), MemberKey("ada"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, MemberKey("ada"))
	assert.ErrorIs(t, err, ErrTimeout)

	unlock()
	unlock() // idempotent
	assert.Equal(t, 0, locker.size())
}

func TestKeyedMutexMultipleKeysReleaseOnFailure(t *testing.T) {
	locker := NewKeyedMutex()
	unlockB, err := locker.Lock(context.Background(), "b")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	// "a" is acquired first and must be released when "b" times out
	_, err = locker.Lock(ctx, "b", "a")
	assert.ErrorIs(t, err, ErrTimeout)

	unlockA, err := locker.Lock(context.Background(), "a")
	require.NoError(t, err)
	unlockA()
	unlockB()
}

func TestKeyedMutexOppositeOrderDoesNotDeadlock(t *testing.T) {
	locker := NewKeyedMutex()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(ctx, "x", "y")
			if assert.NoError(t, err) {
				unlock()
			}
		}()
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(ctx, "y", "x", "y")
			if assert.NoError(t, err) {
				unlock()
			}
		}()
	}
	wg.Wait()
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, normalize([]string{"c", "a", "b", "a"}))
	assert.Empty(t, normalize(nil))
}
