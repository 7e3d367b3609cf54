package locking

import (
	"context"
	"sync"
)

type entry struct {
	ch   chan struct{} // buffered(1); holding the token means owning the key
	refs int
}

// KeyedMutex is an in-process Locker with one mutex per key. Entries are
// reference counted and removed once nobody holds or waits for them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*entry)}
}

func (k *KeyedMutex) acquireEntry(key string) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		k.entries[key] = e
	}
	e.refs++
	return e
}

func (k *KeyedMutex) releaseEntry(key string, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
}

// lockOne blocks until key is owned or ctx is done.
func (k *KeyedMutex) lockOne(ctx context.Context, key string) (func(), error) {
	e := k.acquireEntry(key)
	select {
	case e.ch <- struct{}{}:
		return func() {
			<-e.ch
			k.releaseEntry(key, e)
		}, nil
	case <-ctx.Done():
		k.releaseEntry(key, e)
		return nil, ErrTimeout
	}
}

// Lock acquires every key in sorted order. On failure the keys already held
// are released before returning.
func (k *KeyedMutex) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = normalize(keys)
	unlocks := make([]func(), 0, len(keys))
	release := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}

	for _, key := range keys {
		unlock, err := k.lockOne(ctx, key)
		if err != nil {
			release()
			return nil, err
		}
		unlocks = append(unlocks, unlock)
	}

	var once sync.Once
	return func() { once.Do(release) }, nil
}

// size reports the number of live entries.
func (k *KeyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
