package sync

import (
	"context"
	"sort"
	base "sync"
)

const (
	hashEntriesPerLock = 200
)

// StripedLock is a partitioned locking mechanism that consistently maps a key
// space to a set of locks. This provides concurrent data access while also
// limiting the total memory footprint.
type StripedLock struct {
	locks    []base.RWMutex
	hashRing *ring
}

// NewStripedLock returns a new StripedLock with a static number of stripes.
func NewStripedLock(stripes uint) *StripedLock {
	if stripes == 0 {
		stripes = 1
	}

	return &StripedLock{
		locks:    make([]base.RWMutex, stripes),
		hashRing: newRing(int(stripes), hashEntriesPerLock),
	}
}

// Get gets the lock for a key
func (l *StripedLock) Get(key []byte) *base.RWMutex {
	return &l.locks[l.hashRing.slot(key)]
}

// LockAll write locks the stripes for every key and returns a function that
// releases them. Stripes are acquired in index order and at most once, so
// callers holding overlapping key sets cannot deadlock against each other.
func (l *StripedLock) LockAll(keys ...[]byte) (unlock func()) {
	seen := make(map[int]struct{}, len(keys))
	stripes := make([]int, 0, len(keys))
	for _, key := range keys {
		stripe := l.hashRing.slot(key)
		if _, ok := seen[stripe]; ok {
			continue
		}
		seen[stripe] = struct{}{}
		stripes = append(stripes, stripe)
	}
	sort.Ints(stripes)

	for _, stripe := range stripes {
		l.locks[stripe].Lock()
	}

	return func() {
		for i := len(stripes) - 1; i >= 0; i-- {
			l.locks[stripes[i]].Unlock()
		}
	}
}

// LockAllContext is LockAll, but gives up once ctx is done. Stripes acquired
// after ctx is done are released in the background.
func (l *StripedLock) LockAllContext(ctx context.Context, keys ...[]byte) (unlock func(), err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	acquired := make(chan func(), 1)
	go func() {
		acquired <- l.LockAll(keys...)
	}()

	select {
	case unlock := <-acquired:
		return unlock, nil
	case <-ctx.Done():
		go func() {
			unlock := <-acquired
			unlock()
		}()
		return nil, ctx.Err()
	}
}
