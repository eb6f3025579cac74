// Package locker provides the in-memory order lock registry used to
// serialize status transitions. One process owns an order's transitions at a
// time; the registry hands out per-order mutexes keyed by order ID and
// reclaims them once the last holder releases.
package locker

import (
	"sort"
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// InMemoryOrderLocker implements ports.OrderLocker with a mutex registry.
type InMemoryOrderLocker struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

var _ ports.OrderLocker = (*InMemoryOrderLocker)(nil)

type lockEntry struct {
	mu sync.Mutex

	// refs counts holders and waiters so the entry is only dropped from
	// the registry when nobody references it anymore
	refs int
}

// NewInMemoryOrderLocker creates an empty lock registry.
func NewInMemoryOrderLocker() *InMemoryOrderLocker {
	return &InMemoryOrderLocker{
		locks: make(map[string]*lockEntry),
	}
}

// Lock blocks until the per-order lock is acquired and returns its release
// function. The release function must be called exactly once.
func (l *InMemoryOrderLocker) Lock(orderID kernel.UUID) func() {
	return l.lockKey(orderID.String())
}

// LockAll acquires the locks of every given order and returns one function
// releasing all of them. Keys are acquired in sorted order so two overlapping
// groups always contend in the same sequence and cannot deadlock each other.
func (l *InMemoryOrderLocker) LockAll(orderIDs []kernel.UUID) func() {
	keys := make([]string, 0, len(orderIDs))
	seen := make(map[string]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		key := id.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	unlocks := make([]func(), 0, len(keys))
	for _, key := range keys {
		unlocks = append(unlocks, l.lockKey(key))
	}

	return func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
}

func (l *InMemoryOrderLocker) lockKey(key string) func() {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &lockEntry{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.mu.Unlock()

			l.mu.Lock()
			entry.refs--
			if entry.refs == 0 {
				delete(l.locks, key)
			}
			l.mu.Unlock()
		})
	}
}
