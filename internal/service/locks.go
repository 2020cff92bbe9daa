package service

import (
	"sync"

	"github.com/google/uuid"
)

// keyedMutex serializes work per subscription id. Two concurrent generation
// units for the same subscription would double-advance its due date; units
// for different subscriptions are independent and may interleave.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uuid.UUID]*entry)}
}

// lock acquires the mutex for the given id and returns its unlock function.
func (k *keyedMutex) lock(id uuid.UUID) func() {
	k.mu.Lock()
	e, ok := k.locks[id]
	if !ok {
		e = &entry{}
		k.locks[id] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}
