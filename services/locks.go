package services

import "sync"

// propertyLocks serializes multi-record operations scoped to a single
// property: the booking conflict-check-then-insert sequence and the
// review aggregate recompute. Both read several rows and then write,
// so two concurrent requests for the same property must not interleave.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

var propertyLocks = keyedLocks{locks: make(map[uint]*sync.Mutex)}

func (k *keyedLocks) get(id uint) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if l, ok := k.locks[id]; ok {
		return l
	}
	l := &sync.Mutex{}
	k.locks[id] = l
	return l
}

// LockProperty acquires the lock for a property id and returns the
// release function.
func LockProperty(id uint) func() {
	l := propertyLocks.get(id)
	l.Lock()
	return l.Unlock
}
