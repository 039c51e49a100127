package concurrency

import "sync"

// LockManager hands out one mutex per key. Callers that lock the same key
// serialize against each other; distinct keys never contend. Mutexes are
// kept for the lifetime of the manager.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates an empty LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
