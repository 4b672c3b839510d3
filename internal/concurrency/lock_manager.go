// Package concurrency provides keyed locking for per-entity read-modify-write sections.
package concurrency

import (
	"sync"
)

// Lock key prefixes. Players and weapons share one manager without colliding.
const (
	PlayerKeyPrefix = "player:"
	WeaponKeyPrefix = "weapon:"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// PlayerKey returns the lock key for a player
func PlayerKey(playerID string) string {
	return PlayerKeyPrefix + playerID
}

// WeaponKey returns the lock key for a catalog weapon
func WeaponKey(weaponID string) string {
	return WeaponKeyPrefix + weaponID
}
