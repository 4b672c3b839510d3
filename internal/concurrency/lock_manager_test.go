package concurrency

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("a"), lm.GetLock("a"))
	assert.NotSame(t, lm.GetLock("a"), lm.GetLock("b"))
}

func TestLockManager_WithLock_Serializes(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock(PlayerKey("p1"), func() error {
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestLockManager_WithLock_ReturnsError(t *testing.T) {
	lm := NewLockManager()
	boom := errors.New("boom")

	err := lm.WithLock("k", func() error { return boom })
	assert.ErrorIs(t, err, boom)

	// lock must be released after fn returns
	assert.True(t, lm.GetLock("k").TryLock())
}

func TestKeys_DoNotCollide(t *testing.T) {
	assert.NotEqual(t, PlayerKey("pistol"), WeaponKey("pistol"))
}
