package leaktest

import (
	"sync"
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()
	defer close(done)

	checker.Check(1)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	checker := NewGoroutineChecker(t)
	go func() {
		<-done
	}()

	if _, ok := waitFor(checker.before, 50*time.Millisecond); ok {
		t.Error("expected the blocked goroutine to be counted")
	}
}

func TestCheckNoGoroutineLeak_Success(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		}()
		wg.Wait()
	})
}

func TestWaitForGoroutines_ExitingGoroutine(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() {
		time.Sleep(20 * time.Millisecond)
	}()

	WaitForGoroutines(t, checker.before, time.Second)
}
