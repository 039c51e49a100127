package leaktest

import (
	"sync"
	"testing"
	"time"
)

func TestGoroutineCheckerNoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
		}()
	}
	wg.Wait()

	checker.Check(0)
}

func TestCheckNoGoroutineLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		done := make(chan struct{})
		go func() {
			close(done)
		}()
		<-done
		time.Sleep(10 * time.Millisecond)
	})
}
