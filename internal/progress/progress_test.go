package progress

import (
	"sync"
	"testing"
)

func TestCounterConcurrentIncrements(t *testing.T) {
	counter := &Counter{}
	counter.SetTotal(100)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.Increment()
		}()
	}
	wg.Wait()

	if counter.Done() != 100 {
		t.Errorf("Done() = %d, want 100", counter.Done())
	}
	if counter.Total() != 100 {
		t.Errorf("Total() = %d, want 100", counter.Total())
	}
	if counter.String() != "100/100" {
		t.Errorf("String() = %q, want %q", counter.String(), "100/100")
	}
}

func TestCounterZeroValue(t *testing.T) {
	var counter Counter
	if counter.Done() != 0 || counter.Total() != 0 {
		t.Errorf("zero value counter = %s, want 0/0", counter.String())
	}
}
