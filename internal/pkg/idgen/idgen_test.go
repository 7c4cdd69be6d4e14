package idgen

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNextIDUnique(t *testing.T) {
	g := New(1)
	seen := make(map[int64]struct{})
	for i := 0; i < 10000; i++ {
		id := g.NextID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %d after %d generations", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestNextIDMonotonicWithinWorker(t *testing.T) {
	g := New(3)
	prev := g.NextID()
	for i := 0; i < 1000; i++ {
		next := g.NextID()
		if next <= prev {
			t.Fatalf("id went backwards: %d after %d", next, prev)
		}
		prev = next
	}
}

func TestNextIDSequenceRollsOver(t *testing.T) {
	g := New(1)
	var clock int64 = 1000
	g.now = func() int64 { return atomic.LoadInt64(&clock) }

	for i := 0; i <= maxSequence; i++ {
		g.NextID()
	}
	// sequence exhausted; the generator must wait for the next millisecond
	done := make(chan int64, 1)
	go func() { done <- g.NextID() }()
	atomic.StoreInt64(&clock, 1001)
	id := <-done
	if id <= 0 {
		t.Fatalf("expected positive id after rollover, got %d", id)
	}
}

func TestNextIDConcurrentUnique(t *testing.T) {
	g := New(2)
	const goroutines = 8
	const perGoroutine = 500

	var wg sync.WaitGroup
	ids := make(chan int64, goroutines*perGoroutine)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				ids <- g.NextID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, goroutines*perGoroutine)
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %d under concurrency", id)
		}
		seen[id] = struct{}{}
	}
}

func TestOrderNumberFormat(t *testing.T) {
	g := New(1)
	number := g.OrderNumber()
	if !strings.HasPrefix(number, "SLT-") {
		t.Fatalf("unexpected prefix: %s", number)
	}
	parts := strings.Split(number, "-")
	if len(parts) != 3 {
		t.Fatalf("expected 3 segments, got %q", number)
	}
	if len(parts[1]) != 14 {
		t.Errorf("timestamp segment has length %d, want 14", len(parts[1]))
	}
	if len(parts[2]) != 8 {
		t.Errorf("suffix segment has length %d, want 8", len(parts[2]))
	}
}

func TestNewWrapsOutOfRangeWorkerID(t *testing.T) {
	g := New(maxWorkerID + 5)
	if g.workerID < 0 || g.workerID > maxWorkerID {
		t.Fatalf("worker id %d out of range", g.workerID)
	}
}
