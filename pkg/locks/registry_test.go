package locks

import (
	"sync"
	"testing"
	"time"
)

func newTestRegistry(idleTTL time.Duration) (*Registry, *time.Time) {
	r := NewRegistry(idleTTL)
	current := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return current }
	return r, &current
}

func TestAcquire_CreatesEntryLazily(t *testing.T) {
	r, _ := newTestRegistry(time.Hour)

	if r.Tracked() != 0 {
		t.Fatalf("expected empty registry, got %d entries", r.Tracked())
	}

	mu := r.Acquire(1)
	if mu == nil {
		t.Fatal("expected a mutex, got nil")
	}
	if r.Tracked() != 1 {
		t.Errorf("expected 1 entry, got %d", r.Tracked())
	}
}

func TestAcquire_SameUserSameMutex(t *testing.T) {
	r, _ := newTestRegistry(time.Hour)

	first := r.Acquire(1)
	second := r.Acquire(1)

	if first != second {
		t.Error("expected the same mutex for repeated acquisitions")
	}
}

func TestAcquire_DifferentUsersDifferentMutexes(t *testing.T) {
	r, _ := newTestRegistry(time.Hour)

	if r.Acquire(1) == r.Acquire(2) {
		t.Error("expected distinct mutexes for distinct users")
	}
}

func TestSweep_EvictsIdleEntries(t *testing.T) {
	r, clock := newTestRegistry(time.Hour)

	r.Acquire(1)
	*clock = clock.Add(time.Hour + time.Second)

	// Any acquisition triggers the sweep.
	r.Acquire(2)

	if r.Contains(1) {
		t.Error("expected idle entry for user 1 to be evicted")
	}
	if !r.Contains(2) {
		t.Error("expected entry for user 2 to survive its own acquisition")
	}
}

func TestSweep_RefreshedEntrySurvives(t *testing.T) {
	r, clock := newTestRegistry(time.Hour)

	r.Acquire(1)
	*clock = clock.Add(45 * time.Minute)
	r.Acquire(1)
	*clock = clock.Add(45 * time.Minute)

	// 90 minutes since creation, 45 since last use.
	r.Acquire(2)

	if !r.Contains(1) {
		t.Error("expected refreshed entry to survive the sweep")
	}
}

func TestSweep_NeverEvictsHeldLock(t *testing.T) {
	r, clock := newTestRegistry(time.Hour)

	mu := r.Acquire(1)
	mu.Lock()
	defer mu.Unlock()

	*clock = clock.Add(2 * time.Hour)
	r.Acquire(2)

	if !r.Contains(1) {
		t.Error("expected continuously-held entry to be skipped by the sweep")
	}
}

func TestEviction_DetachesOnly(t *testing.T) {
	r, clock := newTestRegistry(time.Hour)

	mu := r.Acquire(1)
	mu.Lock()

	*clock = clock.Add(2 * time.Hour)
	r.Acquire(2)

	// Even if a future sweep had dropped the index entry, the holder's own
	// reference must remain usable.
	mu.Unlock()
	mu.Lock()
	mu.Unlock()
}

func TestAcquire_SerializesSameUser(t *testing.T) {
	r, _ := newTestRegistry(time.Hour)

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu := r.Acquire(7)
			mu.Lock()
			counter++
			mu.Unlock()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("expected 50 serialized increments, got %d", counter)
	}
}

func TestNewRegistry_ZeroTTLFallsBackToDefault(t *testing.T) {
	r := NewRegistry(0)
	if r.idleTTL != DefaultIdleTTL {
		t.Errorf("expected default TTL %v, got %v", DefaultIdleTTL, r.idleTTL)
	}
}
