package locks

import (
	"sync"
	"time"
)

// DefaultIdleTTL is how long an unused per-user lock stays in the registry
// before the sweep drops it.
const DefaultIdleTTL = time.Hour

type entry struct {
	mu       *sync.Mutex
	lastUsed time.Time
}

// Registry hands out one mutex per user id so that all scheduling operations
// for a user are serialized without blocking other users. Entries idle past
// the TTL are swept on every Acquire; eviction only detaches the entry from
// the index, so an in-flight holder keeps its own reference and finishes
// normally.
type Registry struct {
	mu      sync.Mutex
	entries map[int64]*entry
	idleTTL time.Duration
	now     func() time.Time
}

func NewRegistry(idleTTL time.Duration) *Registry {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Registry{
		entries: make(map[int64]*entry),
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// Acquire returns the lock for userID, creating it lazily on first use.
// The entry's last-used time is refreshed before the sweep runs, inside the
// same registry-wide critical section, so an acquiring caller can never have
// its own entry swept out from under it. Acquire itself never fails and never
// blocks on external work; the caller locks the returned mutex.
func (r *Registry) Acquire(userID int64) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e, ok := r.entries[userID]
	if !ok {
		e = &entry{mu: &sync.Mutex{}}
		r.entries[userID] = e
	}
	e.lastUsed = now

	r.sweep(now)
	return e.mu
}

// sweep drops entries idle past the TTL. A mutex that is currently held is
// skipped: TryLock failing means a holder is active, and a continuously-held
// lock must never be detached while its owner uses it.
func (r *Registry) sweep(now time.Time) {
	for userID, e := range r.entries {
		if now.Sub(e.lastUsed) <= r.idleTTL {
			continue
		}
		if !e.mu.TryLock() {
			continue
		}
		e.mu.Unlock()
		delete(r.entries, userID)
	}
}

// Tracked reports how many user entries the registry currently holds.
func (r *Registry) Tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Contains reports whether an entry for userID is currently in the index.
func (r *Registry) Contains(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[userID]
	return ok
}
