package planning

import (
	"sync"
	"time"
)

type storeEntry struct {
	plan      *Plan
	expiresAt time.Time
}

// Store keeps finished plans in memory for a limited time.
// A zero ttl keeps plans until Clear.
type Store struct {
	mu    sync.RWMutex
	plans map[PlanID]*storeEntry
	ttl   time.Duration
	now   func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

// NewStore creates a store. When ttl > 0 a background loop evicts expired
// plans every sweep interval until Close is called.
func NewStore(ttl, sweep time.Duration) *Store {
	s := &Store{
		plans: make(map[PlanID]*storeEntry),
		ttl:   ttl,
		now:   time.Now,
		done:  make(chan struct{}),
	}
	if ttl > 0 && sweep > 0 {
		go s.cleanup(sweep)
	}
	return s
}

// Get retrieves a plan if it is present and not expired.
func (s *Store) Get(id PlanID) (*Plan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.plans[id]
	if !ok || s.expired(e) {
		return nil, false
	}
	return e.plan, true
}

func (s *Store) Put(p *Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &storeEntry{plan: p}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.plans[p.ID] = e
}

// Len counts stored plans, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.plans)
}

// Clear removes all plans.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans = make(map[PlanID]*storeEntry)
}

// Close stops the cleanup loop.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Sweep removes expired plans and reports how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, e := range s.plans {
		if s.expired(e) {
			delete(s.plans, id)
			n++
		}
	}
	return n
}

func (s *Store) expired(e *storeEntry) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}

func (s *Store) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.done:
			return
		}
	}
}
