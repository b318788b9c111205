package planning

import (
	"testing"
	"time"
)

func TestStore_PutGet(t *testing.T) {
	s := NewStore(0, 0)
	defer s.Close()

	s.Put(&Plan{ID: "a"})
	p, ok := s.Get("a")
	if !ok || p.ID != "a" {
		t.Fatalf("Expected plan a, got %v %v", p, ok)
	}
	if _, ok := s.Get("b"); ok {
		t.Errorf("Expected miss for unknown id")
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 plan, got %d", s.Len())
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty store after Clear, got %d", s.Len())
	}
}

func TestStore_Expiry(t *testing.T) {
	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	s := NewStore(time.Hour, 0)
	defer s.Close()
	s.now = func() time.Time { return now }

	s.Put(&Plan{ID: "old"})
	now = now.Add(30 * time.Minute)
	s.Put(&Plan{ID: "new"})

	now = now.Add(31 * time.Minute)
	if _, ok := s.Get("old"); ok {
		t.Errorf("Expected old plan to have expired")
	}
	if _, ok := s.Get("new"); !ok {
		t.Errorf("Expected new plan to still be present")
	}
	if s.Len() != 2 {
		t.Errorf("Expected expired plan to linger until swept, got %d", s.Len())
	}
	if n := s.Sweep(); n != 1 {
		t.Errorf("Expected 1 plan swept, got %d", n)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 plan after sweep, got %d", s.Len())
	}
}

func TestStore_CloseIsIdempotent(t *testing.T) {
	s := NewStore(time.Minute, time.Millisecond)
	s.Close()
	s.Close()
}
