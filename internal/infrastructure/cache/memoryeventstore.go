package cache

import (
	"context"
	"sync"
)

// MemoryBillingEventStore is a process-local BillingEventStore for
// development and tests.
type MemoryBillingEventStore struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemoryBillingEventStore() *MemoryBillingEventStore {
	return &MemoryBillingEventStore{
		seen: make(map[string]struct{}),
	}
}

func (s *MemoryBillingEventStore) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[eventID]; ok {
		return false, nil
	}
	s.seen[eventID] = struct{}{}
	return true, nil
}
