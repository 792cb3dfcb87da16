// internal/session/memory.go
package session

import (
	"context"
	"sync"
)

// MemoryStore is the in-process fallback used in tests and redis-less
// development. State is lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	carts   map[string]map[string]int
	batches map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts:   make(map[string]map[string]int),
		batches: make(map[string][]string),
	}
}

func (s *MemoryStore) GetCart(ctx context.Context, visitorID string) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := map[string]int{}
	for k, v := range s.carts[visitorID] {
		cart[k] = v
	}
	return cart, nil
}

func (s *MemoryStore) SaveCart(ctx context.Context, visitorID string, cart map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(cart) == 0 {
		delete(s.carts, visitorID)
		return nil
	}

	copied := make(map[string]int, len(cart))
	for k, v := range cart {
		copied[k] = v
	}
	s.carts[visitorID] = copied
	return nil
}

func (s *MemoryStore) SaveBatch(ctx context.Context, visitorID string, orderIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches[visitorID] = append([]string(nil), orderIDs...)
	return nil
}

func (s *MemoryStore) PopBatch(ctx context.Context, visitorID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.batches[visitorID]
	delete(s.batches, visitorID)
	return ids, nil
}
