package cart

import (
	"context"
	"sync"
)

// Store keeps one cart per shopper session. A session has a single owner,
// so stores only need to be safe across sessions, not within one.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func CreateMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]Cart)}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.carts[sessionID]
	if !ok {
		return &Cart{}, nil
	}

	cart := Cart{Lines: append([]Line(nil), stored.Lines...)}
	return &cart, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, cart *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = Cart{Lines: append([]Line(nil), cart.Lines...)}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
