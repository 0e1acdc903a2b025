package customize

import (
	"context"
	"sync"

	"github.com/playperu/courtboard/internal/court"
)

// MemoryStore keeps customizations in a map.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[court.MarkerID]Customization
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[court.MarkerID]Customization)}
}

func (s *MemoryStore) Get(_ context.Context, id court.MarkerID) (Customization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.m[id]
	if !ok {
		return Customization{}, ErrNotFound
	}
	return c, nil
}

func (s *MemoryStore) Put(_ context.Context, id court.MarkerID, c Customization) error {
	s.mu.Lock()
	s.m[id] = c
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) All(_ context.Context) (map[court.MarkerID]Customization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[court.MarkerID]Customization, len(s.m))
	for id, c := range s.m {
		out[id] = c
	}
	return out, nil
}
