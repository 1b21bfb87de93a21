package store

import (
	"context"
	"eov-wgs-service/internal/domain"
	"sync"
)

// In-memory implementation of the PointStore port. Points live for the process lifetime.
type MemoryPointStore struct {
	mu     sync.RWMutex
	points []domain.Point
}

func NewMemoryPointStore() *MemoryPointStore {
	return &MemoryPointStore{}
}

// Append a point at the end of the sequence.
func (s *MemoryPointStore) Append(_ context.Context, p domain.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.points = append(s.points, p)
	return nil
}

// Remove all points.
func (s *MemoryPointStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.points = nil
	return nil
}

// Return a copy of the points so callers cannot mutate the store.
func (s *MemoryPointStore) All(_ context.Context) ([]domain.Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Point, len(s.points))
	copy(out, s.points)
	return out, nil
}
