package storage

import (
	"context"
	"sync"

	"salonbook-backend/models"
)

// MemoryStore holds the dataset in process. Used by tests and as the
// fallback when no database is configured.
type MemoryStore struct {
	mu   sync.Mutex
	data *models.Dataset
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: &models.Dataset{}}
}

func (s *MemoryStore) Load(ctx context.Context) (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, data *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data.Clone()
	return nil
}
