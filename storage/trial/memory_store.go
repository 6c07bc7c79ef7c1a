// File: storage/trial/memory_store.go
package trial

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"academy-admin/models"
	"academy-admin/storage"
)

// MemoryStore keeps registrations in process memory. It backs local runs
// without MONGODB_URI and the unit tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.TrialRegistration
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(_ context.Context, rec *models.TrialRegistration) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	rec.ID = primitive.NewObjectID()
	rec.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	s.records = append(s.records, *rec)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.TrialRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TrialRegistration, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) DeleteByID(_ context.Context, id string) (*models.TrialRegistration, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, storage.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.records {
		if rec.ID == oid {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return &rec, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}
