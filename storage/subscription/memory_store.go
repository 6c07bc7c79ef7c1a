// File: storage/subscription/memory_store.go
package subscription

import (
	"context"
	"sync"
	"time"

	"academy-admin/models"
)

// MemoryStore keeps subscriptions in insertion order, keyed by endpoint.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	subs  map[string]models.PushSubscription
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{subs: make(map[string]models.PushSubscription)}
}

func (s *MemoryStore) Upsert(_ context.Context, sub models.PushSubscription) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.subs[sub.Endpoint]; ok {
		existing.Keys = sub.Keys
		s.subs[sub.Endpoint] = existing
		return nil
	}
	sub.CreatedAt = time.Now().UTC()
	s.subs[sub.Endpoint] = sub
	s.order = append(s.order, sub.Endpoint)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, endpoint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[endpoint]; !ok {
		return nil
	}
	delete(s.subs, endpoint)
	for i, e := range s.order {
		if e == endpoint {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.subs))
	s.subs = make(map[string]models.PushSubscription)
	s.order = nil
	return n, nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.PushSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PushSubscription, 0, len(s.order))
	for _, e := range s.order {
		out = append(out, s.subs[e])
	}
	return out, nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.subs)), nil
}
