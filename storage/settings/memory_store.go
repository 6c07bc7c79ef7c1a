// File: storage/settings/memory_store.go
package settings

import (
	"context"
	"sync"

	"academy-admin/models"
)

type MemoryStore struct {
	mu       sync.Mutex
	settings *models.SiteSettings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// loadOrCreate must be called with mu held.
func (s *MemoryStore) loadOrCreate() *models.SiteSettings {
	if s.settings == nil {
		d := models.DefaultSiteSettings()
		s.settings = &d
	}
	return s.settings
}

func (s *MemoryStore) Get(_ context.Context) (*models.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := *s.loadOrCreate()
	return &out, nil
}

func (s *MemoryStore) Update(_ context.Context, in models.SiteSettings) (*models.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadOrCreate()
	in.ID = models.SettingsID
	s.settings = &in
	out := in
	return &out, nil
}

// Count reports how many settings documents exist (zero or one).
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return 0
	}
	return 1
}
