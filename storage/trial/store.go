// Package trial persists trial registrations.
// File: storage/trial/store.go
package trial

import (
	"context"

	"academy-admin/models"
)

// Store is the trial registration repository.
type Store interface {
	// Create validates rec, assigns its ID and CreatedAt, and persists it.
	Create(ctx context.Context, rec *models.TrialRegistration) error
	// List returns every registration in insertion order.
	List(ctx context.Context) ([]models.TrialRegistration, error)
	// DeleteByID returns the removed registration or storage.ErrNotFound.
	DeleteByID(ctx context.Context, id string) (*models.TrialRegistration, error)
	Count(ctx context.Context) (int64, error)
}
