// Package contact persists messages left through the contact form.
// File: storage/contact/store.go
package contact

import (
	"context"

	"academy-admin/models"
)

// Store is the contact message repository.
type Store interface {
	// Create validates rec, assigns its ID and CreatedAt, and persists it.
	Create(ctx context.Context, rec *models.ContactMessage) error
	// List returns every message in insertion order.
	List(ctx context.Context) ([]models.ContactMessage, error)
	// DeleteByID returns the removed message or storage.ErrNotFound.
	DeleteByID(ctx context.Context, id string) (*models.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}
