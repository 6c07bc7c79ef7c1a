// Package subscription persists browser push subscriptions, one per endpoint.
// File: storage/subscription/store.go
package subscription

import (
	"context"

	"academy-admin/models"
)

// Store is the notification registry.
type Store interface {
	// Upsert validates sub and stores it, replacing the keys of an existing
	// subscription with the same endpoint.
	Upsert(ctx context.Context, sub models.PushSubscription) error
	// Delete removes the endpoint. A missing endpoint is not an error.
	Delete(ctx context.Context, endpoint string) error
	// DeleteAll removes every subscription and reports how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]models.PushSubscription, error)
	Count(ctx context.Context) (int64, error)
}
