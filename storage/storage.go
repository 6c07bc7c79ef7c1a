// Package storage holds what the document-store adapters share: the
// connection helper, the not-found sentinel and generic collection helpers.
// File: storage/storage.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"academy-admin/logger"
)

// ErrNotFound is returned when a lookup or delete target does not exist.
// Malformed ids are reported the same way.
var ErrNotFound = errors.New("record not found")

const connectTimeout = 10 * time.Second

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Info.Println("Connect: MongoDB connection established")
	return client, nil
}

// ListAll returns every document of coll in insertion (_id) order.
func ListAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

// DeleteByHexID removes the document with the given ObjectID hex string and
// returns it as it was before deletion.
func DeleteByHexID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var deleted T
	err = coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	return &deleted, nil
}

// ShortEndpoint trims a push endpoint for log lines.
func ShortEndpoint(endpoint string) string {
	if len(endpoint) > 50 {
		return endpoint[:50] + "..."
	}
	return endpoint
}
