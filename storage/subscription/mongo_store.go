// File: storage/subscription/mongo_store.go
package subscription

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"academy-admin/logger"
	"academy-admin/models"
	"academy-admin/storage"
)

// Collection is the MongoDB collection holding subscriptions.
const Collection = "notificationsubscribers"

type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore binds the store to db and ensures the unique endpoint index.
func NewMongoStore(ctx context.Context, db *mongo.Database) (*MongoStore, error) {
	coll := db.Collection(Collection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "endpoint", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create endpoint index: %w", err)
	}
	return &MongoStore{coll: coll}, nil
}

func (s *MongoStore) Upsert(ctx context.Context, sub models.PushSubscription) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	filter := bson.M{"endpoint": sub.Endpoint}
	update := bson.M{
		"$set":         bson.M{"keys": sub.Keys},
		"$setOnInsert": bson.M{"createdAt": time.Now().UTC()},
	}
	_, err := s.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// Lost an insert race on the unique index; the document exists now.
		logger.Debug.Printf("Upsert: duplicate insert for %s, retrying as update", storage.ShortEndpoint(sub.Endpoint))
		_, err = s.coll.UpdateOne(ctx, filter, update)
	}
	if err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, endpoint string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"endpoint": endpoint}); err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}

func (s *MongoStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("delete all subscriptions: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) List(ctx context.Context) ([]models.PushSubscription, error) {
	return storage.ListAll[models.PushSubscription](ctx, s.coll)
}

func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count subscriptions: %w", err)
	}
	return n, nil
}
