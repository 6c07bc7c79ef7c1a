// File: storage/trial/mongo_store.go
package trial

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"academy-admin/models"
	"academy-admin/storage"
)

// Collection is the MongoDB collection holding registrations.
const Collection = "trialstudents"

// MongoStore keeps registrations in MongoDB.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore binds the store to db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(Collection)}
}

func (s *MongoStore) Create(ctx context.Context, rec *models.TrialRegistration) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	rec.ID = primitive.NewObjectID()
	rec.CreatedAt = time.Now().UTC()

	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert trial registration: %w", err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]models.TrialRegistration, error) {
	return storage.ListAll[models.TrialRegistration](ctx, s.coll)
}

func (s *MongoStore) DeleteByID(ctx context.Context, id string) (*models.TrialRegistration, error) {
	return storage.DeleteByHexID[models.TrialRegistration](ctx, s.coll, id)
}

func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count trial registrations: %w", err)
	}
	return n, nil
}
