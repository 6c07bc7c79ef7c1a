// File: storage/settings/mongo_store.go
package settings

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"academy-admin/logger"
	"academy-admin/models"
)

// Collection is the MongoDB collection holding the settings document.
const Collection = "websitesettings"

// MongoStore keys the singleton on a fixed _id and relies on upserts, so
// concurrent first reads converge on one document.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(Collection)}
}

// Get returns the singleton. On first read it adopts a document written
// under a generated _id by earlier deployments, then removes that copy.
func (s *MongoStore) Get(ctx context.Context) (*models.SiteSettings, error) {
	var out models.SiteSettings
	err := s.coll.FindOne(ctx, bson.M{"_id": models.SettingsID}).Decode(&out)
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("load site settings: %w", err)
	}

	seed, legacyID, err := s.legacy(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	update := bson.M{"$setOnInsert": fields(seed)}

	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": models.SettingsID}, update, opts).Decode(&out); err != nil {
		return nil, fmt.Errorf("load site settings: %w", err)
	}

	if legacyID != nil {
		if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": legacyID}); err != nil {
			logger.Warn.Printf("Get: adopted legacy settings but could not remove them: %v", err)
		} else {
			logger.Info.Printf("Get: adopted legacy settings document %v", legacyID)
		}
	}
	return &out, nil
}

// legacy looks for a settings document under any other _id. Fields it lacks
// keep their defaults.
func (s *MongoStore) legacy(ctx context.Context) (models.SiteSettings, interface{}, error) {
	seed := models.DefaultSiteSettings()

	var raw bson.Raw
	err := s.coll.FindOne(ctx, bson.M{"_id": bson.M{"$ne": models.SettingsID}}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return seed, nil, nil
	}
	if err != nil {
		return seed, nil, fmt.Errorf("look for legacy site settings: %w", err)
	}

	for name := range fields(seed) {
		if v, ok := raw.Lookup(name).StringValueOK(); ok {
			setField(&seed, name, v)
		}
	}
	return seed, raw.Lookup("_id"), nil
}

func (s *MongoStore) Update(ctx context.Context, in models.SiteSettings) (*models.SiteSettings, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	update := bson.M{"$set": fields(in)}

	var out models.SiteSettings
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": models.SettingsID}, update, opts).Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("save site settings: %w", err)
	}
	return &out, nil
}
