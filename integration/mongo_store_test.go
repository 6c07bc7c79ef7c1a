//go:build integration
// +build integration

// integration/mongo_store_test.go
package integration

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"academy-admin/models"
	"academy-admin/storage"
	"academy-admin/storage/settings"
	"academy-admin/storage/subscription"
	"academy-admin/storage/trial"
)

// testDatabase connects to MONGODB_URI and returns a throwaway database.
func testDatabase(t *testing.T) *mongo.Database {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping MongoDB integration tests")
	}

	client, err := storage.Connect(context.Background(), uri)
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("academy_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestMongoTrialStore(t *testing.T) {
	ctx := context.Background()
	store := trial.NewMongoStore(testDatabase(t))

	rec := &models.TrialRegistration{PlayerName: "Kabir", PhoneNumber: 981000, SelectedCenter: "Sector 56", DateOfBirth: "2013-01-01"}
	require.NoError(t, store.Create(ctx, rec))
	require.NoError(t, store.Create(ctx, &models.TrialRegistration{PlayerName: "Meera", PhoneNumber: 981001, SelectedCenter: "DLF", DateOfBirth: "2012-01-01"}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Kabir", list[0].PlayerName)

	deleted, err := store.DeleteByID(ctx, rec.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Kabir", deleted.PlayerName)

	_, err = store.DeleteByID(ctx, rec.ID.Hex())
	assert.ErrorIs(t, err, storage.ErrNotFound)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestMongoSettingsStore_Singleton(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	store := settings.NewMongoStore(db)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Get(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSiteSettings(), *got)

	_, err = store.Update(ctx, models.SiteSettings{WebsiteName: "X"})
	require.NoError(t, err)
	got, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "X", got.WebsiteName)
	assert.Empty(t, got.AboutTheClub)

	n, err := db.Collection(settings.Collection).CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestMongoSettingsStore_AdoptsLegacyDocument(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	coll := db.Collection(settings.Collection)

	_, err := coll.InsertOne(ctx, bson.M{
		"_id":          primitive.NewObjectID(),
		"WebsiteName":  "Old Academy",
		"AboutTheClub": "Since 2019",
	})
	require.NoError(t, err)

	got, err := settings.NewMongoStore(db).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SettingsID, got.ID)
	assert.Equal(t, "Old Academy", got.WebsiteName)
	assert.Equal(t, "Since 2019", got.AboutTheClub)
	assert.Equal(t, models.DefaultSiteSettings().WebsiteEmail, got.WebsiteEmail, "missing fields keep defaults")

	n, err := coll.CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestMongoSubscriptionStore_Upsert(t *testing.T) {
	ctx := context.Background()
	store, err := subscription.NewMongoStore(ctx, testDatabase(t))
	require.NoError(t, err)

	sub := models.PushSubscription{Endpoint: "https://push.example/e", Keys: models.SubscriptionKeys{P256dh: "k1", Auth: "a1"}}
	require.NoError(t, store.Upsert(ctx, sub))
	sub.Keys = models.SubscriptionKeys{P256dh: "k2", Auth: "a2"}
	require.NoError(t, store.Upsert(ctx, sub))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "k2", list[0].Keys.P256dh)
	assert.False(t, list[0].CreatedAt.IsZero())

	require.NoError(t, store.Delete(ctx, sub.Endpoint))
	require.NoError(t, store.Delete(ctx, sub.Endpoint))

	n, err := store.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
