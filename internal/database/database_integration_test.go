package database

import (
	"context"
	"os"
	"testing"
	"time"

	"homenest/server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests run against a real MongoDB instance when
// MONGO_TEST_URI is set, e.g. MONGO_TEST_URI=mongodb://localhost:27017.

func setupTestDB(t *testing.T) *Database {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := NewDatabase(ctx, uri, "homeNestTestDB")
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.properties.Drop(ctx)
		_ = db.ratings.Drop(ctx)
		_ = db.Close(ctx)
	})
	return db
}

func TestPropertyLifecycleIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	ack, err := db.InsertProperty(ctx, models.Property{
		PropertyName: "Lakeview Cottage",
		UserEmail:    "a@x.com",
		Extra:        map[string]interface{}{"price": int64(450000)},
	})
	require.NoError(t, err)
	require.False(t, ack.InsertedID.IsZero())

	got, err := db.GetPropertyByID(ctx, ack.InsertedID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Lakeview Cottage", got.PropertyName)
	assert.Equal(t, "a@x.com", got.UserEmail)
	assert.EqualValues(t, 450000, got.Extra["price"])

	updateAck, err := db.UpdateProperty(ctx, ack.InsertedID, map[string]interface{}{
		"price": int64(500000),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updateAck.MatchedCount)

	owned, err := db.GetPropertiesByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	deleteAck, err := db.DeleteProperty(ctx, ack.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleteAck.DeletedCount)

	gone, err := db.GetPropertyByID(ctx, ack.InsertedID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRatingDateIsServerAssignedIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	callerDate := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	id, err := db.InsertRating(ctx, models.Rating{
		PropertyID: "p1",
		Email:      "a@x.com",
		Rating:     5,
		Date:       callerDate,
	})
	require.NoError(t, err)
	require.False(t, id.IsZero())

	ratings, err := db.GetRatingsByRater(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.NotEqual(t, callerDate, ratings[0].Date)
	assert.WithinDuration(t, time.Now(), ratings[0].Date, time.Minute)
}

func TestFindRatingIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	none, err := db.FindRating(ctx, "p1", "a@x.com")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = db.InsertRating(ctx, models.Rating{PropertyID: "p1", Email: "a@x.com", Rating: 4})
	require.NoError(t, err)

	found, err := db.FindRating(ctx, "p1", "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "p1", found.PropertyID)
}
