package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homenest/server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindRating looks up the rating a user previously left on a property.
// Returns nil without error when none exists.
func (d *Database) FindRating(ctx context.Context, propertyID, email string) (*models.Rating, error) {
	var rating models.Rating
	err := d.ratings.FindOne(ctx, bson.M{"propertyId": propertyID, "email": email}).Decode(&rating)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}
	return &rating, nil
}

// InsertRating stores a new rating with a server-assigned creation date.
// Callers are expected to have checked for an existing rating first; no
// unique index backs that check, so concurrent inserts for the same
// (propertyId, email) pair can both succeed.
func (d *Database) InsertRating(ctx context.Context, rating models.Rating) (primitive.ObjectID, error) {
	rating.Date = time.Now().UTC()

	result, err := d.ratings.InsertOne(ctx, rating)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert rating: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func (d *Database) GetRatingsByRater(ctx context.Context, email string) ([]models.Rating, error) {
	cursor, err := d.ratings.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings for %s: %w", email, err)
	}

	ratings := make([]models.Rating, 0)
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("failed to decode ratings: %w", err)
	}
	return ratings, nil
}
