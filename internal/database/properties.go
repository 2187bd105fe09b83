package database

import (
	"context"
	"errors"
	"fmt"

	"homenest/server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (d *Database) GetAllProperties(ctx context.Context) ([]models.Property, error) {
	cursor, err := d.properties.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}

	properties := make([]models.Property, 0)
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	return properties, nil
}

// GetPropertyByID returns nil without error when no document matches.
func (d *Database) GetPropertyByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	err := d.properties.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find property %s: %w", id.Hex(), err)
	}
	return &property, nil
}

func (d *Database) InsertProperty(ctx context.Context, property models.Property) (*models.InsertAck, error) {
	result, err := d.properties.InsertOne(ctx, property)
	if err != nil {
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return &models.InsertAck{Acknowledged: true, InsertedID: id}, nil
}

// UpdateProperty applies a field-level merge ($set) to the matching
// document. Updating an unknown id is not an error; the ack reports zero
// matches.
func (d *Database) UpdateProperty(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.UpdateAck, error) {
	result, err := d.properties.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update property %s: %w", id.Hex(), err)
	}
	return &models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (d *Database) DeleteProperty(ctx context.Context, id primitive.ObjectID) (*models.DeleteAck, error) {
	result, err := d.properties.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete property %s: %w", id.Hex(), err)
	}
	return &models.DeleteAck{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

func (d *Database) GetPropertiesByOwner(ctx context.Context, email string) ([]models.Property, error) {
	cursor, err := d.properties.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("failed to query properties for %s: %w", email, err)
	}

	properties := make([]models.Property, 0)
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	return properties, nil
}
