package api

import (
	"context"

	"homenest/server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the document-store surface the handlers need. It is implemented
// by *database.Database and by fakes in tests.
type Store interface {
	GetAllProperties(ctx context.Context) ([]models.Property, error)
	GetPropertyByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	InsertProperty(ctx context.Context, property models.Property) (*models.InsertAck, error)
	UpdateProperty(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.UpdateAck, error)
	DeleteProperty(ctx context.Context, id primitive.ObjectID) (*models.DeleteAck, error)
	GetPropertiesByOwner(ctx context.Context, email string) ([]models.Property, error)

	FindRating(ctx context.Context, propertyID, email string) (*models.Rating, error)
	InsertRating(ctx context.Context, rating models.Rating) (primitive.ObjectID, error)
	GetRatingsByRater(ctx context.Context, email string) ([]models.Rating, error)
}
