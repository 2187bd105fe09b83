package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is one user's review of one property. At most one rating per
// (propertyId, email) pair is intended; see database.InsertRating.
type Rating struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PropertyID   string             `bson:"propertyId" json:"propertyId"`
	PropertyName string             `bson:"propertyName" json:"propertyName"`
	Description  string             `bson:"description" json:"description"`
	Image        string             `bson:"image" json:"image"`
	Rating       float64            `bson:"rating" json:"rating"`
	ReviewText   string             `bson:"reviewText" json:"reviewText"`
	Email        string             `bson:"email" json:"email"`

	// Assigned by the server at insert time; caller-supplied values are
	// ignored
	Date time.Time `bson:"date" json:"date"`
}
