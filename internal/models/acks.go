package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Write acknowledgments, serialized with the field names MongoDB drivers
// use on the wire so existing clients keep working.

type InsertAck struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
