package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property is a listing document. Only the two required fields have a fixed
// schema; everything else the caller sends is kept verbatim in Extra and
// round-trips through both BSON (inline) and JSON (flattened).
type Property struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty" json:"-"`
	PropertyName string                 `bson:"propertyName" json:"-"`
	UserEmail    string                 `bson:"userEmail" json:"-"`
	Extra        map[string]interface{} `bson:",inline" json:"-"`
}

func (p Property) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(p.Extra)+3)
	for k, v := range p.Extra {
		doc[k] = v
	}
	if !p.ID.IsZero() {
		doc["_id"] = p.ID.Hex()
	}
	doc["propertyName"] = p.PropertyName
	doc["userEmail"] = p.UserEmail
	return json.Marshal(doc)
}

func (p *Property) UnmarshalJSON(data []byte) error {
	doc := map[string]interface{}{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if name, ok := doc["propertyName"].(string); ok {
		p.PropertyName = name
	}
	if email, ok := doc["userEmail"].(string); ok {
		p.UserEmail = email
	}

	// The identifier is store-generated; a caller-supplied one is dropped
	delete(doc, "_id")
	delete(doc, "propertyName")
	delete(doc, "userEmail")

	p.Extra = doc
	return nil
}
