package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPropertyUnmarshalKeepsExtraFields(t *testing.T) {
	payload := []byte(`{
		"propertyName": "Lakeview Cottage",
		"userEmail": "a@x.com",
		"price": 450000,
		"amenities": ["garden", "garage"]
	}`)

	var p Property
	require.NoError(t, json.Unmarshal(payload, &p))

	assert.Equal(t, "Lakeview Cottage", p.PropertyName)
	assert.Equal(t, "a@x.com", p.UserEmail)
	assert.Equal(t, float64(450000), p.Extra["price"])
	assert.Equal(t, []interface{}{"garden", "garage"}, p.Extra["amenities"])
}

func TestPropertyUnmarshalDropsCallerID(t *testing.T) {
	payload := []byte(`{"_id": "deadbeefdeadbeefdeadbeef", "propertyName": "X", "userEmail": "a@x.com"}`)

	var p Property
	require.NoError(t, json.Unmarshal(payload, &p))

	assert.True(t, p.ID.IsZero())
	assert.NotContains(t, p.Extra, "_id")
}

func TestPropertyMarshalFlattensExtraFields(t *testing.T) {
	id := primitive.NewObjectID()
	p := Property{
		ID:           id,
		PropertyName: "Lakeview Cottage",
		UserEmail:    "a@x.com",
		Extra:        map[string]interface{}{"price": 450000},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, id.Hex(), doc["_id"])
	assert.Equal(t, "Lakeview Cottage", doc["propertyName"])
	assert.Equal(t, "a@x.com", doc["userEmail"])
	assert.Equal(t, float64(450000), doc["price"])
}

func TestPropertyMarshalOmitsZeroID(t *testing.T) {
	p := Property{PropertyName: "X", UserEmail: "a@x.com"}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotContains(t, doc, "_id")
}

func TestPropertyRequiredFieldsMissing(t *testing.T) {
	var p Property
	require.NoError(t, json.Unmarshal([]byte(`{"price": 1}`), &p))

	assert.Empty(t, p.PropertyName)
	assert.Empty(t, p.UserEmail)
}
