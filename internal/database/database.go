package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	propertiesCollection = "properties"
	ratingsCollection    = "myRating"
)

// Database wraps the single long-lived Mongo client shared by all request
// handlers. It is created once in main and injected where needed.
type Database struct {
	client     *mongo.Client
	properties *mongo.Collection
	ratings    *mongo.Collection
}

func NewDatabase(ctx context.Context, uri, dbName string) (*Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(dbName)
	return &Database{
		client:     client,
		properties: db.Collection(propertiesCollection),
		ratings:    db.Collection(ratingsCollection),
	}, nil
}

func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
