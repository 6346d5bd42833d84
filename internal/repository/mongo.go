package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Connect opens a client against the catalog store and verifies the
// connection before returning it.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// Collections bundles the three catalog collections.
type Collections struct {
	Files    *mongo.Collection
	Requests *mongo.Collection
	Users    *mongo.Collection
}

func NewCollections(client *mongo.Client, database string) *Collections {
	db := client.Database(database)
	return &Collections{
		Files:    db.Collection("files"),
		Requests: db.Collection("requests"),
		Users:    db.Collection("users"),
	}
}
