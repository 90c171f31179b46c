package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Open connects to MongoDB and verifies the connection with a short ping.
func Open(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// Collection returns a handle to a named collection in the application database.
func Collection(client *mongo.Client, db, name string) *mongo.Collection {
	return client.Database(db).Collection(name)
}

// EnsureIndexes creates the unique index on registration.UserName so the
// store, not the application, enforces username uniqueness.
func EnsureIndexes(ctx context.Context, client *mongo.Client, db string) error {
	users := Collection(client, db, "registration")
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "UserName", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
