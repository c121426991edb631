package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	TripsCollection    *mongo.Collection
	LinksCollection    *mongo.Collection
	CommentsCollection *mongo.Collection
	VotesCollection    *mongo.Collection
	Client             *mongo.Client
)

// Connect opens the MongoDB connection and binds the collection handles.
func Connect() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	Client = client

	database := client.Database("roamly")
	TripsCollection = database.Collection("trips")
	LinksCollection = database.Collection("links")
	CommentsCollection = database.Collection("comments")
	VotesCollection = database.Collection("votes")
	return nil
}

// Disconnect closes the client; used during graceful shutdown.
func Disconnect(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}
