package utils

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient is the shared MongoDB client for the process
var MongoClient *mongo.Client

// InitMongoClient connects the shared client using the provided driver
// options.
func InitMongoClient(clientOptions *options.ClientOptions) {
	if os.Getenv("MONGO_URI") == "" {
		log.Fatal("MongoDB URI is not set")
	}

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	MongoClient = client
}

// PingMongo verifies the database is reachable, for the health endpoint.
func PingMongo(ctx context.Context) error {
	if MongoClient == nil {
		return mongo.ErrClientDisconnected
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return MongoClient.Ping(ctx, readpref.Primary())
}
