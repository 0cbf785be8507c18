package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	medicinesCollection := db.Collection(os.Getenv("MEDICINES_COLLECTION"))
	dosesCollection := db.Collection(os.Getenv("DOSES_COLLECTION"))
	statsCollection := db.Collection(os.Getenv("STATS_COLLECTION"))
	notificationsCollection := db.Collection(os.Getenv("NOTIFICATIONS_COLLECTION"))
	moodsCollection := db.Collection(os.Getenv("MOODS_COLLECTION"))

	medicineIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().
				SetName("user_active_medicines"),
		},
	}

	doseIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "taken_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_doses_date"),
		},
		// One record per scheduled dose per day is enforced by the
		// upsert filter; this index keeps that filter fast.
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "medicine_id", Value: 1},
				{Key: "scheduled_time", Value: 1},
				{Key: "taken_at", Value: 1},
			},
			Options: options.Index().
				SetName("user_dose_slot"),
		},
	}

	statsIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_stats").
				SetUnique(true),
		},
	}

	notificationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_notifications_date"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_read", Value: 1},
			},
			Options: options.Index().
				SetName("user_unread_notifications"),
		},
	}

	moodIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().
				SetName("user_moods_date").
				SetUnique(true),
		},
	}

	if _, err := medicinesCollection.Indexes().CreateMany(ctx, medicineIndexes); err != nil {
		return fmt.Errorf("failed to create medicine indexes: %w", err)
	}
	if _, err := dosesCollection.Indexes().CreateMany(ctx, doseIndexes); err != nil {
		return fmt.Errorf("failed to create dose indexes: %w", err)
	}
	if _, err := statsCollection.Indexes().CreateMany(ctx, statsIndexes); err != nil {
		return fmt.Errorf("failed to create stats indexes: %w", err)
	}
	if _, err := notificationsCollection.Indexes().CreateMany(ctx, notificationIndexes); err != nil {
		return fmt.Errorf("failed to create notification indexes: %w", err)
	}
	if _, err := moodsCollection.Indexes().CreateMany(ctx, moodIndexes); err != nil {
		return fmt.Errorf("failed to create mood indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
