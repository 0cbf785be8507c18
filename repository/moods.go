package repository

import (
	"context"
	"errors"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MoodsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for mood entries
func GetMoodsRepo(client *mongo.Client) *MoodsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("MOODS_COLLECTION")
	return &MoodsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// UpsertMoodEntry stores one mood check-in per user per date; re-submitting
// the same date replaces the earlier entry.
func (r *MoodsRepo) UpsertMoodEntry(ctx context.Context, entry *model.MoodEntry) error {
	timer := utils.TrackDBOperation("upsert", "moods")
	defer timer.ObserveDuration()

	if entry.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	filter := bson.M{
		"user_id": entry.UserID,
		"date":    entry.Date,
	}

	_, err := r.MongoCollection.ReplaceOne(ctx, filter, entry, options.Replace().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "mood_upsert_failed")
		return err
	}
	return nil
}

// ListMoodEntries returns the user's mood history, newest date first
func (r *MoodsRepo) ListMoodEntries(ctx context.Context, userID string) ([]*model.MoodEntry, error) {
	timer := utils.TrackDBOperation("find", "moods")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "mood_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.MoodEntry
	if err = cursor.All(ctx, &entries); err != nil {
		utils.TrackError("database", "mood_decode_failed")
		return nil, err
	}
	return entries, nil
}

// DeleteMoodEntry removes one mood entry
func (r *MoodsRepo) DeleteMoodEntry(ctx context.Context, entryID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "moods")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     entryID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "mood_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "mood_not_found")
		return errors.New("mood entry not found")
	}
	return nil
}
