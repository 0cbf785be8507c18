package repository

import (
	"context"
	"errors"
	"log"
	"os"

	"main/model"
	"main/services"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for user stats snapshots
func GetStatsRepo(client *mongo.Client) *StatsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("STATS_COLLECTION")
	return &StatsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetStats returns the stored snapshot for a user, or nil, nil when the user
// has none yet.
func (r *StatsRepo) GetStats(ctx context.Context, userID string) (*model.UserStats, error) {
	timer := utils.TrackDBOperation("find", "stats")
	defer timer.ObserveDuration()

	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	if services.GlobalStatsCache != nil {
		if stats, err := services.GlobalStatsCache.GetStats(userID); err == nil && stats != nil {
			utils.TrackCacheOperation("stats", true)
			return stats, nil
		}
		utils.TrackCacheOperation("stats", false)
	}

	var stats model.UserStats
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&stats)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "stats_fetch_failed")
		return nil, err
	}

	if services.GlobalStatsCache != nil {
		if err := services.GlobalStatsCache.SetStats(&stats); err != nil {
			log.Printf("Warning: Failed to cache stats: %v", err)
		}
	}

	return &stats, nil
}

// SaveStats replaces the whole snapshot for the user, inserting it on first
// write. The snapshot is one row per user, so a replace-with-upsert keeps
// the write atomic.
func (r *StatsRepo) SaveStats(ctx context.Context, stats *model.UserStats) error {
	timer := utils.TrackDBOperation("upsert", "stats")
	defer timer.ObserveDuration()

	if stats == nil {
		return errors.New("stats cannot be nil")
	}
	if stats.UserID == "" {
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.ReplaceOne(ctx,
		bson.M{"user_id": stats.UserID},
		stats,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		utils.TrackError("database", "stats_save_failed")
		return err
	}

	if services.GlobalStatsCache != nil {
		if err := services.GlobalStatsCache.SetStats(stats); err != nil {
			log.Printf("Warning: Failed to cache stats: %v", err)
		}
	}

	return nil
}

// DeleteStats removes the snapshot, used during account deletion
func (r *StatsRepo) DeleteStats(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete", "stats")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "stats_deletion_failed")
		return err
	}

	if services.GlobalStatsCache != nil {
		if err := services.GlobalStatsCache.InvalidateStats(userID); err != nil {
			log.Printf("Warning: Failed to invalidate stats cache: %v", err)
		}
	}

	return nil
}
