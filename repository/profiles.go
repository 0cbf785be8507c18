package repository

import (
	"context"
	"errors"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProfilesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for family profiles
func GetProfilesRepo(client *mongo.Client) *ProfilesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("PROFILES_COLLECTION")
	return &ProfilesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateProfile adds a family member profile under the account
func (r *ProfilesRepo) CreateProfile(ctx context.Context, profile *model.FamilyProfile) error {
	timer := utils.TrackDBOperation("insert", "profiles")
	defer timer.ObserveDuration()

	if profile.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, profile)
	if err != nil {
		utils.TrackError("database", "profile_creation_failed")
		return err
	}
	return nil
}

// GetUserProfiles returns all family profiles for the account
func (r *ProfilesRepo) GetUserProfiles(ctx context.Context, userID string) ([]*model.FamilyProfile, error) {
	timer := utils.TrackDBOperation("find", "profiles")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "profile_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.FamilyProfile
	if err = cursor.All(ctx, &profiles); err != nil {
		utils.TrackError("database", "profile_decode_failed")
		return nil, err
	}
	return profiles, nil
}

// GetProfileByID returns one profile owned by the account, or nil, nil
func (r *ProfilesRepo) GetProfileByID(ctx context.Context, profileID string, userID string) (*model.FamilyProfile, error) {
	timer := utils.TrackDBOperation("find", "profiles")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     profileID,
		"user_id": userID,
	}

	var profile model.FamilyProfile
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "profile_fetch_failed")
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile updates name, relationship and birth date
func (r *ProfilesRepo) UpdateProfile(ctx context.Context, profileID string, userID string, updates *model.FamilyProfile) error {
	timer := utils.TrackDBOperation("update", "profiles")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     profileID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"name":         updates.Name,
			"relationship": updates.Relationship,
			"birth_date":   updates.BirthDate,
			"is_active":    updates.IsActive,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "profile_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "profile_not_found")
		return errors.New("profile not found")
	}
	return nil
}

// DeleteProfile removes a family profile
func (r *ProfilesRepo) DeleteProfile(ctx context.Context, profileID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "profiles")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     profileID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "profile_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "profile_not_found")
		return errors.New("profile not found")
	}
	return nil
}
