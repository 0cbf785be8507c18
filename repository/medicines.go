package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MedicinesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for medicines
func GetMedicinesRepo(client *mongo.Client) *MedicinesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("MEDICINES_COLLECTION")
	return &MedicinesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new medicine (following the model) into the database
func (r *MedicinesRepo) CreateMedicine(ctx context.Context, medicine *model.Medicine) error {
	timer := utils.TrackDBOperation("insert", "medicines")
	defer timer.ObserveDuration()

	if medicine.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, medicine)
	if err != nil {
		utils.TrackError("database", "medicine_creation_failed")
		return err
	}

	return nil
}

// Retrieves all medicines based on the User ID
func (r *MedicinesRepo) GetUserMedicines(ctx context.Context, userID string) ([]*model.Medicine, error) {
	timer := utils.TrackDBOperation("find", "medicines")
	defer timer.ObserveDuration()

	var medicines []*model.Medicine
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "medicine_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &medicines); err != nil {
		utils.TrackError("database", "medicine_decode_failed")
		return nil, err
	}
	return medicines, nil
}

// Retrieves one medicine owned by the user
func (r *MedicinesRepo) GetMedicineByID(ctx context.Context, medicineID string, userID string) (*model.Medicine, error) {
	timer := utils.TrackDBOperation("find", "medicines")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     medicineID,
		"user_id": userID,
	}

	var medicine model.Medicine
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "medicine_fetch_failed")
		return nil, err
	}
	return &medicine, nil
}

// Retrieves only medicines currently marked active
func (r *MedicinesRepo) GetActiveMedicines(ctx context.Context, userID string) ([]*model.Medicine, error) {
	timer := utils.TrackDBOperation("find", "medicines")
	defer timer.ObserveDuration()

	var medicines []*model.Medicine
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID, "is_active": true})
	if err != nil {
		utils.TrackError("database", "medicine_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &medicines); err != nil {
		utils.TrackError("database", "medicine_decode_failed")
		return nil, err
	}
	return medicines, nil
}

// All encompassing update for a specific medicine
func (r *MedicinesRepo) UpdateMedicine(ctx context.Context, medicineID string, userID string, updates *model.Medicine) error {
	timer := utils.TrackDBOperation("update", "medicines")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     medicineID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"name":       updates.Name,
			"dosage":     updates.Dosage,
			"frequency":  updates.Frequency,
			"times":      updates.Times,
			"start_date": updates.StartDate,
			"end_date":   updates.EndDate,
			"notes":      updates.Notes,
			"color":      updates.Color,
			"is_active":  updates.IsActive,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "medicine_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "medicine_not_found")
		return errors.New("medicine not found")
	}

	return nil
}

// Toggles the active flag of a medicine
func (r *MedicinesRepo) ToggleActive(ctx context.Context, medicineID string, userID string) (bool, error) {
	timer := utils.TrackDBOperation("update", "medicines")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     medicineID,
		"user_id": userID,
	}

	var medicine model.Medicine
	if err := r.MongoCollection.FindOne(ctx, filter).Decode(&medicine); err != nil {
		utils.TrackError("database", "medicine_not_found")
		return false, errors.New("medicine not found")
	}

	newActive := !medicine.IsActive
	update := bson.M{
		"$set": bson.M{
			"is_active":  newActive,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "medicine_update_failed")
		return false, err
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "medicine_not_found")
		return false, errors.New("medicine not found")
	}

	return newActive, nil
}

// Removes a specific medicine from database
func (r *MedicinesRepo) DeleteMedicine(ctx context.Context, medicineID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "medicines")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     medicineID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "medicine_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		utils.TrackError("database", "medicine_not_found")
		return errors.New("medicine not found")
	}

	return nil
}

// Counts the medicines for a user for display in the UI
func (r *MedicinesRepo) CountUserMedicines(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
