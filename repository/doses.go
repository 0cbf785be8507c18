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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DosesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for dose records
func GetDosesRepo(client *mongo.Client) *DosesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("DOSES_COLLECTION")
	return &DosesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateDoseRecord stores one dose outcome. There is one record per
// scheduled dose per day, so an existing record for the same medicine, day
// and scheduled time is replaced rather than duplicated.
func (r *DosesRepo) CreateDoseRecord(ctx context.Context, record *model.DoseRecord) error {
	timer := utils.TrackDBOperation("upsert", "doses")
	defer timer.ObserveDuration()

	if record.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}
	if record.MedicineID == "" {
		utils.TrackError("database", "missing_medicine_id")
		return errors.New("medicine ID is required")
	}

	dayStart := time.Date(record.TakenAt.Year(), record.TakenAt.Month(), record.TakenAt.Day(), 0, 0, 0, 0, record.TakenAt.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	filter := bson.M{
		"user_id":        record.UserID,
		"medicine_id":    record.MedicineID,
		"scheduled_time": record.ScheduledTime,
		"taken_at":       bson.M{"$gte": dayStart, "$lt": dayEnd},
	}

	_, err := r.MongoCollection.ReplaceOne(ctx, filter, record, options.Replace().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "dose_creation_failed")
		return err
	}

	utils.TrackDoseEvent(string(record.Status))
	return nil
}

// ListDoseRecords returns the full dose history for a user
func (r *DosesRepo) ListDoseRecords(ctx context.Context, userID string) ([]model.DoseRecord, error) {
	timer := utils.TrackDBOperation("find", "doses")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "dose_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.DoseRecord
	if err = cursor.All(ctx, &records); err != nil {
		utils.TrackError("database", "dose_decode_failed")
		return nil, err
	}
	return records, nil
}

// ListDoseRecordsInRange returns dose records whose taken_at falls in
// [from, to), newest first.
func (r *DosesRepo) ListDoseRecordsInRange(ctx context.Context, userID string, from, to time.Time) ([]model.DoseRecord, error) {
	timer := utils.TrackDBOperation("find", "doses")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":  userID,
		"taken_at": bson.M{"$gte": from, "$lt": to},
	}

	opts := options.Find().SetSort(bson.D{{Key: "taken_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "dose_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.DoseRecord
	if err = cursor.All(ctx, &records); err != nil {
		utils.TrackError("database", "dose_decode_failed")
		return nil, err
	}
	return records, nil
}

// Removes all dose records belonging to a medicine, used when the medicine
// itself is deleted
func (r *DosesRepo) DeleteMedicineDoses(ctx context.Context, medicineID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "doses")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"medicine_id": medicineID,
		"user_id":     userID,
	})
	if err != nil {
		utils.TrackError("database", "dose_deletion_failed")
		return err
	}
	return nil
}
