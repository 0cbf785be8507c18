package repository

import (
	"context"
	"os"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PharmaciesRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for the pharmacy directory
func GetPharmaciesRepo(client *mongo.Client) *PharmaciesRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("PHARMACIES_COLLECTION")
	return &PharmaciesRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// ListPharmacies returns the directory, optionally filtered by city and
// district, sorted by name
func (r *PharmaciesRepo) ListPharmacies(ctx context.Context, city, district string) ([]*model.Pharmacy, error) {
	timer := utils.TrackDBOperation("find", "pharmacies")
	defer timer.ObserveDuration()

	filter := bson.M{}
	if city != "" {
		filter["city"] = city
	}
	if district != "" {
		filter["district"] = district
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "pharmacy_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var pharmacies []*model.Pharmacy
	if err = cursor.All(ctx, &pharmacies); err != nil {
		utils.TrackError("database", "pharmacy_decode_failed")
		return nil, err
	}
	return pharmacies, nil
}

// CreatePharmacy adds a directory entry, admin only
func (r *PharmaciesRepo) CreatePharmacy(ctx context.Context, pharmacy *model.Pharmacy) error {
	timer := utils.TrackDBOperation("insert", "pharmacies")
	defer timer.ObserveDuration()

	if pharmacy.PharmacyID == "" {
		pharmacy.PharmacyID = uuid.New().String()
	}

	_, err := r.MongoCollection.InsertOne(ctx, pharmacy)
	if err != nil {
		utils.TrackError("database", "pharmacy_creation_failed")
		return err
	}
	return nil
}
