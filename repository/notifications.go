package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for notifications
func GetNotificationsRepo(client *mongo.Client) *NotificationsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("NOTIFICATIONS_COLLECTION")
	return &NotificationsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateNotification stores a notification for the user. This is also the
// sink the stats engine writes achievement unlocks into.
func (r *NotificationsRepo) CreateNotification(ctx context.Context, notification *model.Notification) error {
	timer := utils.TrackDBOperation("insert", "notifications")
	defer timer.ObserveDuration()

	if notification.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	if notification.NotificationID == "" {
		notification.NotificationID = uuid.New().String()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	_, err := r.MongoCollection.InsertOne(ctx, notification)
	if err != nil {
		utils.TrackError("database", "notification_creation_failed")
		return err
	}

	return nil
}

// ListNotifications returns the user's notifications, newest first
func (r *NotificationsRepo) ListNotifications(ctx context.Context, userID string) ([]*model.Notification, error) {
	timer := utils.TrackDBOperation("find", "notifications")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "notification_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []*model.Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		utils.TrackError("database", "notification_decode_failed")
		return nil, err
	}
	return notifications, nil
}

// UnreadCount counts unread notifications for badge display in the UI
func (r *NotificationsRepo) UnreadCount(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "notifications")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID, "is_read": false})
	if err != nil {
		utils.TrackError("database", "notification_count_failed")
		return 0, err
	}
	return int(count), nil
}

// MarkRead marks one notification as read
func (r *NotificationsRepo) MarkRead(ctx context.Context, notificationID string, userID string) error {
	timer := utils.TrackDBOperation("update", "notifications")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     notificationID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		utils.TrackError("database", "notification_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "notification_not_found")
		return errors.New("notification not found")
	}
	return nil
}

// MarkAllRead marks every notification for the user as read
func (r *NotificationsRepo) MarkAllRead(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update", "notifications")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		utils.TrackError("database", "notification_update_failed")
		return err
	}
	return nil
}

// DeleteNotification removes one notification
func (r *NotificationsRepo) DeleteNotification(ctx context.Context, notificationID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "notifications")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     notificationID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "notification_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "notification_not_found")
		return errors.New("notification not found")
	}
	return nil
}
