package model

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

type Notification struct {
	NotificationID string           `bson:"_id,omitempty" json:"id"`
	UserID         string           `bson:"user_id" json:"user_id"`
	Title          string           `bson:"title" json:"title"`
	Message        string           `bson:"message" json:"message"`
	Type           NotificationType `bson:"type" json:"type"`
	IsRead         bool             `bson:"is_read" json:"is_read"`
	CreatedAt      time.Time        `bson:"created_at" json:"created_at"`
}
