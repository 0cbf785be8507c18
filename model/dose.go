package model

import "time"

type DoseStatus string

const (
	DoseTaken   DoseStatus = "taken"
	DoseMissed  DoseStatus = "missed"
	DosePending DoseStatus = "pending"
)

// DoseRecord is one scheduled-medicine event with an outcome status.
// Immutable once created; one record per scheduled dose per day.
type DoseRecord struct {
	DoseID        string     `bson:"_id,omitempty" json:"id"`
	MedicineID    string     `bson:"medicine_id" json:"medicine_id"`
	UserID        string     `bson:"user_id" json:"user_id"`
	TakenAt       time.Time  `bson:"taken_at" json:"taken_at"`
	ScheduledTime string     `bson:"scheduled_time" json:"scheduled_time"` // "HH:MM"
	Status        DoseStatus `bson:"status" json:"status"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
}

func (s DoseStatus) Valid() bool {
	switch s {
	case DoseTaken, DoseMissed, DosePending:
		return true
	}
	return false
}
