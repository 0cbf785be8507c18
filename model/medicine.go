package model

import "time"

type Medicine struct {
	MedicineID string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Name       string    `bson:"name" json:"name" binding:"required"`
	Dosage     string    `bson:"dosage" json:"dosage"`
	Frequency  string    `bson:"frequency" json:"frequency"`
	Times      []string  `bson:"times" json:"times"` // scheduled times as "HH:MM"
	StartDate  time.Time `bson:"start_date" json:"start_date"`
	EndDate    time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Color      string    `bson:"color,omitempty" json:"color,omitempty"`
	IsActive   bool      `bson:"is_active" json:"is_active"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// MedicineInfo is a reference entry resolved from a product barcode.
type MedicineInfo struct {
	Name             string `json:"name"`
	Barcode          string `json:"barcode"`
	Manufacturer     string `json:"manufacturer,omitempty"`
	ActiveIngredient string `json:"active_ingredient,omitempty"`
}
