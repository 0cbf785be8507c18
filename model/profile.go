package model

import "time"

// FamilyProfile is a sub-identity under one account, e.g. a family member
// whose medicines and stats are tracked separately.
type FamilyProfile struct {
	ProfileID    string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Name         string    `bson:"name" json:"name" binding:"required"`
	Relationship string    `bson:"relationship" json:"relationship"`
	BirthDate    string    `bson:"birth_date,omitempty" json:"birth_date,omitempty"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
