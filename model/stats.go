package model

import "time"

// UserStats is the persisted adherence snapshot for one user or profile.
// It is recomputed and saved as a whole after every dose mutation; the
// achievements list only ever grows.
type UserStats struct {
	UserID              string    `bson:"user_id" json:"user_id"`
	TotalPoints         int       `bson:"total_points" json:"total_points"`
	CurrentStreak       int       `bson:"current_streak" json:"current_streak"`
	LongestStreak       int       `bson:"longest_streak" json:"longest_streak"`
	TotalMedicinesTaken int       `bson:"total_medicines_taken" json:"total_medicines_taken"`
	AdherenceRate       int       `bson:"adherence_rate" json:"adherence_rate"`
	Level               int       `bson:"level" json:"level"`
	Achievements        []string  `bson:"achievements" json:"achievements"`
	LastUpdated         time.Time `bson:"last_updated" json:"last_updated"`
}

// NewUserStats returns the zero-valued snapshot created the first time a
// user or profile has no stats row.
func NewUserStats(userID string, now time.Time) *UserStats {
	return &UserStats{
		UserID:       userID,
		Level:        1,
		Achievements: []string{},
		LastUpdated:  now,
	}
}
