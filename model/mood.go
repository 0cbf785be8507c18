package model

import "time"

type Mood string

const (
	MoodVeryBad  Mood = "very-bad"
	MoodBad      Mood = "bad"
	MoodNeutral  Mood = "neutral"
	MoodGood     Mood = "good"
	MoodVeryGood Mood = "very-good"
)

// MoodEntry holds one mood check-in per user per calendar date.
type MoodEntry struct {
	EntryID   string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Date      string    `bson:"date" json:"date"` // "2006-01-02"
	Mood      Mood      `bson:"mood" json:"mood" binding:"required"`
	Energy    int       `bson:"energy" json:"energy"` // 1-5
	Symptoms  []string  `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func (m Mood) Valid() bool {
	switch m {
	case MoodVeryBad, MoodBad, MoodNeutral, MoodGood, MoodVeryGood:
		return true
	}
	return false
}
