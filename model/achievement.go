package model

type AchievementType string

const (
	AchievementMilestone   AchievementType = "milestone"
	AchievementStreak      AchievementType = "streak"
	AchievementTotal       AchievementType = "total"
	AchievementConsistency AchievementType = "consistency"
)

// Achievement is a static catalog entry. The catalog is defined once at
// process start and never persisted.
type Achievement struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Type        AchievementType `json:"type"`
	Requirement int             `json:"requirement"`
	Points      int             `json:"points"`
}
