package usecase

import (
	"main/model"
)

// achievementCatalog is the full static catalog, checked in order on every
// stats recompute. Requirements and point values line up with the levels
// users see in the app; do not reorder entries, unlock order follows the
// catalog.
var achievementCatalog = []model.Achievement{
	{
		ID:          "first-dose",
		Name:        "First Step",
		Description: "You took your first medicine!",
		Icon:        "🎯",
		Type:        model.AchievementMilestone,
		Requirement: 1,
		Points:      10,
	},
	{
		ID:          "streak-3",
		Name:        "3-Day Streak",
		Description: "You took your medicines 3 days in a row",
		Icon:        "🔥",
		Type:        model.AchievementStreak,
		Requirement: 3,
		Points:      25,
	},
	{
		ID:          "streak-7",
		Name:        "Weekly Hero",
		Description: "You took your medicines 7 days in a row",
		Icon:        "⭐",
		Type:        model.AchievementStreak,
		Requirement: 7,
		Points:      50,
	},
	{
		ID:          "streak-30",
		Name:        "Monthly Champion",
		Description: "You took your medicines 30 days in a row",
		Icon:        "👑",
		Type:        model.AchievementStreak,
		Requirement: 30,
		Points:      200,
	},
	{
		ID:          "total-50",
		Name:        "Half Century",
		Description: "You took 50 doses in total",
		Icon:        "💊",
		Type:        model.AchievementTotal,
		Requirement: 50,
		Points:      75,
	},
	{
		ID:          "total-100",
		Name:        "Century Club",
		Description: "You took 100 doses in total",
		Icon:        "💯",
		Type:        model.AchievementTotal,
		Requirement: 100,
		Points:      150,
	},
	{
		ID:          "consistency-90",
		Name:        "Consistency Master",
		Description: "You reached a 90% adherence rate",
		Icon:        "🎖️",
		Type:        model.AchievementConsistency,
		Requirement: 90,
		Points:      100,
	},
}

// AchievementCatalog returns the static catalog for display.
func AchievementCatalog() []model.Achievement {
	catalog := make([]model.Achievement, len(achievementCatalog))
	copy(catalog, achievementCatalog)
	return catalog
}

// EvaluateAchievements checks the catalog against freshly computed stats and
// returns a new stats value with unlocks applied plus the unlocked entries in
// detection order. Already-held achievements are never re-awarded, so running
// this twice on the same input is a no-op the second time. The input stats
// value is not mutated.
func EvaluateAchievements(stats model.UserStats) (model.UserStats, []model.Achievement) {
	held := make(map[string]bool, len(stats.Achievements))
	for _, id := range stats.Achievements {
		held[id] = true
	}

	// Copy so the caller's achievements slice is never shared
	updated := stats
	updated.Achievements = make([]string, len(stats.Achievements), len(stats.Achievements)+len(achievementCatalog))
	copy(updated.Achievements, stats.Achievements)

	var unlocked []model.Achievement

	for _, achievement := range achievementCatalog {
		if held[achievement.ID] {
			continue
		}

		qualified := false
		switch achievement.Type {
		case model.AchievementMilestone, model.AchievementTotal:
			qualified = updated.TotalMedicinesTaken >= achievement.Requirement
		case model.AchievementStreak:
			qualified = updated.CurrentStreak >= achievement.Requirement
		case model.AchievementConsistency:
			qualified = updated.AdherenceRate >= achievement.Requirement
		}

		if qualified {
			updated.Achievements = append(updated.Achievements, achievement.ID)
			updated.TotalPoints += achievement.Points
			unlocked = append(unlocked, achievement)
		}
	}

	return updated, unlocked
}

// LevelForPoints derives the level shown next to the point total.
// Every 100 points is one level.
func LevelForPoints(totalPoints int) int {
	return totalPoints/100 + 1
}
