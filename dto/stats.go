package dto

import (
	"main/model"
	"time"
)

// StatsResponse is the gamification snapshot returned to clients, with the
// catalog entries for unlocked achievements resolved inline.
type StatsResponse struct {
	TotalPoints         int                 `json:"total_points"`
	CurrentStreak       int                 `json:"current_streak"`
	LongestStreak       int                 `json:"longest_streak"`
	TotalMedicinesTaken int                 `json:"total_medicines_taken"`
	AdherenceRate       int                 `json:"adherence_rate"`
	Level               int                 `json:"level"`
	Achievements        []model.Achievement `json:"achievements"`
	LastUpdated         time.Time           `json:"last_updated"`
}

func ToStatsResponse(stats *model.UserStats, catalog []model.Achievement) StatsResponse {
	unlocked := make([]model.Achievement, 0, len(stats.Achievements))
	held := make(map[string]bool, len(stats.Achievements))
	for _, id := range stats.Achievements {
		held[id] = true
	}
	for _, entry := range catalog {
		if held[entry.ID] {
			unlocked = append(unlocked, entry)
		}
	}

	return StatsResponse{
		TotalPoints:         stats.TotalPoints,
		CurrentStreak:       stats.CurrentStreak,
		LongestStreak:       stats.LongestStreak,
		TotalMedicinesTaken: stats.TotalMedicinesTaken,
		AdherenceRate:       stats.AdherenceRate,
		Level:               stats.Level,
		Achievements:        unlocked,
		LastUpdated:         stats.LastUpdated,
	}
}
