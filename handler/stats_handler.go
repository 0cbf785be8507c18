package handler

import (
	"log"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	stats *usecase.StatsService
}

func NewStatsHandler(stats *usecase.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetUserStats returns the stored adherence snapshot, creating the zero
// snapshot on first access.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	stats, err := h.stats.GetStats(c.Request.Context(), userID.(string))
	if err != nil {
		log.Printf("Error fetching stats for user %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch stats")
		return
	}

	utils.Success(c, gin.H{
		"stats": dto.ToStatsResponse(stats, usecase.AchievementCatalog()),
	})
}

// RecomputeStats re-derives the snapshot from the full dose history
func (h *StatsHandler) RecomputeStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	stats, unlocked, err := h.stats.Recompute(c.Request.Context(), userID.(string))
	if err != nil {
		log.Printf("Error recomputing stats for user %s: %v", userID, err)
		utils.InternalError(c, "Failed to recompute stats")
		return
	}

	utils.Success(c, gin.H{
		"stats":    dto.ToStatsResponse(stats, usecase.AchievementCatalog()),
		"unlocked": unlocked,
	})
}

// GetAchievements lists the full catalog with unlock state per entry
func (h *StatsHandler) GetAchievements(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	stats, err := h.stats.GetStats(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch stats")
		return
	}

	held := make(map[string]bool, len(stats.Achievements))
	for _, id := range stats.Achievements {
		held[id] = true
	}

	type achievementState struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Points      int    `json:"points"`
		Unlocked    bool   `json:"unlocked"`
	}

	catalog := usecase.AchievementCatalog()
	achievements := make([]achievementState, 0, len(catalog))
	for _, entry := range catalog {
		achievements = append(achievements, achievementState{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			Icon:        entry.Icon,
			Points:      entry.Points,
			Unlocked:    held[entry.ID],
		})
	}

	utils.Success(c, gin.H{"achievements": achievements})
}
