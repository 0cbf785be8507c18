package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type MoodsHandler struct {
	moods *usecase.MoodsService
}

func NewMoodsHandler(moods *usecase.MoodsService) *MoodsHandler {
	return &MoodsHandler{moods: moods}
}

func (h *MoodsHandler) SaveMoodEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var entry model.MoodEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}
	entry.UserID = userID.(string)

	if err := h.moods.SaveMoodEntry(c.Request.Context(), &entry); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"entry": entry})
}

func (h *MoodsHandler) ListMoodEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	entries, err := h.moods.GetMoodEntries(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch mood entries")
		return
	}

	utils.Success(c, gin.H{"entries": entries})
}

func (h *MoodsHandler) DeleteMoodEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	entryID := c.Param("id")
	if err := h.moods.DeleteMoodEntry(c.Request.Context(), entryID, userID.(string)); err != nil {
		if err.Error() == "mood entry not found" {
			utils.NotFound(c, "Mood entry not found")
			return
		}
		utils.InternalError(c, "Failed to delete mood entry")
		return
	}

	utils.Success(c, gin.H{"message": "Mood entry deleted"})
}
