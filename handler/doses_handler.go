package handler

import (
	"time"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type DosesHandler struct {
	doses *usecase.DosesService
}

func NewDosesHandler(doses *usecase.DosesService) *DosesHandler {
	return &DosesHandler{doses: doses}
}

// RecordDose stores a dose outcome and returns the freshly recomputed
// adherence snapshot. A failed stats save still reports the recorded dose,
// carrying the save problem as a warning.
func (h *DosesHandler) RecordDose(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var record model.DoseRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}
	record.UserID = userID.(string)

	stats, unlocked, statsErr, err := h.doses.RecordDose(c.Request.Context(), &record)
	if err != nil {
		if err.Error() == "medicine not found" {
			utils.NotFound(c, "Medicine not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	payload := gin.H{
		"dose":         record,
		"stats":        stats,
		"achievements": unlocked,
	}

	if statsErr != nil {
		utils.CreatedWithWarning(c, payload, "Dose recorded but stats could not be saved")
		return
	}

	utils.Created(c, payload)
}

func (h *DosesHandler) ListDoses(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	// Optional ?from=...&to=... window in RFC 3339
	fromParam := c.Query("from")
	toParam := c.Query("to")

	if fromParam != "" && toParam != "" {
		from, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			utils.BadRequest(c, "Invalid 'from' timestamp")
			return
		}
		to, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			utils.BadRequest(c, "Invalid 'to' timestamp")
			return
		}

		records, err := h.doses.ListDosesInRange(c.Request.Context(), userID.(string), from, to)
		if err != nil {
			if err.Error() == "invalid range: to must be after from" {
				utils.BadRequest(c, err.Error())
				return
			}
			utils.InternalError(c, "Failed to fetch dose records")
			return
		}
		utils.Success(c, gin.H{"doses": records})
		return
	}

	records, err := h.doses.ListDoses(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch dose records")
		return
	}

	utils.Success(c, gin.H{"doses": records})
}
