package handler

import (
	"fmt"
	"log"
	"net/http"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	reports *usecase.ReportService
}

func NewReportsHandler(reports *usecase.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// AdherenceReport streams the 30-day adherence summary as a PDF download
func (h *ReportsHandler) AdherenceReport(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	displayName := "My Medications"
	if user, err := repository.GetUsersRepo(utils.MongoClient).FindUser(c.Request.Context(), userID.(string)); err == nil && user != nil {
		displayName = user.Username
	}

	data, filename, err := h.reports.AdherenceReport(c.Request.Context(), userID.(string), displayName)
	if err != nil {
		log.Printf("Error building report for user %s: %v", userID, err)
		utils.InternalError(c, "Failed to build report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
