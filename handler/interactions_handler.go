package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type InteractionsHandler struct {
	interactions *usecase.InteractionService
}

func NewInteractionsHandler(interactions *usecase.InteractionService) *InteractionsHandler {
	return &InteractionsHandler{interactions: interactions}
}

// CheckInteractions reports pairwise interactions among the posted names
func (h *InteractionsHandler) CheckInteractions(c *gin.Context) {
	var req struct {
		Medicines []string `json:"medicines" binding:"required,min=2"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Provide at least two medicine names")
		return
	}

	found := h.interactions.CheckInteractions(req.Medicines)

	utils.Success(c, gin.H{"interactions": found})
}
