package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type MedicinesHandler struct {
	medicines *usecase.MedicinesService
}

func NewMedicinesHandler(medicines *usecase.MedicinesService) *MedicinesHandler {
	return &MedicinesHandler{medicines: medicines}
}

func (h *MedicinesHandler) ListMedicines(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	medicines, err := h.medicines.GetUserMedicines(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch medicines")
		return
	}

	utils.Success(c, gin.H{"medicines": medicines})
}

func (h *MedicinesHandler) AddMedicine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var medicine model.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}
	medicine.UserID = userID.(string)

	interactions, err := h.medicines.AddMedicine(c.Request.Context(), &medicine)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{
		"medicine":     medicine,
		"interactions": interactions,
	})
}

func (h *MedicinesHandler) UpdateMedicine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}
	medicineID := c.Param("id")

	var updates model.Medicine
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}

	medicine, err := h.medicines.UpdateMedicine(c.Request.Context(), medicineID, userID.(string), &updates)
	if err != nil {
		if err.Error() == "medicine not found" {
			utils.NotFound(c, "Medicine not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"medicine": medicine})
}

func (h *MedicinesHandler) ToggleActive(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}
	medicineID := c.Param("id")

	isActive, err := h.medicines.ToggleActive(c.Request.Context(), medicineID, userID.(string))
	if err != nil {
		if err.Error() == "medicine not found" {
			utils.NotFound(c, "Medicine not found")
			return
		}
		utils.InternalError(c, "Failed to update medicine")
		return
	}

	utils.Success(c, gin.H{"is_active": isActive})
}

func (h *MedicinesHandler) DeleteMedicine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}
	medicineID := c.Param("id")

	if err := h.medicines.DeleteMedicine(c.Request.Context(), medicineID, userID.(string)); err != nil {
		if err.Error() == "medicine not found" {
			utils.NotFound(c, "Medicine not found")
			return
		}
		utils.InternalError(c, "Failed to delete medicine")
		return
	}

	utils.Success(c, gin.H{"message": "Medicine deleted successfully"})
}
