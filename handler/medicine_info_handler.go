package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// MedicineInfoHandler resolves a product barcode against the reference table
func MedicineInfoHandler(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		utils.BadRequest(c, "Barcode is required")
		return
	}

	info, ok := usecase.LookupMedicineByBarcode(barcode)
	if !ok {
		utils.NotFound(c, "No medicine found for this barcode")
		return
	}

	utils.Success(c, gin.H{"medicine": info})
}
