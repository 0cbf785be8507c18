package handler

import (
	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type PharmaciesHandler struct {
	pharmacies *repository.PharmaciesRepo
}

func NewPharmaciesHandler(pharmacies *repository.PharmaciesRepo) *PharmaciesHandler {
	return &PharmaciesHandler{pharmacies: pharmacies}
}

func (h *PharmaciesHandler) ListPharmacies(c *gin.Context) {
	city := c.Query("city")
	district := c.Query("district")

	pharmacies, err := h.pharmacies.ListPharmacies(c.Request.Context(), city, district)
	if err != nil {
		utils.InternalError(c, "Failed to fetch pharmacies")
		return
	}

	utils.Success(c, gin.H{"pharmacies": pharmacies})
}

// CreatePharmacy is an admin-only directory maintenance endpoint
func (h *PharmaciesHandler) CreatePharmacy(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	userRepo := repository.GetUsersRepo(utils.MongoClient)
	user, err := userRepo.FindUser(c.Request.Context(), userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if !user.IsAdmin {
		utils.Forbidden(c, "Admin access required")
		return
	}

	var pharmacy model.Pharmacy
	if err := c.ShouldBindJSON(&pharmacy); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}

	if err := h.pharmacies.CreatePharmacy(c.Request.Context(), &pharmacy); err != nil {
		utils.InternalError(c, "Failed to create pharmacy")
		return
	}

	utils.Created(c, gin.H{"pharmacy": pharmacy})
}
