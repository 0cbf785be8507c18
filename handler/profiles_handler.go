package handler

import (
	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ProfilesHandler struct {
	profiles *repository.ProfilesRepo
}

func NewProfilesHandler(profiles *repository.ProfilesRepo) *ProfilesHandler {
	return &ProfilesHandler{profiles: profiles}
}

// accountID resolves the owning account even when the request is scoped to
// a family profile via X-Profile-ID.
func accountID(c *gin.Context) (string, bool) {
	if id, exists := c.Get("account_id"); exists {
		return id.(string), true
	}
	if id, exists := c.Get("user_id"); exists {
		return id.(string), true
	}
	return "", false
}

func (h *ProfilesHandler) CreateProfile(c *gin.Context) {
	ownerID, ok := accountID(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var profile model.FamilyProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}
	profile.UserID = ownerID

	if err := h.profiles.CreateProfile(c.Request.Context(), &profile); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"profile": profile})
}

func (h *ProfilesHandler) ListProfiles(c *gin.Context) {
	ownerID, ok := accountID(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	profiles, err := h.profiles.GetUserProfiles(c.Request.Context(), ownerID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch profiles")
		return
	}

	utils.Success(c, gin.H{"profiles": profiles})
}

func (h *ProfilesHandler) UpdateProfile(c *gin.Context) {
	ownerID, ok := accountID(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}
	profileID := c.Param("id")

	var updates model.FamilyProfile
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}

	if err := h.profiles.UpdateProfile(c.Request.Context(), profileID, ownerID, &updates); err != nil {
		if err.Error() == "profile not found" {
			utils.NotFound(c, "Profile not found")
			return
		}
		utils.InternalError(c, "Failed to update profile")
		return
	}

	utils.Success(c, gin.H{"message": "Profile updated successfully"})
}

func (h *ProfilesHandler) DeleteProfile(c *gin.Context) {
	ownerID, ok := accountID(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}
	profileID := c.Param("id")

	if err := h.profiles.DeleteProfile(c.Request.Context(), profileID, ownerID); err != nil {
		if err.Error() == "profile not found" {
			utils.NotFound(c, "Profile not found")
			return
		}
		utils.InternalError(c, "Failed to delete profile")
		return
	}

	utils.Success(c, gin.H{"message": "Profile deleted successfully"})
}
