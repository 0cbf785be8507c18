package handler

import (
	"log"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func ChangePasswordHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format")
		return
	}

	userService := usecase.NewUserService(repository.GetUsersRepo(utils.MongoClient))

	err := userService.ChangePassword(c.Request.Context(), userID.(string), req.OldPassword, req.NewPassword)
	if err != nil {
		switch err.Error() {
		case "user not found":
			utils.NotFound(c, "User not found")
		case "current password is incorrect":
			utils.Unauthorized(c, "Current password is incorrect")
		case "new password must be different from the current password":
			utils.BadRequest(c, "New password cannot be the same as current")
		default:
			log.Printf("Error updating password for user %s: %v", userID, err)
			utils.BadRequest(c, err.Error())
		}
		return
	}

	// Force re-login everywhere else
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	if err := sessionRepo.EndAllUserSessions(userID.(string)); err != nil {
		log.Printf("Warning: failed to end sessions after password change for %s: %v", userID, err)
	}

	utils.Success(c, gin.H{"message": "Password updated successfully"})
}
