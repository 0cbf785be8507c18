package handler

import (
	"log"

	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// DeleteUserHandler removes the account along with its sessions and stats.
// Medicine and dose documents are left for the background retention job.
func DeleteUserHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	if err := sessionRepo.EndAllUserSessions(userID.(string)); err != nil {
		log.Printf("Error ending user sessions: %v", err)
	}

	statsRepo := repository.GetStatsRepo(utils.MongoClient)
	if err := statsRepo.DeleteStats(c.Request.Context(), userID.(string)); err != nil {
		log.Printf("Error deleting user stats: %v", err)
	}

	userRepo := repository.GetUsersRepo(utils.MongoClient)
	if err := userRepo.DeleteUser(c.Request.Context(), userID.(string)); err != nil {
		if err.Error() == "user not found" {
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("Failed to delete user %s: %v", userID, err)
		utils.InternalError(c, "Failed to delete user")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{"message": "User deleted successfully"})
}
