package handler

import (
	"main/model"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"main/middleware"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

func LoginHandler(c *gin.Context) {
	var loginReq model.LoginRequest

	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userService := usecase.NewUserService(repository.GetUsersRepo(utils.MongoClient))

	user, err := userService.FindUserByUsername(c.Request.Context(), loginReq.Username)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.Unauthorized(c, "Invalid username")
		return
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.Unauthorized(c, "Invalid username")
		return
	}

	if !services.ComparePasswords(user.Password, loginReq.Password) {
		utils.TrackAuthAttempt("failure", "login")
		utils.Unauthorized(c, "Incorrect password")
		return
	}

	// Accounts with 2FA enabled must supply a valid code with the login
	if user.TwoFactorEnabled {
		if loginReq.TwoFactorCode == "" {
			utils.Unauthorized(c, "Two-factor code required")
			return
		}
		if !totp.Validate(loginReq.TwoFactorCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "2fa")
			utils.Unauthorized(c, "Invalid two-factor code")
			return
		}
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	if err := middleware.CreateSession(c, user.UserID, sessionRepo); err != nil {
		utils.InternalError(c, "Failed to create session")
		return
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, gin.H{
		"message": "Login successful",
		"token":   token,
		"refresh": refreshToken,
	})
}
