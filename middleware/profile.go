package middleware

import (
	"net/http"

	"main/repository"

	"github.com/gin-gonic/gin"
)

// ProfileMiddleware lets a request act on behalf of a family profile. When
// X-Profile-ID is present the profile must belong to the authenticated
// account; the profile id then replaces user_id for data scoping, with the
// account id preserved under account_id.
func ProfileMiddleware(profilesRepo *repository.ProfilesRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := c.GetHeader("X-Profile-ID")
		if profileID == "" {
			c.Next()
			return
		}

		accountID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		profile, err := profilesRepo.GetProfileByID(c.Request.Context(), profileID, accountID.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify profile"})
			c.Abort()
			return
		}
		if profile == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Profile does not belong to this account"})
			c.Abort()
			return
		}

		c.Set("account_id", accountID)
		c.Set("user_id", profile.ProfileID)
		c.Next()
	}
}
