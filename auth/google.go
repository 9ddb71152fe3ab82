package auth

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"github.com/RahulRavikumar0574/raw-era-backend/models"
)

type googleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// POST /auth/google
//
// Verifies a Google ID token, fetches or creates the matching user and
// issues the same session pair as password login.
func GoogleLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req googleLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		clientID := os.Getenv("GOOGLE_CLIENT_ID")
		if clientID == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Google login not configured"})
			return
		}

		payload, err := idtoken.Validate(c.Request.Context(), req.IDToken, clientID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
			return
		}

		email, _ := payload.Claims["email"].(string)
		givenName, _ := payload.Claims["given_name"].(string)
		familyName, _ := payload.Claims["family_name"].(string)
		picture, _ := payload.Claims["picture"].(string)
		googleID := payload.Subject

		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token carries no email"})
			return
		}

		var user models.User
		err = db.Where("google_id = ?", googleID).Or("email = ?", email).First(&user).Error
		switch {
		case err == nil:
			// Existing account: refresh profile fields and link the Google id.
			updates := models.User{FirstName: givenName, LastName: familyName, Picture: picture}
			if user.GoogleID == nil {
				updates.GoogleID = &googleID
			}
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		case err == gorm.ErrRecordNotFound:
			user = models.User{
				ID:        uuid.NewString(),
				Email:     email,
				FirstName: givenName,
				LastName:  familyName,
				Picture:   picture,
				Provider:  "google",
				GoogleID:  &googleID,
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		issueSession(c, user)
	}
}
