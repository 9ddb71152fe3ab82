package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RahulRavikumar0574/raw-era-backend/auth"
	"github.com/RahulRavikumar0574/raw-era-backend/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup(db))
		authGroup.POST("/login", auth.Login(db))
		authGroup.POST("/google", auth.GoogleLogin(db))
		authGroup.POST("/refresh", auth.Refresh(db))
		authGroup.POST("/logout", auth.Logout())

		authGroup.GET("/me", middleware.ValidateToken, auth.Me(db))
	}
}
