package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth endpoints
	SetupAuthRoutes(r, db)

	// Public catalog, coupons and settings
	SetupCatalogRoutes(r, db)

	// JWT-protected account surface: addresses, cart, wishlist, reviews, orders
	SetupAccountRoutes(r, db)

	// Payment gateway endpoints and webhooks
	SetupPaymentRoutes(r, db)

	// API-key-protected admin surface
	SetupAdminRoutes(r, db)
}
