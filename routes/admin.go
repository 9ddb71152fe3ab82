package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/catalog"
	couponControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/coupon"
	orderControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/order"
	settingsControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/settings"
	"github.com/RahulRavikumar0574/raw-era-backend/middleware"
)

// SetupAdminRoutes registers the API-key-protected admin surface.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/coupons/admin", middleware.ValidateAPIKey, couponControllers.ListAllHandler(db))

	settings := r.Group("/settings")
	settings.Use(middleware.ValidateAPIKey)
	{
		settings.GET("/:key", settingsControllers.GetSettingHandler(db))
		settings.PUT("/:key", settingsControllers.UpdateSettingHandler(db))
	}

	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.GET("/products/export-excel", catalogControllers.ExportProductsToExcel(db))
	}

	// Real-time new-order feed for the admin dashboard.
	r.GET("/orders/ws", middleware.ValidateAPIKey, orderControllers.OrderFeedHandler)
}
