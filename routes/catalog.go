package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/catalog"
	couponControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/coupon"
	settingsControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/settings"
)

// SetupCatalogRoutes registers the public browse endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", catalogControllers.ListProductsHandler(db))
		products.GET("/:id", catalogControllers.GetProductHandler(db))
	}

	categories := r.Group("/categories")
	{
		categories.GET("", catalogControllers.ListCategoriesHandler(db))
		categories.GET("/:slug", catalogControllers.GetCategoryHandler(db))
	}

	coupons := r.Group("/coupons")
	{
		coupons.GET("", couponControllers.ListActiveHandler(db))
		coupons.POST("/validate", couponControllers.ValidateHandler(db))
	}

	r.GET("/settings/public", settingsControllers.GetPublicSettingsHandler(db))
}
