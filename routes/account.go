package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/address"
	cartControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/cart"
	orderControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/order"
	reviewControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/review"
	wishlistControllers "github.com/RahulRavikumar0574/raw-era-backend/controllers/wishlist"
	"github.com/RahulRavikumar0574/raw-era-backend/middleware"
)

// SetupAccountRoutes registers the JWT-protected user-owned resources.
func SetupAccountRoutes(r *gin.Engine, db *gorm.DB) {
	addresses := r.Group("/addresses")
	addresses.Use(middleware.ValidateToken)
	{
		addresses.GET("", addressControllers.ListAddressesHandler(db))
		addresses.POST("", addressControllers.CreateAddressHandler(db))
		addresses.PUT("/:id", addressControllers.UpdateAddressHandler(db))
		addresses.DELETE("/:id", addressControllers.DeleteAddressHandler(db))
		addresses.POST("/:id/default", addressControllers.SetDefaultAddressHandler(db))
	}

	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCartHandler(db))
		cart.POST("", cartControllers.AddItemHandler(db))
		cart.PUT("", cartControllers.UpdateItemHandler(db))
		cart.DELETE("", cartControllers.RemoveItemHandler(db))
		cart.DELETE("/clear", cartControllers.ClearCartHandler(db))
	}

	wishlist := r.Group("/wishlist")
	wishlist.Use(middleware.ValidateToken)
	{
		wishlist.GET("", wishlistControllers.ListWishlistHandler(db))
		wishlist.POST("", wishlistControllers.AddToWishlistHandler(db))
		wishlist.DELETE("/:productId", wishlistControllers.RemoveFromWishlistHandler(db))
	}

	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("", orderControllers.CreateOrderHandler(db))
		orders.GET("", orderControllers.ListOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderHandler(db))
	}

	// Reading reviews is public; writing requires a session.
	reviews := r.Group("/reviews/product")
	{
		reviews.GET("/:productId", reviewControllers.ListForProductHandler(db))
		reviews.POST("/:productId", middleware.ValidateToken, reviewControllers.UpsertReviewHandler(db))
		reviews.DELETE("/:productId", middleware.ValidateToken, reviewControllers.DeleteReviewHandler(db))
	}
}
