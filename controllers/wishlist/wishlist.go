package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RahulRavikumar0574/raw-era-backend/middleware"
	"github.com/RahulRavikumar0574/raw-era-backend/models"
)

var ErrWishlistItemNotFound = errors.New("wishlist item not found")

type addInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// -------- Core Logic --------

func ListWishlist(db *gorm.DB, userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := db.Where("user_id = ?", userID).
		Preload("Product").
		Preload("Product.Images").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// AddToWishlist is idempotent: adding a product twice keeps one row.
func AddToWishlist(db *gorm.DB, userID string, productID uint) (models.WishlistItem, error) {
	item := models.WishlistItem{UserID: userID, ProductID: productID}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(&item).Error
	if err != nil {
		return item, err
	}
	err = db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	return item, err
}

func RemoveFromWishlist(db *gorm.DB, userID string, productID uint) error {
	result := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWishlistItemNotFound
	}
	return nil
}

// -------- Handlers --------

// GET /wishlist
func ListWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		items, err := ListWishlist(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// POST /wishlist
func AddToWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var in addInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		item, err := AddToWishlist(db, userID, in.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": item})
	}
}

// DELETE /wishlist/:productId
func RemoveFromWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId must be numeric"})
			return
		}
		if err := RemoveFromWishlist(db, userID, uint(productID)); err != nil {
			if errors.Is(err, ErrWishlistItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
