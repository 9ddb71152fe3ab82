package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RahulRavikumar0574/raw-era-backend/models"
)

// ListCategories returns the active top-level categories with their active
// children, both ordered by display order then name.
func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Where("is_active = ? AND parent_id IS NULL", true).
		Preload("Children", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("\"order\" ASC").Order("name ASC")
		}).
		Order("\"order\" ASC").
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

// GetCategoryBySlug returns one active category with children and parent.
func GetCategoryBySlug(db *gorm.DB, slug string) (models.Category, error) {
	var category models.Category
	err := db.Where("slug = ? AND is_active = ?", slug, true).
		Preload("Children", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("\"order\" ASC").Order("name ASC")
		}).
		Preload("Parent").
		First(&category).Error
	return category, err
}

// GET /categories
func ListCategoriesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := ListCategories(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// GET /categories/:slug
func GetCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := GetCategoryBySlug(db, c.Param("slug"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"category": category})
	}
}
