package reviewControllers

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

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotReviewOwner = errors.New("review belongs to another user")
)

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// -------- Core Logic --------

// ListForProduct returns a product's reviews, newest first.
func ListForProduct(db *gorm.DB, productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("product_id = ?", productID).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// UpsertReview writes the single review a user holds for a product, then
// recomputes the product's aggregates in the same transaction.
func UpsertReview(db *gorm.DB, userID string, productID uint, in ReviewInput) (models.Review, error) {
	review := models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    in.Rating,
		Title:     in.Title,
		Comment:   in.Comment,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"rating":  in.Rating,
				"title":   in.Title,
				"comment": in.Comment,
			}),
		}).Create(&review).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? AND product_id = ?", userID, productID).
			First(&review).Error; err != nil {
			return err
		}
		return recomputeProductRating(tx, productID)
	})
	return review, err
}

// DeleteReview removes the user's review for a product. The ownership check
// is explicit even though the lookup is already scoped by user: the contract
// is Forbidden for someone else's review, NotFound for a missing one.
func DeleteReview(db *gorm.DB, userID string, productID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.Where("user_id = ? AND product_id = ?", userID, productID).
			First(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReviewNotFound
			}
			return err
		}
		if review.UserID != userID {
			return ErrNotReviewOwner
		}
		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return recomputeProductRating(tx, productID)
	})
}

// recomputeProductRating rebuilds rating and review_count from a full
// aggregate query. Deliberately not incremental: a rounded running average
// drifts, a full scan cannot.
func recomputeProductRating(tx *gorm.DB, productID uint) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&agg).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"rating":       agg.Avg,
			"review_count": agg.Count,
		}).Error
}

// -------- Handlers --------

// GET /reviews/product/:productId
func ListForProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseProductID(c)
		if !ok {
			return
		}
		reviews, err := ListForProduct(db, productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews})
	}
}

// POST /reviews/product/:productId
func UpsertReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, ok := parseProductID(c)
		if !ok {
			return
		}
		var in ReviewInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		review, err := UpsertReview(db, userID, productID, in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"review": review})
	}
}

// DELETE /reviews/product/:productId
func DeleteReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, ok := parseProductID(c)
		if !ok {
			return
		}
		if err := DeleteReview(db, userID, productID); err != nil {
			switch {
			case errors.Is(err, ErrReviewNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			case errors.Is(err, ErrNotReviewOwner):
				c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func parseProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId must be numeric"})
		return 0, false
	}
	return uint(id), true
}
