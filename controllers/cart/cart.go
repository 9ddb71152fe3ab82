package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RahulRavikumar0574/raw-era-backend/middleware"
	"github.com/RahulRavikumar0574/raw-era-backend/models"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrProductNotFound  = errors.New("product not found")
)

type AddItemInput struct {
	ProductID uint  `json:"product_id" binding:"required"`
	VariantID *uint `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateItemInput struct {
	ProductID uint  `json:"product_id" binding:"required"`
	VariantID *uint `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

type RemoveItemInput struct {
	ProductID uint  `json:"product_id" binding:"required"`
	VariantID *uint `json:"variant_id"`
}

// -------- Core Logic --------

// GetCart lists the user's cart rows with their product and variant.
func GetCart(db *gorm.DB, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Where("user_id = ?", userID).
		Preload("Product").
		Preload("Product.Images").
		Preload("Variant").
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// AddItem merges quantity into the row addressed by (user, product, variant).
//
// Rows with a variant sit under a composite unique index, so the merge is a
// single ON CONFLICT upsert and cannot lose a concurrent increment. Rows
// without a variant are outside the index (NULLs are distinct) and take an
// existence scan + increment inside one transaction instead.
func AddItem(db *gorm.DB, userID string, in AddItemInput) (models.CartItem, error) {
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var product models.Product
	if err := db.First(&product, "id = ?", in.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, ErrProductNotFound
		}
		return models.CartItem{}, err
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: in.ProductID,
		VariantID: in.VariantID,
		Quantity:  quantity,
	}

	if in.VariantID == nil {
		err := db.Transaction(func(tx *gorm.DB) error {
			var existing models.CartItem
			lookupErr := tx.Where("user_id = ? AND product_id = ? AND variant_id IS NULL", userID, in.ProductID).
				First(&existing).Error
			if lookupErr == nil {
				if err := tx.Model(&existing).
					Update("quantity", gorm.Expr("quantity + ?", quantity)).Error; err != nil {
					return err
				}
				return tx.First(&item, existing.ID).Error
			}
			if !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
				return lookupErr
			}
			return tx.Create(&item).Error
		})
		return item, err
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}, {Name: "variant_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + excluded.quantity"),
		}),
	}).Create(&item).Error
	if err != nil {
		return item, err
	}

	// Re-read so a merged row reports the summed quantity, not the input.
	err = db.Where("user_id = ? AND product_id = ? AND variant_id = ?", userID, in.ProductID, *in.VariantID).
		First(&item).Error
	return item, err
}

// UpdateItem sets an absolute quantity. A requested quantity of zero or less
// degrades to removal. A missing target row is NotFound.
func UpdateItem(db *gorm.DB, userID string, in UpdateItemInput) (models.CartItem, error) {
	if in.Quantity <= 0 {
		return models.CartItem{}, RemoveItem(db, userID, RemoveItemInput{ProductID: in.ProductID, VariantID: in.VariantID})
	}

	var item models.CartItem
	err := db.Transaction(func(tx *gorm.DB) error {
		result := scopeItem(tx, userID, in.ProductID, in.VariantID).
			Model(&models.CartItem{}).
			Update("quantity", in.Quantity)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCartItemNotFound
		}
		return scopeItem(tx, userID, in.ProductID, in.VariantID).First(&item).Error
	})
	return item, err
}

// RemoveItem deletes the addressed row.
func RemoveItem(db *gorm.DB, userID string, in RemoveItemInput) error {
	result := scopeItem(db, userID, in.ProductID, in.VariantID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearCart deletes every row for the user.
func ClearCart(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

func scopeItem(db *gorm.DB, userID string, productID uint, variantID *uint) *gorm.DB {
	if variantID == nil {
		return db.Where("user_id = ? AND product_id = ? AND variant_id IS NULL", userID, productID)
	}
	return db.Where("user_id = ? AND product_id = ? AND variant_id = ?", userID, productID, *variantID)
}

// -------- Handlers --------

// GET /cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		items, err := GetCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// POST /cart
func AddItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var in AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		item, err := AddItem(db, userID, in)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": item})
	}
}

// PUT /cart
func UpdateItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var in UpdateItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		item, err := UpdateItem(db, userID, in)
		if err != nil {
			respondCartError(c, err)
			return
		}
		if in.Quantity <= 0 {
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

// DELETE /cart
func RemoveItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var in RemoveItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := RemoveItem(db, userID, in); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /cart/clear
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := ClearCart(db, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCartItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	case errors.Is(err, ErrProductNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
	}
}
