package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RahulRavikumar0574/raw-era-backend/middleware"
	"github.com/RahulRavikumar0574/raw-era-backend/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyOrder    = errors.New("order has no items")
)

type OrderItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	VariantID *uint   `json:"variant_id"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price"`
}

type TotalsInput struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type CreateOrderInput struct {
	Items           []OrderItemInput        `json:"items" binding:"required"`
	ShippingAddress models.ShippingSnapshot `json:"shipping_address" binding:"required"`
	Totals          TotalsInput             `json:"totals" binding:"required"`
	CouponCode      string                  `json:"coupon_code"`
	Notes           string                  `json:"notes"`
}

// generateOrderNumber keeps the number human-readable (literal prefix plus
// millisecond timestamp) while the uuid fragment rules out collisions for
// orders landing in the same millisecond.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), strings.ToUpper(uuid.NewString()[:8]))
}

// -------- Core Logic --------

// CreateCodOrder persists a cash-on-delivery order as a fixed snapshot:
// the shipping address is denormalized into the order row, each item keeps
// the unit price the client submitted, and the totals are stored verbatim.
// When the payload names a coupon, its used_count moves atomically in the
// same transaction.
func CreateCodOrder(db *gorm.DB, userID string, in CreateOrderInput) (models.Order, error) {
	if len(in.Items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order := models.Order{
		OrderNumber:     generateOrderNumber(),
		UserID:          userID,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		PaymentMethod:   "COD",
		Subtotal:        in.Totals.Subtotal,
		Tax:             in.Totals.Tax,
		Shipping:        in.Totals.Shipping,
		Discount:        in.Totals.Discount,
		Total:           in.Totals.Total,
		CouponCode:      strings.ToUpper(in.CouponCode),
		Notes:           in.Notes,
		ShippingAddress: in.ShippingAddress,
		Items:           items,
		CreatedAt:       time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if order.CouponCode != "" {
			if err := tx.Model(&models.Coupon{}).
				Where("code = ?", order.CouponCode).
				Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	broadcastNewOrder(order)
	return order, nil
}

// ListUserOrders returns the user's orders, newest first.
func ListUserOrders(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// GetOrder returns a single order scoped to its owner.
func GetOrder(db *gorm.DB, userID string, id uint) (models.Order, error) {
	var order models.Order
	err := db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Items").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order, ErrOrderNotFound
	}
	return order, err
}

// -------- Handlers --------

// POST /orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var in CreateOrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		order, err := CreateCodOrder(db, userID, in)
		if err != nil {
			if errors.Is(err, ErrEmptyOrder) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Order has no items"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

// GET /orders
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orders, err := ListUserOrders(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GET /orders/:id
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id must be numeric"})
			return
		}
		order, err := GetOrder(db, userID, uint(id))
		if err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}
