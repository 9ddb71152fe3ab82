package couponControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RahulRavikumar0574/raw-era-backend/models"
)

var (
	ErrCouponNotFound    = errors.New("coupon not found or expired")
	ErrMinOrderNotMet    = errors.New("minimum order amount not met")
	ErrUsageLimitReached = errors.New("coupon usage limit reached")
)

// Validation is a coupon plus the discount it yields for a given amount.
type Validation struct {
	models.Coupon
	CalculatedDiscount float64 `json:"calculated_discount"`
}

type validateRequest struct {
	Code   string  `json:"code" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// -------- Core Logic --------

// ListActive returns coupons usable right now.
func ListActive(db *gorm.DB, now time.Time) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := db.Where("is_active = ? AND valid_from <= ? AND valid_until >= ?", true, now, now).
		Find(&coupons).Error
	return coupons, err
}

// ListAll returns every coupon, soonest-expiring last.
func ListAll(db *gorm.DB) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := db.Order("valid_until DESC").Find(&coupons).Error
	return coupons, err
}

// Validate checks a code against an order amount and computes the discount.
// It never mutates the coupon; used_count moves only when an order is
// finalized (see controllers/order).
func Validate(db *gorm.DB, code string, amount float64) (Validation, error) {
	return ValidateAt(db, code, amount, time.Now())
}

// ValidateAt is Validate with an explicit clock.
func ValidateAt(db *gorm.DB, code string, amount float64, now time.Time) (Validation, error) {
	var coupon models.Coupon
	err := db.Where("code = ? AND is_active = ? AND valid_from <= ? AND valid_until >= ?",
		strings.ToUpper(code), true, now, now).
		First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Validation{}, ErrCouponNotFound
		}
		return Validation{}, err
	}

	if coupon.MinOrderAmount != nil && amount < *coupon.MinOrderAmount {
		return Validation{}, fmt.Errorf("%w: minimum order amount of %.2f required", ErrMinOrderNotMet, *coupon.MinOrderAmount)
	}
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return Validation{}, ErrUsageLimitReached
	}

	return Validation{Coupon: coupon, CalculatedDiscount: Discount(coupon, amount)}, nil
}

// Discount computes the amount a coupon takes off an order total.
// PERCENTAGE is capped by MaxDiscount when set; FIXED_AMOUNT is capped at
// the order amount so the total cannot go negative; FREE_SHIPPING yields 0
// here — the shipping waiver is applied by the totals flow.
func Discount(coupon models.Coupon, amount float64) float64 {
	switch coupon.Type {
	case models.CouponTypePercentage:
		discount := amount * coupon.Value / 100
		if coupon.MaxDiscount != nil && discount > *coupon.MaxDiscount {
			discount = *coupon.MaxDiscount
		}
		return discount
	case models.CouponTypeFixedAmount:
		if coupon.Value > amount {
			return amount
		}
		return coupon.Value
	case models.CouponTypeFreeShipping:
		return 0
	default:
		return 0
	}
}

// -------- Handlers --------

// GET /coupons
func ListActiveHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		coupons, err := ListActive(db, time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"coupons": coupons})
	}
}

// GET /coupons/admin
func ListAllHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		coupons, err := ListAll(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"coupons": coupons})
	}
}

// POST /coupons/validate
func ValidateHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		result, err := Validate(db, req.Code, req.Amount)
		if err != nil {
			respondCouponError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"coupon": result})
	}
}

func respondCouponError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found or expired"})
	case errors.Is(err, ErrMinOrderNotMet), errors.Is(err, ErrUsageLimitReached):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate coupon"})
	}
}
