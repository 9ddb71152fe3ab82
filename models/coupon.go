package models

import "time"

type CouponType string

const (
	CouponTypePercentage   CouponType = "PERCENTAGE"
	CouponTypeFixedAmount  CouponType = "FIXED_AMOUNT"
	CouponTypeFreeShipping CouponType = "FREE_SHIPPING"
)

type Coupon struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string     `gorm:"uniqueIndex;not null" json:"code"` // stored uppercase
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        CouponType `gorm:"type:VARCHAR(20);not null" json:"type"`
	Value       float64    `gorm:"not null" json:"value"`

	MinOrderAmount *float64 `json:"min_order_amount,omitempty"`
	MaxDiscount    *float64 `json:"max_discount,omitempty"` // PERCENTAGE cap only

	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`

	UsageLimit *int `json:"usage_limit,omitempty"`
	UsedCount  int  `gorm:"default:0" json:"used_count"`

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
