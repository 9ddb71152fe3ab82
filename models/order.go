package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"

	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// ShippingSnapshot is the denormalized copy of the shipping address an order
// carries. Orders never reference the addresses table; editing an address
// after checkout must not rewrite history.
type ShippingSnapshot struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type Order struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID      string `gorm:"not null;index" json:"user_id"`

	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"payment_status"`
	PaymentMethod string        `json:"payment_method"` // e.g. "COD"

	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`

	CouponCode string `json:"coupon_code,omitempty"`
	Notes      string `json:"notes,omitempty"`

	ShippingAddress ShippingSnapshot `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
}

// OrderItem is a fixed snapshot: Price is the unit price at submission time,
// never re-read from the product.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	VariantID *uint   `json:"variant_id,omitempty"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}
