package models

import "time"

// CartItem is keyed by (user, product, variant). VariantID is nullable: in
// Postgres NULLs are distinct under a unique index, so variant-less rows are
// not constrained by it and get their own lookup path in controllers/cart.
type CartItem struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string `gorm:"not null;uniqueIndex:idx_cart_user_product_variant" json:"user_id"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_cart_user_product_variant" json:"product_id"`
	VariantID *uint  `gorm:"uniqueIndex:idx_cart_user_product_variant" json:"variant_id,omitempty"`
	Quantity  int    `gorm:"not null;default:1" json:"quantity"`

	Product Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Variant *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
