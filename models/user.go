package models

import "time"

type User struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	Email     string  `gorm:"unique;not null" json:"email"`
	Password  *string `json:"-"` // nil for OAuth-only accounts
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     string  `json:"phone"`
	Picture   string  `json:"picture"`
	Provider  string  `json:"provider"` // "local" or "google"
	GoogleID  *string `gorm:"uniqueIndex" json:"-"`

	Addresses []Address      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	CartItems []CartItem     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Wishlist  []WishlistItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews   []Review       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order        `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
