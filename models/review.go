package models

import "time"

type Review struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string `gorm:"not null;uniqueIndex:idx_review_user_product" json:"user_id"`
	ProductID  uint   `gorm:"not null;uniqueIndex:idx_review_user_product" json:"product_id"`
	Rating     int    `gorm:"not null" json:"rating"` // 1..5
	Title      string `json:"title"`
	Comment    string `json:"comment"`
	IsVerified bool   `gorm:"default:false" json:"is_verified"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
