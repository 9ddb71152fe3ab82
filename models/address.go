package models

import "time"

type Address struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string `gorm:"not null;index" json:"user_id"`
	Type       string `json:"type"` // e.g. "home", "work"
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company"`
	Address1   string `gorm:"not null" json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	// At most one address per user carries the flag; enforced in
	// controllers/address inside a single transaction.
	IsDefault bool      `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
