package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	ComparePrice float64 `json:"compare_price"`
	SKU          string  `gorm:"uniqueIndex" json:"sku"`
	Brand        string  `json:"brand"`
	Stock        int     `json:"stock"`
	CategoryID   *uint   `gorm:"index" json:"category_id"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`
	IsFeatured   bool    `gorm:"default:false" json:"is_featured"`
	IsNew        bool    `gorm:"default:false" json:"is_new"`

	// Derived from reviews, recomputed in full on every review mutation.
	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	Category       *Category              `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images         []ProductImage         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Variants       []ProductVariant       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	Specifications []ProductSpecification `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"specifications,omitempty"`
	Reviews        []Review               `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `gorm:"default:false" json:"is_primary"`
	Order     int    `gorm:"default:0" json:"order"`
}

type VariantType string

const (
	VariantTypeSize     VariantType = "SIZE"
	VariantTypeColor    VariantType = "COLOR"
	VariantTypeMaterial VariantType = "MATERIAL"
	VariantTypeStyle    VariantType = "STYLE"
)

type ProductVariant struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint        `gorm:"index;not null" json:"product_id"`
	Name      string      `json:"name"`
	Type      VariantType `gorm:"type:VARCHAR(20)" json:"type"`
	Value     string      `json:"value"`
	Price     *float64    `json:"price,omitempty"` // overrides product price when set
	Stock     int         `json:"stock"`
	SKU       string      `json:"sku"`
}

type ProductSpecification struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	Name      string `json:"name"`
	Value     string `json:"value"`
}
