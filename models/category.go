package models

type Category struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Order       int        `gorm:"default:0" json:"order"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	ParentID    *uint      `gorm:"index" json:"parent_id"`
	Parent      *Category  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children    []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}
