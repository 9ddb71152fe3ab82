package models

import (
	"time"

	"gorm.io/datatypes"
)

type Setting struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string         `gorm:"uniqueIndex;not null" json:"key"`
	Value     datatypes.JSON `json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
