package model

import (
	"time"
)

// SlotModel is the GORM-specific struct for the 'storage_slots' table.
// Each row holds the whole JSON document of one store.
type SlotModel struct {
	Key       string `gorm:"type:varchar(255);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SlotModel) TableName() string {
	return "storage_slots"
}
