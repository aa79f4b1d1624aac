package models

import "time"

// PriceOverride maps a product code to an admin-set price that shadows the
// static default table. Removing the row restores the default. Overrides
// affect subsequent orders only; existing orders keep their snapshot.
type PriceOverride struct {
	ID        uint   `gorm:"primarykey"`
	Code      string `gorm:"uniqueIndex;type:varchar(32);not null"`
	Price     int64  `gorm:"not null"`
	SetBy     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
