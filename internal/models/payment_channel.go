package models

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentChannel describes where users send money before submitting proof,
// e.g. a KBZ Pay or Wave Money account. Meta holds channel extras such as
// the platform file ID of a QR code image.
type PaymentChannel struct {
	ID         uint           `gorm:"primarykey"`
	UUID       string         `gorm:"uniqueIndex;type:varchar(36);not null"`
	Code       string         `gorm:"uniqueIndex;type:varchar(20);not null"` // e.g. "kpay", "wave"
	Number     string         `gorm:"type:varchar(20);not null"`
	HolderName string         `gorm:"type:varchar(100);not null"`
	Meta       datatypes.JSON `gorm:"type:json"`
	Enabled    bool           `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
