package models

import "time"

// User is a shop customer, created on first interaction and never deleted.
// Balance is in MMK (smallest unit) and must never go negative; every
// mutation bumps Version so concurrent writers can detect each other.
type User struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	TelegramID int64  `gorm:"uniqueIndex;not null"`
	Name       string `gorm:"type:varchar(255)"`
	Username   string `gorm:"type:varchar(255)"`
	Balance    int64  `gorm:"not null;default:0"`
	Version    int    `gorm:"default:1"`

	// Restricted is set when the user submits payment proof and cleared
	// only when an admin approves a top-up for them. While set, orders,
	// new declarations, and further proofs are all rejected.
	Restricted bool `gorm:"default:false"`

	// Declared top-up amount awaiting a payment proof. Zero means no
	// intent. Replaced silently by a new declaration, consumed when the
	// proof arrives.
	PendingIntentAmount int64 `gorm:"default:0"`
	PendingIntentAt     *time.Time

	Orders []Order `gorm:"foreignKey:UserID"`
	Topups []Topup `gorm:"foreignKey:UserID"`
}
