package models

import "time"

// Admin is an appointed administrator. The owner is not stored here; it is
// fixed by configuration and always passes admin checks.
type Admin struct {
	ID         uint  `gorm:"primarykey"`
	TelegramID int64 `gorm:"uniqueIndex;not null"`
	AddedBy    int64
	CreatedAt  time.Time
}

// AuthorizedUser is a platform identity allowed to use the shop at all.
type AuthorizedUser struct {
	ID         uint  `gorm:"primarykey"`
	TelegramID int64 `gorm:"uniqueIndex;not null"`
	AddedBy    int64
	CreatedAt  time.Time
}
