package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// Order is a diamond purchase. Product code, price, game and server IDs are
// immutable once created; the price is snapshotted from the price book at
// creation time. Status moves from pending to exactly one terminal state.
type Order struct {
	OrderID     string `gorm:"primarykey;type:varchar(40)"`
	UserID      uint   `gorm:"index;not null"`
	GameID      string `gorm:"type:varchar(16);not null"`
	ServerID    string `gorm:"type:varchar(8);not null"`
	ProductCode string `gorm:"type:varchar(32);not null"`
	Price       int64  `gorm:"not null"`
	ChatID      int64  // conversation the order was placed from
	Status      string `gorm:"type:varchar(20);default:'pending';index"`
	ResolvedBy  int64  // platform ID of the resolving admin
	ResolvedAt  *time.Time
	CreatedAt   time.Time `gorm:"precision:3"`
}

// Terminal reports whether no further status transition is permitted.
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusConfirmed || o.Status == OrderStatusCancelled
}
