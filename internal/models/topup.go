package models

import "time"

const (
	TopupStatusPending  = "pending"
	TopupStatusApproved = "approved"
)

// Topup is a balance top-up request backed by an externally verified payment
// proof. It is created when the proof is submitted, not when the amount is
// declared, and moves from pending to approved exactly once.
type Topup struct {
	ID         uint      `gorm:"primarykey"`
	UserID     uint      `gorm:"index;not null"`
	Amount     int64     `gorm:"not null"`
	Status     string    `gorm:"type:varchar(20);default:'pending';index"`
	ApprovedBy int64     // platform ID of the approving admin
	ApprovedAt *time.Time
	CreatedAt  time.Time `gorm:"precision:3"`
}
