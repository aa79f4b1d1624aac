package models

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

type TransactionType string

const (
	TransactionTypeOrderDebit  TransactionType = "order_debit"
	TransactionTypeOrderRefund TransactionType = "order_refund"
	TransactionTypeTopupCredit TransactionType = "topup_credit"
	TransactionTypeAdminDeduct TransactionType = "admin_deduct"
)

// Transaction is one journal entry of the balance ledger. Every balance
// mutation writes exactly one entry in the same store transaction, so the
// sum of amounts always reconciles against the user's balance.
type Transaction struct {
	ID            uint            `gorm:"primarykey"`
	CreatedAt     time.Time       `gorm:"precision:3"` // Millisecond precision
	UserID        uint            `gorm:"index;not null"`
	Amount        int64           `gorm:"not null"` // signed, MMK
	BalanceBefore int64           `gorm:"not null"`
	BalanceAfter  int64           `gorm:"not null"`
	Reference     string          `gorm:"type:varchar(64)"` // order ID, topup ID
	Operator      int64           `gorm:"index;default:0"`  // admin platform ID, 0 for the user themself
	Type          TransactionType `gorm:"type:varchar(32);index;not null"`
	Hash          string          `gorm:"type:varchar(64);default:''"` // HMAC SHA256
}

// GenerateHash generates a tamper-proof hash for the transaction
func (t *Transaction) GenerateHash(secret string) string {
	data := fmt.Sprintf("%d|%d|%d|%d|%d|%s|%s|%d",
		t.UserID, t.CreatedAt.UnixNano(), t.Amount, t.BalanceBefore, t.BalanceAfter,
		t.Reference, t.Type, t.Operator)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
