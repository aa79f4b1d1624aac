package services

import (
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied     = errors.New("permission denied")
	ErrUserNotFound         = errors.New("user not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrTopupNotFound        = errors.New("no matching pending topup")
	ErrOrderAlreadyResolved = errors.New("order already resolved")
	ErrTopupAlreadyApproved = errors.New("topup already approved")
	ErrBannedAccount        = errors.New("game account is banned")
	ErrPriceUnknown         = errors.New("unknown product code")
	ErrOverrideNotFound     = errors.New("no price override for this code")
	ErrNoPendingIntent      = errors.New("no declared topup amount, declare one first")
	ErrAwaitingApproval     = errors.New("account is awaiting admin approval")
	ErrFeatureNotFound      = errors.New("unknown maintenance feature")

	// ErrStoreConflict means a concurrent writer got there first. Operations
	// retry it internally a bounded number of times before surfacing it.
	ErrStoreConflict = errors.New("ledger store conflict, please retry")
)

// ValidationError reports a malformed identifier or amount.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientBalanceError carries the shortfall so the caller can tell the
// user how much is missing.
type InsufficientBalanceError struct {
	Required  int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: need %d, have %d", e.Required, e.Available)
}

func (e *InsufficientBalanceError) Shortfall() int64 {
	return e.Required - e.Available
}

// MaintenanceError rejects an operation whose feature class is disabled.
type MaintenanceError struct {
	Feature Feature
}

func (e *MaintenanceError) Error() string {
	return fmt.Sprintf("feature %q is under maintenance", string(e.Feature))
}
