package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/database"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/models"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/notifier"
)

// MinTopupAmount is the smallest accepted declaration, in MMK.
const MinTopupAmount = 1000

// casUserUpdate applies a version-guarded column update with no balance
// change. The caller must have loaded user inside the same transaction.
func casUserUpdate(tx *gorm.DB, user *models.User, updates map[string]interface{}) error {
	updates["version"] = user.Version + 1
	res := tx.Model(&models.User{}).
		Where("id = ? AND version = ?", user.ID, user.Version).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStoreConflict
	}
	user.Version++
	invalidateUserCache(user.ID)
	return nil
}

// DeclareTopup records how much the user intends to transfer. Declaring
// again before sending proof replaces the earlier intent.
func DeclareTopup(actorID int64, amount int64) (*models.User, error) {
	if err := checkMaintenance(FeatureTopups); err != nil {
		return nil, err
	}
	if amount < MinTopupAmount {
		return nil, &ValidationError{
			Field:  "amount",
			Reason: fmt.Sprintf("minimum topup is %d MMK", MinTopupAmount),
		}
	}

	var user *models.User
	err := withConflictRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var u models.User
			if err := tx.Where("telegram_id = ?", actorID).First(&u).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUserNotFound
				}
				return err
			}
			if u.Restricted {
				return ErrAwaitingApproval
			}

			now := time.Now()
			if err := casUserUpdate(tx, &u, map[string]interface{}{
				"pending_intent_amount": amount,
				"pending_intent_at":     now,
			}); err != nil {
				return err
			}
			u.PendingIntentAmount = amount
			u.PendingIntentAt = &now
			user = &u
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SubmitProof turns the declared intent into a pending topup awaiting admin
// approval and restricts the account until an admin resolves it. The
// restriction and the topup record are written in one store transaction.
func SubmitProof(actorID int64) (*models.Topup, error) {
	if err := checkMaintenance(FeatureTopups); err != nil {
		return nil, err
	}

	var topup *models.Topup
	err := withConflictRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var u models.User
			if err := tx.Where("telegram_id = ?", actorID).First(&u).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUserNotFound
				}
				return err
			}
			if u.Restricted {
				return ErrAwaitingApproval
			}
			if u.PendingIntentAmount <= 0 {
				return ErrNoPendingIntent
			}

			t := models.Topup{
				UserID:    u.ID,
				Amount:    u.PendingIntentAmount,
				Status:    models.TopupStatusPending,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
			if err := casUserUpdate(tx, &u, map[string]interface{}{
				"restricted":            true,
				"pending_intent_amount": 0,
				"pending_intent_at":     nil,
			}); err != nil {
				return err
			}
			topup = &t
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	notifyAdmins(0, fmt.Sprintf(
		"Topup proof from user %d for %d MMK (topup #%d). Approve with user ID and amount.",
		actorID, topup.Amount, topup.ID))
	return topup, nil
}

// ApproveTopup credits a pending topup and lifts the account restriction in
// one atomic step. When topupID is zero the newest pending topup matching
// (user, amount) is approved; a nonzero topupID selects that exact record.
// No credit is ever issued without a matching pending topup.
func ApproveTopup(actorID, userTelegramID, amount int64, topupID uint) (*models.Topup, error) {
	if !IsAdmin(actorID) {
		return nil, ErrPermissionDenied
	}
	if topupID == 0 && amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	var topup *models.Topup
	err := withConflictRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var u models.User
			if err := tx.Where("telegram_id = ?", userTelegramID).First(&u).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUserNotFound
				}
				return err
			}

			var t models.Topup
			if topupID != 0 {
				if err := tx.Where("id = ? AND user_id = ?", topupID, u.ID).First(&t).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrTopupNotFound
					}
					return err
				}
				if t.Status != models.TopupStatusPending {
					return ErrTopupAlreadyApproved
				}
			} else {
				err := tx.Where("user_id = ? AND amount = ? AND status = ?",
					u.ID, amount, models.TopupStatusPending).
					Order("created_at desc, id desc").
					First(&t).Error
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrTopupNotFound
					}
					return err
				}
			}

			now := time.Now()
			// Status-guarded flip: a concurrent approval of the same topup
			// loses here instead of crediting twice.
			res := tx.Model(&models.Topup{}).
				Where("id = ? AND status = ?", t.ID, models.TopupStatusPending).
				Updates(map[string]interface{}{
					"status":      models.TopupStatusApproved,
					"approved_by": actorID,
					"approved_at": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrTopupAlreadyApproved
			}

			if err := applyBalance(tx, &u, t.Amount, models.TransactionTypeTopupCredit,
				fmt.Sprintf("topup:%d", t.ID), actorID,
				map[string]interface{}{"restricted": false}); err != nil {
				return err
			}

			t.Status = models.TopupStatusApproved
			t.ApprovedBy = actorID
			t.ApprovedAt = &now
			topup = &t
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	notify(notifier.Request{
		RecipientID: userTelegramID,
		Text:        fmt.Sprintf("Your topup of %d MMK has been approved and credited.", topup.Amount),
	})
	notifyAdmins(actorID, fmt.Sprintf(
		"Topup #%d (%d MMK, user %d) approved by admin %d.",
		topup.ID, topup.Amount, userTelegramID, actorID))
	return topup, nil
}

// PendingTopups lists unresolved topups, oldest first, for the admin queue.
func PendingTopups() ([]models.Topup, error) {
	var topups []models.Topup
	err := database.DB.Where("status = ?", models.TopupStatusPending).
		Order("created_at asc, id asc").
		Find(&topups).Error
	return topups, err
}
