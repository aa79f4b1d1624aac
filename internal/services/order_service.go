package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/database"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/models"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/notifier"
)

const (
	OutcomeConfirm = "confirm"
	OutcomeCancel  = "cancel"
)

// newOrderID builds a time-derived order id, unique to the microsecond.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("ORD%s%06d", now.UTC().Format("20060102150405"), now.Nanosecond()/1000)
}

func hasPendingTopup(db *gorm.DB, userID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Topup{}).
		Where("user_id = ? AND status = ?", userID, models.TopupStatusPending).
		Count(&count).Error
	return count > 0, err
}

// CreateOrder places a diamond order: the price is snapshotted from the
// price book and debited atomically with the order record and its journal
// entry. Nothing is written when any check fails.
func CreateOrder(actorID, chatID int64, gameID, serverID, productCode string) (*models.Order, error) {
	if err := checkMaintenance(FeatureOrders); err != nil {
		return nil, err
	}

	if err := ValidateGameID(gameID); err != nil {
		return nil, err
	}
	if err := ValidateServerID(serverID); err != nil {
		return nil, err
	}
	if IsBannedAccount(gameID) {
		notifyAdmins(0, fmt.Sprintf(
			"Banned account order attempt: user %d, game ID %s, server ID %s, product %s.",
			actorID, gameID, serverID, productCode))
		return nil, ErrBannedAccount
	}

	price, err := ResolvePrice(productCode)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = withConflictRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var user models.User
			if err := tx.Where("telegram_id = ?", actorID).First(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUserNotFound
				}
				return err
			}

			if user.Restricted {
				return ErrAwaitingApproval
			}
			pending, err := hasPendingTopup(tx, user.ID)
			if err != nil {
				return err
			}
			if pending {
				return ErrAwaitingApproval
			}

			if user.Balance < price {
				return &InsufficientBalanceError{Required: price, Available: user.Balance}
			}

			now := time.Now()
			o := models.Order{
				OrderID:     newOrderID(now),
				UserID:      user.ID,
				GameID:      gameID,
				ServerID:    serverID,
				ProductCode: productCode,
				Price:       price,
				ChatID:      chatID,
				Status:      models.OrderStatusPending,
				CreatedAt:   now,
			}

			if err := applyBalance(tx, &user, -price, models.TransactionTypeOrderDebit, o.OrderID, 0, nil); err != nil {
				return err
			}
			if err := tx.Create(&o).Error; err != nil {
				return err
			}
			order = &o
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	notifyAdmins(0, fmt.Sprintf(
		"New order %s: user %d, game ID %s, server ID %s, product %s, price %d MMK.",
		order.OrderID, actorID, gameID, serverID, productCode, price))
	return order, nil
}

// ResolveOrder moves a pending order to its terminal state. Exactly one
// resolver wins; every later attempt gets ErrOrderAlreadyResolved, which is
// a race outcome to report, not a system failure. Cancelling refunds the
// snapshotted price in the same store transaction as the status change.
func ResolveOrder(actorID int64, orderID, outcome string) (*models.Order, error) {
	if !IsAdmin(actorID) {
		return nil, ErrPermissionDenied
	}
	if outcome != OutcomeConfirm && outcome != OutcomeCancel {
		return nil, &ValidationError{Field: "outcome", Reason: "must be confirm or cancel"}
	}

	var order models.Order
	err := withConflictRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).First(&order).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrOrderNotFound
				}
				return err
			}
			if order.Terminal() {
				return ErrOrderAlreadyResolved
			}

			now := time.Now()
			status := models.OrderStatusConfirmed
			if outcome == OutcomeCancel {
				status = models.OrderStatusCancelled
			}

			// Status-guarded update: only one resolver can flip a pending
			// order, no matter how many race here.
			res := tx.Model(&models.Order{}).
				Where("order_id = ? AND status = ?", orderID, models.OrderStatusPending).
				Updates(map[string]interface{}{
					"status":      status,
					"resolved_by": actorID,
					"resolved_at": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrOrderAlreadyResolved
			}

			if outcome == OutcomeCancel {
				var user models.User
				if err := tx.First(&user, order.UserID).Error; err != nil {
					return err
				}
				if err := applyBalance(tx, &user, order.Price, models.TransactionTypeOrderRefund, orderID, actorID, nil); err != nil {
					return err
				}
			}

			order.Status = status
			order.ResolvedBy = actorID
			order.ResolvedAt = &now
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	var buyer models.User
	if err := database.DB.First(&buyer, order.UserID).Error; err != nil {
		zap.L().Error("order resolved but buyer lookup failed, skipping buyer notification",
			zap.String("order_id", order.OrderID),
			zap.Uint("user_id", order.UserID),
			zap.Error(err))
	} else {
		text := fmt.Sprintf("Order %s confirmed. Diamonds arrive within 5-30 minutes.", order.OrderID)
		if order.Status == models.OrderStatusCancelled {
			text = fmt.Sprintf("Order %s was cancelled. %d MMK has been refunded to your balance.", order.OrderID, order.Price)
		}
		chatID := order.ChatID
		if chatID == 0 {
			chatID = buyer.TelegramID
		}
		notify(notifier.Request{RecipientID: chatID, Text: text})
	}
	notifyAdmins(actorID, fmt.Sprintf("Order %s %s by admin %d.", order.OrderID, order.Status, actorID))

	return &order, nil
}

// GetOrder fetches one order by id.
func GetOrder(orderID string) (*models.Order, error) {
	var order models.Order
	if err := database.DB.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}
