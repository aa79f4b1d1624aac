package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/database"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/models"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/notifier"
)

// LedgerSecret signs journal entries. Set from configuration at startup.
var LedgerSecret = "default-secret"

const (
	maxStoreRetries   = 3
	storeRetryBackoff = 20 * time.Millisecond
)

// withConflictRetry re-runs fn while it loses optimistic-lock races, a
// bounded number of times. Any other error is returned immediately.
func withConflictRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < maxStoreRetries; attempt++ {
		err = fn()
		if !errors.Is(err, ErrStoreConflict) {
			return err
		}
		time.Sleep(storeRetryBackoff * time.Duration(attempt+1))
	}
	return err
}

// applyBalance performs one guarded balance mutation inside tx: a version-
// checked update plus exactly one journal entry. extra columns (restriction
// and intent fields) ride in the same atomic update. The caller must have
// loaded user inside the same transaction.
func applyBalance(tx *gorm.DB, user *models.User, amount int64, typ models.TransactionType, reference string, operator int64, extra map[string]interface{}) error {
	newBalance := user.Balance + amount
	if newBalance < 0 {
		return &InsufficientBalanceError{Required: -amount, Available: user.Balance}
	}

	updates := map[string]interface{}{
		"balance": newBalance,
		"version": user.Version + 1,
	}
	for k, v := range extra {
		updates[k] = v
	}

	res := tx.Model(&models.User{}).
		Where("id = ? AND version = ?", user.ID, user.Version).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStoreConflict
	}

	entry := models.Transaction{
		UserID:        user.ID,
		Amount:        amount,
		BalanceBefore: user.Balance,
		BalanceAfter:  newBalance,
		Reference:     reference,
		Operator:      operator,
		Type:          typ,
		CreatedAt:     time.Now(),
	}
	entry.Hash = entry.GenerateHash(LedgerSecret)
	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	user.Balance = newBalance
	user.Version++
	invalidateUserCache(user.ID)
	return nil
}

// EnsureUser finds or creates the user for a platform identity, refreshing
// the display name and handle on every interaction.
func EnsureUser(telegramID int64, name, username string) (*models.User, error) {
	var user models.User
	err := database.DB.Where("telegram_id = ?", telegramID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{TelegramID: telegramID, Name: name, Username: username}
		if err := database.DB.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	if (name != "" && name != user.Name) || (username != "" && username != user.Username) {
		updates := map[string]interface{}{}
		if name != "" {
			updates["name"] = name
		}
		if username != "" {
			updates["username"] = username
		}
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
		invalidateUserCache(user.ID)
	}
	return &user, nil
}

// FindUserByTelegramID reads the user fresh from the store. Decisions about
// balances and restrictions must never come from the cache.
func FindUserByTelegramID(telegramID int64) (*models.User, error) {
	var user models.User
	err := database.DB.Where("telegram_id = ?", telegramID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByID is a cached read for display purposes (balance screens,
// history headers). The cache is invalidated on every balance mutation.
func FindUserByID(userID uint) (models.User, error) {
	cacheKey := database.UserCacheKey(userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return user, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}

func invalidateUserCache(userID uint) {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, database.UserCacheKey(userID))
	}
}

// Deduct is an admin-only manual debit with no linked order or topup, just
// a balance mutation and a journal entry.
func Deduct(actorID, targetTelegramID, amount int64) (*models.User, error) {
	if !IsAdmin(actorID) {
		return nil, ErrPermissionDenied
	}
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	var user *models.User
	err := withConflictRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var u models.User
			if err := tx.Where("telegram_id = ?", targetTelegramID).First(&u).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUserNotFound
				}
				return err
			}
			if err := applyBalance(tx, &u, -amount, models.TransactionTypeAdminDeduct, "", actorID, nil); err != nil {
				return err
			}
			user = &u
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	notify(notifier.Request{
		RecipientID: targetTelegramID,
		Text:        fmt.Sprintf("An admin deducted %d MMK from your balance. New balance: %d MMK.", amount, user.Balance),
	})
	return user, nil
}

// LedgerBalance sums the journal for a user. It must always equal the
// stored balance; the difference being nonzero means the ledger was
// tampered with or a mutation bypassed the journal.
func LedgerBalance(userID uint) (int64, error) {
	var total int64
	err := database.DB.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// UserHistory returns the most recent orders and topups, newest first.
func UserHistory(telegramID int64, limit int) ([]models.Order, []models.Topup, error) {
	user, err := FindUserByTelegramID(telegramID)
	if err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 5
	}

	var orders []models.Order
	if err := database.DB.Where("user_id = ?", user.ID).
		Order("created_at desc").Limit(limit).Find(&orders).Error; err != nil {
		return nil, nil, err
	}
	var topups []models.Topup
	if err := database.DB.Where("user_id = ?", user.ID).
		Order("created_at desc, id desc").Limit(limit).Find(&topups).Error; err != nil {
		return nil, nil, err
	}
	return orders, topups, nil
}
