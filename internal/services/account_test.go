package services_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/database"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/models"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
)

func setupMockRedis(t *testing.T) *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	t.Cleanup(mr.Close)

	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { database.RedisClient = nil })
	return mr
}

func TestEnsureUserCreatesAndRefreshes(t *testing.T) {
	setupTestDB()

	user, err := services.EnsureUser(testUserID, "Aung", "aung")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), user.Balance)
	assert.Equal(t, "Aung", user.Name)

	// Second call refreshes the display fields, keeps the balance
	database.DB.Model(user).Update("balance", 500)
	user, err = services.EnsureUser(testUserID, "Aung Myat", "aungm")
	assert.NoError(t, err)
	assert.Equal(t, "Aung Myat", user.Name)
	assert.Equal(t, "aungm", user.Username)

	fresh, err := services.FindUserByTelegramID(testUserID)
	assert.NoError(t, err)
	assert.Equal(t, int64(500), fresh.Balance)
}

func TestFindUserByTelegramIDNotFound(t *testing.T) {
	setupTestDB()

	_, err := services.FindUserByTelegramID(9999)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestFindUserByIDUsesCache(t *testing.T) {
	setupTestDB()
	mr := setupMockRedis(t)
	u := createTestUser(testUserID, 1000)

	got, err := services.FindUserByID(u.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), got.Balance)
	assert.True(t, mr.Exists("shop:user:1"))

	// A stale cache entry is served until a mutation invalidates it
	database.DB.Model(u).Update("balance", 2000)
	got, err = services.FindUserByID(u.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), got.Balance)
}

func TestDeductWritesJournalEntry(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)
	createTestUser(testUserID, 5000)

	user, err := services.Deduct(testAdminID, testUserID, 1500)
	assert.NoError(t, err)
	assert.Equal(t, int64(3500), user.Balance)

	var entry models.Transaction
	assert.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&entry).Error)
	assert.Equal(t, models.TransactionTypeAdminDeduct, entry.Type)
	assert.Equal(t, int64(-1500), entry.Amount)
	assert.Equal(t, int64(5000), entry.BalanceBefore)
	assert.Equal(t, int64(3500), entry.BalanceAfter)
	assert.Equal(t, testAdminID, entry.Operator)
	assert.Equal(t, entry.GenerateHash("test-secret"), entry.Hash)
}

func TestDeductPermissionsAndLimits(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)
	createTestUser(testUserID, 100)

	_, err := services.Deduct(testUserID, testUserID, 50)
	assert.ErrorIs(t, err, services.ErrPermissionDenied)

	var valErr *services.ValidationError
	_, err = services.Deduct(testAdminID, testUserID, 0)
	assert.ErrorAs(t, err, &valErr)

	var balErr *services.InsufficientBalanceError
	_, err = services.Deduct(testAdminID, testUserID, 500)
	assert.ErrorAs(t, err, &balErr)
	assert.Equal(t, int64(400), balErr.Shortfall())

	_, err = services.Deduct(testAdminID, 9999, 50)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestLedgerBalanceReconciles(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)
	u := createTestUser(testUserID, 10000)

	_, err := services.Deduct(testAdminID, testUserID, 3000)
	assert.NoError(t, err)
	_, err = services.Deduct(testAdminID, testUserID, 2000)
	assert.NoError(t, err)

	total, err := services.LedgerBalance(u.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(-5000), total)

	fresh, _ := services.FindUserByTelegramID(testUserID)
	assert.Equal(t, int64(10000)+total, fresh.Balance)
}
