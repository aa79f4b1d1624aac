package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/database"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/models"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
)

func TestCreateOrderDebitsBalance(t *testing.T) {
	setupTestDB()
	createTestUser(testUserID, 10000)

	order, err := services.CreateOrder(testUserID, 0, "123456780", "2001", "86")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.OrderID, "ORD"))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, int64(5100), order.Price)

	user, _ := services.FindUserByTelegramID(testUserID)
	assert.Equal(t, int64(4900), user.Balance)

	var entry models.Transaction
	assert.NoError(t, database.DB.Where("reference = ?", order.OrderID).First(&entry).Error)
	assert.Equal(t, models.TransactionTypeOrderDebit, entry.Type)
	assert.Equal(t, int64(-5100), entry.Amount)
}

func TestCreateOrderSnapshotsPrice(t *testing.T) {
	setupTestDB()
	createTestUser(testUserID, 10000)

	order, err := services.CreateOrder(testUserID, 0, "123456780", "2001", "86")
	assert.NoError(t, err)
	assert.Equal(t, int64(5100), order.Price)

	// A later override never touches the existing order
	assert.NoError(t, services.SetPriceOverride(testOwnerID, "86", 9999))
	got, err := services.GetOrder(order.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, int64(5100), got.Price)
}

func TestCreateOrderInsufficientBalance(t *testing.T) {
	setupTestDB()
	createTestUser(testUserID, 4900)

	_, err := services.CreateOrder(testUserID, 0, "123456780", "2001", "86")
	var balErr *services.InsufficientBalanceError
	assert.ErrorAs(t, err, &balErr)
	assert.Equal(t, int64(200), balErr.Shortfall())

	// Nothing was written
	var count int64
	database.DB.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
	database.DB.Model(&models.Transaction{}).Count(&count)
	assert.Zero(t, count)
	user, _ := services.FindUserByTelegramID(testUserID)
	assert.Equal(t, int64(4900), user.Balance)
}

func TestCreateOrderValidation(t *testing.T) {
	setupTestDB()
	createTestUser(testUserID, 10000)

	var valErr *services.ValidationError
	_, err := services.CreateOrder(testUserID, 0, "12345", "2001", "86")
	assert.ErrorAs(t, err, &valErr)
	assert.Equal(t, "game_id", valErr.Field)

	_, err = services.CreateOrder(testUserID, 0, "123456780", "20", "86")
	assert.ErrorAs(t, err, &valErr)
	assert.Equal(t, "server_id", valErr.Field)

	_, err = services.CreateOrder(testUserID, 0, "123456780", "2001", "nope")
	assert.ErrorIs(t, err, services.ErrPriceUnknown)

	_, err = services.CreateOrder(7777, 0, "123456780", "2001", "86")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestCreateOrderBannedAccount(t *testing.T) {
	setupTestDB()
	sender := &recordingSender{}
	services.Notify = sender
	createTestUser(testUserID, 10000)

	_, err := services.CreateOrder(testUserID, 0, "123456789", "2001", "86")
	assert.ErrorIs(t, err, services.ErrBannedAccount)

	// Balance untouched, admins alerted
	user, _ := services.FindUserByTelegramID(testUserID)
	assert.Equal(t, int64(10000), user.Balance)
	assert.NotEmpty(t, sender.requests)
}

func TestCreateOrderUnderMaintenance(t *testing.T) {
	setupTestDB()
	createTestUser(testUserID, 10000)

	assert.NoError(t, services.Maintenance.Set(testOwnerID, services.FeatureOrders, false))

	_, err := services.CreateOrder(testUserID, 0, "123456780", "2001", "86")
	var maintErr *services.MaintenanceError
	assert.ErrorAs(t, err, &maintErr)
	assert.Equal(t, services.FeatureOrders, maintErr.Feature)

	var count int64
	database.DB.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)

	// Re-enabling restores service
	assert.NoError(t, services.Maintenance.Set(testOwnerID, services.FeatureOrders, true))
	_, err = services.CreateOrder(testUserID, 0, "123456780", "2001", "86")
	assert.NoError(t, err)
}

func TestConfirmOrder(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)
	createTestUser(testUserID, 10000)

	order, _ := services.CreateOrder(testUserID, 0, "123456780", "2001", "86")

	resolved, err := services.ResolveOrder(testAdminID, order.OrderID, services.OutcomeConfirm)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, resolved.Status)
	assert.Equal(t, testAdminID, resolved.ResolvedBy)
	assert.NotNil(t, resolved.ResolvedAt)

	// Confirmation does not move money
	user, _ := services.FindUserByTelegramID(testUserID)
	assert.Equal(t, int64(4900), user.Balance)
}

func TestCancelOrderRefunds(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)
	u := createTestUser(testUserID, 10000)

	order, _ := services.CreateOrder(testUserID, 0, "123456780", "2001", "86")
	user, _ := services.FindUserByTelegramID(testUserID)
	assert.Equal(t, int64(4900), user.Balance)

	resolved, err := services.ResolveOrder(testAdminID, order.OrderID, services.OutcomeCancel)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, resolved.Status)

	user, _ = services.FindUserByTelegramID(testUserID)
	assert.Equal(t, int64(10000), user.Balance)

	// Debit and refund both journaled, netting to zero
	total, err := services.LedgerBalance(u.ID)
	assert.NoError(t, err)
	assert.Zero(t, total)

	var entries []models.Transaction
	database.DB.Where("reference = ?", order.OrderID).Order("id").Find(&entries)
	assert.Len(t, entries, 2)
	assert.Equal(t, models.TransactionTypeOrderDebit, entries[0].Type)
	assert.Equal(t, models.TransactionTypeOrderRefund, entries[1].Type)
}

func TestResolveOrderExactlyOnce(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)
	makeAdmin(2001)
	createTestUser(testUserID, 10000)

	order, _ := services.CreateOrder(testUserID, 0, "123456780", "2001", "86")

	_, err := services.ResolveOrder(testAdminID, order.OrderID, services.OutcomeCancel)
	assert.NoError(t, err)

	// The second resolver loses, whatever outcome it asked for
	_, err = services.ResolveOrder(2001, order.OrderID, services.OutcomeCancel)
	assert.ErrorIs(t, err, services.ErrOrderAlreadyResolved)
	_, err = services.ResolveOrder(2001, order.OrderID, services.OutcomeConfirm)
	assert.ErrorIs(t, err, services.ErrOrderAlreadyResolved)

	// The refund happened exactly once
	user, _ := services.FindUserByTelegramID(testUserID)
	assert.Equal(t, int64(10000), user.Balance)
	got, _ := services.GetOrder(order.OrderID)
	assert.Equal(t, models.OrderStatusCancelled, got.Status)
	assert.Equal(t, testAdminID, got.ResolvedBy)
}

func TestResolveOrderNotifiesAdminsWhenBuyerUnreadable(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)
	createTestUser(testUserID, 10000)

	order, err := services.CreateOrder(testUserID, 0, "123456780", "2001", "86")
	assert.NoError(t, err)

	sender := &recordingSender{}
	services.Notify = sender
	database.DB.Migrator().DropTable(&models.User{})

	// Confirmation touches no balance, so it still succeeds; the buyer
	// notification is skipped but admins still hear about it.
	resolved, err := services.ResolveOrder(testAdminID, order.OrderID, services.OutcomeConfirm)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, resolved.Status)

	assert.NotEmpty(t, sender.requests)
	for _, req := range sender.requests {
		assert.NotEqual(t, testUserID, req.RecipientID)
	}
}

func TestResolveOrderPermissionsAndInput(t *testing.T) {
	setupTestDB()
	makeAdmin(testAdminID)
	createTestUser(testUserID, 10000)

	order, _ := services.CreateOrder(testUserID, 0, "123456780", "2001", "86")

	_, err := services.ResolveOrder(testUserID, order.OrderID, services.OutcomeConfirm)
	assert.ErrorIs(t, err, services.ErrPermissionDenied)

	var valErr *services.ValidationError
	_, err = services.ResolveOrder(testAdminID, order.OrderID, "reject")
	assert.ErrorAs(t, err, &valErr)

	_, err = services.ResolveOrder(testAdminID, "ORD000", services.OutcomeConfirm)
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}
