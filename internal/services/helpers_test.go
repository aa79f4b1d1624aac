package services_test

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JulierBo/New1mlbbtopup--bot/internal/database"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/models"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/notifier"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
)

const (
	testOwnerID = int64(1000)
	testAdminID = int64(2000)
	testUserID  = int64(3000)
)

func setupTestDB() {
	// Use in-memory SQLite for testing
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic("failed to connect database")
	}

	// Drop tables to ensure a clean state between tests
	db.Migrator().DropTable(
		&models.User{}, &models.Order{}, &models.Topup{}, &models.Transaction{},
		&models.Admin{}, &models.AuthorizedUser{}, &models.PriceOverride{},
		&models.PaymentChannel{},
	)

	err = db.AutoMigrate(
		&models.User{}, &models.Order{}, &models.Topup{}, &models.Transaction{},
		&models.Admin{}, &models.AuthorizedUser{}, &models.PriceOverride{},
		&models.PaymentChannel{},
	)
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil

	services.OwnerID = testOwnerID
	services.LedgerSecret = "test-secret"
	services.Notify = nil
	services.Maintenance = services.NewGate()
}

func createTestUser(telegramID, balance int64) *models.User {
	u := models.User{
		TelegramID: telegramID,
		Name:       fmt.Sprintf("User %d", telegramID),
		Username:   fmt.Sprintf("user%d", telegramID),
		Balance:    balance,
	}
	if err := database.DB.Create(&u).Error; err != nil {
		panic(err)
	}
	return &u
}

func makeAdmin(telegramID int64) {
	if err := database.DB.Create(&models.Admin{TelegramID: telegramID, AddedBy: testOwnerID}).Error; err != nil {
		panic(err)
	}
}

// recordingSender captures notification requests for assertions.
type recordingSender struct {
	requests []notifier.Request
}

func (r *recordingSender) Enqueue(req notifier.Request) {
	r.requests = append(r.requests, req)
}
