package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/JulierBo/New1mlbbtopup--bot/config"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/api"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/database"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/models"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/notifier"
	"github.com/JulierBo/New1mlbbtopup--bot/internal/services"
	"github.com/JulierBo/New1mlbbtopup--bot/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if _, err := database.Connect(cfg.DBPath); err != nil {
		logger.Log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.Topup{},
		&models.Transaction{},
		&models.Admin{},
		&models.AuthorizedUser{},
		&models.PriceOverride{},
		&models.PaymentChannel{},
	); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Redis is an optional display cache; the shop runs without it.
	if cfg.RedisAddr != "" {
		if err := database.ConnectRedis(cfg); err != nil {
			logger.Log.Warn("redis unavailable, running without cache", zap.Error(err))
			database.RedisClient = nil
		}
	}

	services.OwnerID = cfg.OwnerID
	services.LedgerSecret = cfg.LedgerSecret

	if err := services.SeedPaymentChannels(); err != nil {
		logger.Log.Fatal("failed to seed payment channels", zap.Error(err))
	}

	queue := notifier.NewQueue(notifier.GroupResolver{
		Inner:        notifier.LogSender{},
		AdminGroupID: cfg.AdminGroupID,
	})
	queue.Start()
	defer queue.Stop()
	services.Notify = queue

	router := api.NewRouter()
	logger.Log.Info("shop listening", zap.String("addr", cfg.ListenAddr))
	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.Log.Fatal("server exited", zap.Error(err))
	}
}
