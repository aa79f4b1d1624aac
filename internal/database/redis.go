package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/JulierBo/New1mlbbtopup--bot/config"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// UserCacheKey namespaces cached user records so the shop can share a redis
// instance with other tools.
func UserCacheKey(userID uint) string {
	return fmt.Sprintf("shop:user:%d", userID)
}

func ConnectRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	_, err := RedisClient.Ping(Ctx).Result()
	return err
}
