package redis

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"travel-booking-service/config"
)

func SetupClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
