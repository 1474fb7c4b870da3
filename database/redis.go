package database

import (
	"fmt"

	"railway_booking/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis opens the client backing the refresh-token allowlist.
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s",
			config.ConfigDefault("REDIS_HOST", "127.0.0.1"),
			config.ConfigDefault("REDIS_PORT", "6379"),
		),
		Password: config.Config("REDIS_PASSWORD"),
	})
}
