package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the Redis client backing the storefront rate limiter.
// The storefront stays up without Redis: rate limiting is simply disabled,
// which is the right trade-off for a public read-only catalog API.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, rate limiting disabled")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL, rate limiting disabled: %v", err)
		return
	}

	client := redis.NewClient(opt)
	if res, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("⚠️  failed to connect to Redis, rate limiting disabled: %v", err)
		return
	} else {
		log.Println("✅ Connected to Redis:", res)
	}
	RedisClient = client
}
