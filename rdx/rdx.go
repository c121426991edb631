package rdx

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// Connect opens the shared Redis connection. Callers decide whether to use
// it; the service falls back to the in-memory cache when REDIS_ADDR is unset.
func Connect() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}
