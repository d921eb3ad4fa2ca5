// Package redis constructs the shared Redis client.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Config holds the Redis connection settings. An empty Host means the
// cache is not configured.
type Config struct {
	Host     string
	Port     string
	Password string
}

// NewRedisClient connects to Redis and verifies the connection with a
// ping. Callers treat a nil client as "run without cache".
func NewRedisClient(cfg Config) (*redis.Client, error) {
	addr := cfg.Host + ":" + cfg.Port

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
