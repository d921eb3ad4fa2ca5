// Package config loads the service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config enumerates every runtime setting of the service: database
// connection and pool, HTTP bind address, request timeout, and the
// optional Redis cache.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPoolSize int

	HTTPAddr       string
	RequestTimeout time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string

	RunMigrations bool
}

// Load reads the configuration from environment variables, applying
// defaults suitable for local development.
func Load() Config {
	return Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPoolSize: getenvInt("DB_POOL_SIZE", 10),

		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		RequestTimeout: time.Duration(getenvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
