package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"user_service/internal/app/router"
	"user_service/internal/feature/users/adapters"
	usershandler "user_service/internal/feature/users/transport/handler"
	"user_service/internal/feature/users/usecase"
	"user_service/internal/platform/cache"
	"user_service/internal/platform/config"
	"user_service/internal/platform/db"
	platformredis "user_service/internal/platform/redis"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// db
	gormDB := db.OpenDB(db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		PoolSize: cfg.DBPoolSize,
	}, cfg.RunMigrations)

	// Redis (optional)
	var rdb *redisv9.Client
	if cfg.RedisHost == "" {
		log.Println("[INFO] Redis not configured. Running without cache.")
	} else if tmp, err := platformredis.NewRedisClient(platformredis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	}); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	txManager := adapters.NewTxManager(gormDB)
	profileRepo := cache.NewCachingProfileRepository(rdb, 0, adapters.NewProfileRepository(gormDB), "profiles")
	addressRepo := cache.NewInvalidatingAddressRepository(rdb, adapters.NewAddressRepository(gormDB), "profiles")

	// Usecase
	profileUC := usecase.NewProfileUsecase(profileRepo, txManager)
	addressUC := usecase.NewAddressUsecase(addressRepo, profileRepo, txManager)

	// Handler
	profileH := usershandler.NewProfileHandler(profileUC)
	addressH := usershandler.NewAddressHandler(addressUC)

	r := router.NewRouter(profileH, addressH, cfg.RequestTimeout)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
