// Package db opens the gorm/Postgres connection for the service.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"user_service/internal/feature/users/domain/entity"
)

// Config holds the database connection settings.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	PoolSize int
}

// BuildDSN assembles the Postgres DSN from the connection settings.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// OpenDB connects to Postgres, retrying for up to a minute so the
// service survives a database that is still starting. TranslateError
// lets the adapters match gorm's portable constraint sentinels in
// addition to the raw pgconn codes. When migrate is true the schema is
// created/updated in place, including the email unique index and the
// ON DELETE CASCADE foreign key.
func OpenDB(cfg Config, migrate bool) *gorm.DB {
	dsn := BuildDSN(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access connection pool: %v", err)
	}
	if cfg.PoolSize > 0 {
		sqlDB.SetMaxOpenConns(cfg.PoolSize)
		sqlDB.SetMaxIdleConns(cfg.PoolSize)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if migrate {
		if err := db.AutoMigrate(
			&entity.UserProfile{},
			&entity.UserAddress{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
