package config

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hireloop/recruitd/internal/models"
)

func ConnectPostgres(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pooling settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Job{},
		&models.Application{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
