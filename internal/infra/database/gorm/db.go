package gorm

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skydry-api/internal/domain/entity"
	"skydry-api/pkg/resource"
)

// NewDB opens the Postgres connection from app.db.* properties and migrates the history table
func NewDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s search_path=%s",
		resource.GetStringOrDefault("app.db.host", "localhost"),
		resource.GetStringOrDefault("app.db.username", "postgres"),
		resource.GetString("app.db.password"),
		resource.GetStringOrDefault("app.db.database", "skydry"),
		resource.GetStringOrDefault("app.db.port", "5432"),
		resource.GetStringOrDefault("app.db.ssl-mode", "disable"),
		resource.GetStringOrDefault("app.db.schema", "public"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(resource.GetIntOrDefault("app.db.max-open-conns", 10))
	sqlDB.SetMaxIdleConns(resource.GetIntOrDefault("app.db.max-idle-conns", 5))
	sqlDB.SetConnMaxLifetime(resource.GetDurationOrDefault("app.db.conn-max-lifetime", 30*time.Minute))

	if err = db.AutoMigrate(&entity.ForecastRecord{}); err != nil {
		return nil, fmt.Errorf("fail to migrate forecast history: %w", err)
	}
	return db, nil
}
