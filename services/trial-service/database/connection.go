package database

import (
	"fmt"

	"github.com/RigelNana/arkclinic/services/trial-service/config"
	"github.com/RigelNana/arkclinic/services/trial-service/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.UploadedFile{}, &models.GeneratedReport{}); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
