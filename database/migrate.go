package database

import (
	"arenaapp_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate applies the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Favorite{},
	)
}
