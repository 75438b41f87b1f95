package database

import (
	"gorm.io/gorm"

	"resumebuilder_backend/internal/models"
)

// AutoMigrate keeps the schema in sync with the models. uuid-ossp provides
// the uuid_generate_v4 default used by the primary keys.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Resume{},
		&models.Payment{},
	)
}
