package database

import (
	"jobboard_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres pool. TranslateError turns driver unique
// violations into gorm.ErrDuplicatedKey, which the repositories rely on.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.JobSeekerProfile{},
		&models.EmployerProfile{},
		&models.Location{},
		&models.JobPosting{},
		&models.JobApplication{},
	)
}
