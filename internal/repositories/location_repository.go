package repositories

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type LocationRepository interface {
	// GetOrCreate resolves the (country, city, address) triple to an existing
	// Location or inserts a new one.
	GetOrCreate(country, city, address string) (*models.Location, error)
	FindByID(id string) (*models.Location, error)
}

type LocationRepositoryImpl struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &LocationRepositoryImpl{db: db}
}

func (r *LocationRepositoryImpl) GetOrCreate(country, city, address string) (*models.Location, error) {
	var location models.Location
	err := r.db.Where(models.Location{
		Country: country,
		City:    city,
		Address: address,
	}).FirstOrCreate(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepositoryImpl) FindByID(id string) (*models.Location, error) {
	var location models.Location
	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}
