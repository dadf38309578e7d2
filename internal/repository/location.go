package repository

import (
	"gestman-backend/internal/database/models"

	"gorm.io/gorm"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// Ensure LocationRepository implements LocationRepositoryInterface
var _ LocationRepositoryInterface = (*LocationRepository)(nil)

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByNumber retrieves a location by its number
func (r *LocationRepository) GetByNumber(number string) (*models.Location, error) {
	var location models.Location
	if err := r.db.First(&location, "number = ?", number).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

// List returns all locations, optionally only those hosting an asset whose
// company id contains assetFilter (case-insensitive)
func (r *LocationRepository) List(assetFilter string) ([]models.Location, error) {
	var locations []models.Location
	q := r.db.Model(&models.Location{})
	if assetFilter != "" {
		sub := r.db.Model(&models.Asset{}).Select("location_number").Where("company_id ILIKE ?", "%"+assetFilter+"%")
		q = q.Where("number IN (?)", sub)
	}
	if err := q.Order("number ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// UpdateDescription sets the description of a location
func (r *LocationRepository) UpdateDescription(number, description string) error {
	res := r.db.Model(&models.Location{}).Where("number = ?", number).Update("description", description)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a location together with its assets and returns how many assets were removed
func (r *LocationRepository) Delete(number string) (int64, error) {
	var removedAssets int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("location_number = ?", number).Delete(&models.Asset{})
		if res.Error != nil {
			return res.Error
		}
		removedAssets = res.RowsAffected

		res = tx.Where("number = ?", number).Delete(&models.Location{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return removedAssets, err
}
