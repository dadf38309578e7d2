package repository

import (
	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceTypeRepository handles database operations for the legacy maintenance catalog
type MaintenanceTypeRepository struct {
	db *gorm.DB
}

// Ensure MaintenanceTypeRepository implements MaintenanceTypeRepositoryInterface
var _ MaintenanceTypeRepositoryInterface = (*MaintenanceTypeRepository)(nil)

// NewMaintenanceTypeRepository creates a new maintenance type repository
func NewMaintenanceTypeRepository(db *gorm.DB) *MaintenanceTypeRepository {
	return &MaintenanceTypeRepository{db: db}
}

// Create creates a new maintenance type
func (r *MaintenanceTypeRepository) Create(maintenanceType *models.MaintenanceType) error {
	return r.db.Create(maintenanceType).Error
}

// GetByID retrieves a maintenance type by ID
func (r *MaintenanceTypeRepository) GetByID(id uuid.UUID) (*models.MaintenanceType, error) {
	var t models.MaintenanceType
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByName retrieves a maintenance type by asset type and name
func (r *MaintenanceTypeRepository) GetByName(assetType, name string) (*models.MaintenanceType, error) {
	var t models.MaintenanceType
	if err := r.db.First(&t, "asset_type = ? AND name = ?", assetType, name).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns active maintenance types, optionally for one asset type
func (r *MaintenanceTypeRepository) List(assetType string) ([]models.MaintenanceType, error) {
	var types []models.MaintenanceType
	q := r.db.Where("is_active = ?", true)
	if assetType != "" {
		q = q.Where("asset_type = ?", assetType)
	}
	if err := q.Order("asset_type ASC, frequency_months ASC, name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetByIDs retrieves maintenance types by a set of IDs
func (r *MaintenanceTypeRepository) GetByIDs(ids []uuid.UUID) ([]models.MaintenanceType, error) {
	if len(ids) == 0 {
		return []models.MaintenanceType{}, nil
	}
	var types []models.MaintenanceType
	if err := r.db.Where("id IN ?", ids).Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// Delete removes a maintenance type
func (r *MaintenanceTypeRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.MaintenanceType{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
