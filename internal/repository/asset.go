package repository

import (
	"gestman-backend/internal/database/models"

	"gorm.io/gorm"
)

// AssetRepository handles database operations for assets
type AssetRepository struct {
	db *gorm.DB
}

// Ensure AssetRepository implements AssetRepositoryInterface
var _ AssetRepositoryInterface = (*AssetRepository)(nil)

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create creates a new asset
func (r *AssetRepository) Create(asset *models.Asset) error {
	return r.db.Create(asset).Error
}

// GetByCompanyID retrieves an asset by its company identifier
func (r *AssetRepository) GetByCompanyID(companyID string) (*models.Asset, error) {
	var asset models.Asset
	if err := r.db.First(&asset, "company_id = ?", companyID).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// List retrieves assets matching the filter
func (r *AssetRepository) List(filter AssetFilter) ([]models.Asset, error) {
	var assets []models.Asset
	q := r.db.Model(&models.Asset{})
	if filter.LocationNumber != "" {
		q = q.Where("location_number = ?", filter.LocationNumber)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if err := q.Order("location_number ASC, company_id ASC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// ListByType retrieves all assets of a type
func (r *AssetRepository) ListByType(assetType string) ([]models.Asset, error) {
	return r.List(AssetFilter{Type: assetType})
}

// CountByType counts the assets of a type
func (r *AssetRepository) CountByType(assetType string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Asset{}).Where("type = ?", assetType).Count(&count).Error
	return count, err
}

// DistinctTypes returns the asset types in use, sorted
func (r *AssetRepository) DistinctTypes() ([]string, error) {
	var types []string
	err := r.db.Model(&models.Asset{}).
		Distinct("type").
		Where("type <> ''").
		Order("type ASC").
		Pluck("type", &types).Error
	return types, err
}

// Update updates an existing asset
func (r *AssetRepository) Update(asset *models.Asset) error {
	return r.db.Save(asset).Error
}

// Delete removes an asset by company id
func (r *AssetRepository) Delete(companyID string) error {
	res := r.db.Where("company_id = ?", companyID).Delete(&models.Asset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOrphans removes assets whose location no longer exists
func (r *AssetRepository) DeleteOrphans() (int64, error) {
	sub := r.db.Model(&models.Location{}).Select("number")
	res := r.db.Where("location_number NOT IN (?)", sub).Delete(&models.Asset{})
	return res.RowsAffected, res.Error
}
