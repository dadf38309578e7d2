package repository

import (
	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetTypeRepository handles database operations for asset type schemas
type AssetTypeRepository struct {
	db *gorm.DB
}

// Ensure AssetTypeRepository implements AssetTypeRepositoryInterface
var _ AssetTypeRepositoryInterface = (*AssetTypeRepository)(nil)

// NewAssetTypeRepository creates a new asset type repository
func NewAssetTypeRepository(db *gorm.DB) *AssetTypeRepository {
	return &AssetTypeRepository{db: db}
}

// Create creates a new asset type
func (r *AssetTypeRepository) Create(assetType *models.AssetType) error {
	return r.db.Create(assetType).Error
}

// GetByID retrieves an asset type by ID
func (r *AssetTypeRepository) GetByID(id uuid.UUID) (*models.AssetType, error) {
	var t models.AssetType
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByName retrieves an asset type by name, active or not
func (r *AssetTypeRepository) GetByName(name string) (*models.AssetType, error) {
	var t models.AssetType
	if err := r.db.First(&t, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListActive returns the active asset types ordered by name
func (r *AssetTypeRepository) ListActive() ([]models.AssetType, error) {
	var types []models.AssetType
	if err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// Update saves an asset type
func (r *AssetTypeRepository) Update(assetType *models.AssetType) error {
	return r.db.Save(assetType).Error
}

// UpdateWithFieldRemoval saves the type and strips removed fields from the
// dynamic data of every asset of that type. Returns the number of assets changed.
func (r *AssetTypeRepository) UpdateWithFieldRemoval(assetType *models.AssetType, removed []string) (int64, error) {
	var updated int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var previous models.AssetType
		if err := tx.Select("name").First(&previous, "id = ?", assetType.ID).Error; err != nil {
			return err
		}
		if err := tx.Save(assetType).Error; err != nil {
			return err
		}
		if len(removed) == 0 {
			return nil
		}

		var assets []models.Asset
		if err := tx.Where("type = ?", previous.Name).Find(&assets).Error; err != nil {
			return err
		}
		for i := range assets {
			changed := false
			for _, field := range removed {
				if _, ok := assets[i].Data[field]; ok {
					delete(assets[i].Data, field)
					changed = true
				}
			}
			if !changed {
				continue
			}
			if err := tx.Model(&assets[i]).Update("data", assets[i].Data).Error; err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	return updated, err
}

// SetActive toggles the soft-delete flag
func (r *AssetTypeRepository) SetActive(id uuid.UUID, active bool) error {
	res := r.db.Model(&models.AssetType{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
