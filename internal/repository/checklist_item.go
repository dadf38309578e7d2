package repository

import (
	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChecklistItemRepository handles database operations for checklist items
type ChecklistItemRepository struct {
	db *gorm.DB
}

// Ensure ChecklistItemRepository implements ChecklistItemRepositoryInterface
var _ ChecklistItemRepositoryInterface = (*ChecklistItemRepository)(nil)

// NewChecklistItemRepository creates a new checklist item repository
func NewChecklistItemRepository(db *gorm.DB) *ChecklistItemRepository {
	return &ChecklistItemRepository{db: db}
}

// Create creates a new checklist item
func (r *ChecklistItemRepository) Create(item *models.ChecklistItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a checklist item by ID, including deactivated ones
func (r *ChecklistItemRepository) GetByID(id uuid.UUID) (*models.ChecklistItem, error) {
	var item models.ChecklistItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByIDs retrieves checklist items by a set of IDs
func (r *ChecklistItemRepository) GetByIDs(ids []uuid.UUID) ([]models.ChecklistItem, error) {
	if len(ids) == 0 {
		return []models.ChecklistItem{}, nil
	}
	var items []models.ChecklistItem
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActiveByAssetType returns the active checks of an asset type in display order
func (r *ChecklistItemRepository) ListActiveByAssetType(assetType string) ([]models.ChecklistItem, error) {
	var items []models.ChecklistItem
	err := r.db.Where("asset_type = ? AND is_active = ?", assetType, true).
		Order("display_order ASC, name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// MaxDisplayOrder returns the highest display order used by an asset type, 0 if none
func (r *ChecklistItemRepository) MaxDisplayOrder(assetType string) (int, error) {
	var max int
	err := r.db.Model(&models.ChecklistItem{}).
		Where("asset_type = ?", assetType).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&max).Error
	return max, err
}

// Updates applies a partial update
func (r *ChecklistItemRepository) Updates(id uuid.UUID, updates map[string]interface{}) error {
	res := r.db.Model(&models.ChecklistItem{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deactivate soft-deletes a checklist item
func (r *ChecklistItemRepository) Deactivate(id uuid.UUID) error {
	return r.Updates(id, map[string]interface{}{"is_active": false})
}
