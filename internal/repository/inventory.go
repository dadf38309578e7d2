package repository

import (
	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryRepository handles database operations for spare parts and their stock ledger
type InventoryRepository struct {
	db *gorm.DB
}

// Ensure InventoryRepository implements InventoryRepositoryInterface
var _ InventoryRepositoryInterface = (*InventoryRepository)(nil)

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Create inserts an item and, when given, its initial load movement
func (r *InventoryRepository) Create(item *models.InventoryItem, initial *models.StockMovement) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		if initial == nil {
			return nil
		}
		initial.ItemID = item.ID
		return tx.Create(initial).Error
	})
}

// GetByID retrieves an item by ID
func (r *InventoryRepository) GetByID(id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByPartCode retrieves an item by asset type and part code
func (r *InventoryRepository) GetByPartCode(assetType, partCode string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.First(&item, "asset_type = ? AND part_code = ?", assetType, partCode).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns active items matching the filter
func (r *InventoryRepository) List(filter InventoryFilter) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	q := r.db.Where("is_active = ?", true)
	if filter.AssetType != "" {
		q = q.Where("asset_type = ?", filter.AssetType)
	}
	if filter.BelowThreshold {
		q = q.Where("quantity_on_hand < minimum_quantity")
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("part_code ILIKE ? OR manufacturer ILIKE ? OR model ILIKE ? OR supplier ILIKE ?", like, like, like, like)
	}
	if err := q.Order("asset_type ASC, part_code ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByPartCodes returns active items whose part code is in codes
func (r *InventoryRepository) ListByPartCodes(codes []string) ([]models.InventoryItem, error) {
	if len(codes) == 0 {
		return []models.InventoryItem{}, nil
	}
	var items []models.InventoryItem
	if err := r.db.Where("is_active = ? AND part_code IN ?", true, codes).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListPartCodes returns every active part code, sorted
func (r *InventoryRepository) ListPartCodes() ([]string, error) {
	var codes []string
	err := r.db.Model(&models.InventoryItem{}).
		Where("is_active = ?", true).
		Order("part_code ASC").
		Pluck("part_code", &codes).Error
	return codes, err
}

// Update saves an item
func (r *InventoryRepository) Update(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}

// ApplyMovement locks the item row, lets apply change it, then stores the
// item and the returned movement atomically
func (r *InventoryRepository) ApplyMovement(id uuid.UUID, apply MovementFunc) (*models.InventoryItem, *models.StockMovement, error) {
	var item models.InventoryItem
	var movement *models.StockMovement
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, "id = ?", id).Error; err != nil {
			return err
		}
		m, err := apply(&item)
		if err != nil {
			return err
		}
		if err := tx.Model(&item).Update("quantity_on_hand", item.QuantityOnHand).Error; err != nil {
			return err
		}
		m.ItemID = item.ID
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		movement = m
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &item, movement, nil
}

// ListMovements returns the ledger of an item, newest first
func (r *InventoryRepository) ListMovements(itemID uuid.UUID) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	if err := r.db.Where("item_id = ?", itemID).Order("created_at DESC").Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Delete removes an item and its movements
func (r *InventoryRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&models.StockMovement{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.InventoryItem{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
