package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a spare part stocked for an asset type
type InventoryItem struct {
	BaseModel
	AssetType        string          `json:"asset_type" gorm:"size:100;not null;uniqueIndex:idx_inventory_part" validate:"required,max=100"`
	PartCode         string          `json:"part_code" gorm:"size:100;not null;uniqueIndex:idx_inventory_part" validate:"required,max=100"`
	Manufacturer     string          `json:"manufacturer" gorm:"size:200"`
	Model            string          `json:"model" gorm:"size:200"`
	ManufacturerCode string          `json:"manufacturer_code" gorm:"size:100"`
	Supplier         string          `json:"supplier" gorm:"size:200"`
	Unit             string          `json:"unit" gorm:"size:20;not null;default:'pz'"`
	QuantityOnHand   int             `json:"quantity_on_hand" gorm:"not null"`
	MinimumQuantity  int             `json:"minimum_quantity" gorm:"not null"`
	UnitPrice        decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	Notes            string          `json:"notes" gorm:"type:text"`
	IsActive         bool            `json:"is_active" gorm:"not null;default:true"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// BelowThreshold is derived on every read and never stored
func (i *InventoryItem) BelowThreshold() bool {
	return i.QuantityOnHand < i.MinimumQuantity
}

// StockValue is quantity on hand times unit price
func (i *InventoryItem) StockValue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.QuantityOnHand)))
}

// StockMovement is an append-only ledger entry of a quantity change
type StockMovement struct {
	BaseModel
	ItemID            uuid.UUID    `json:"item_id" gorm:"type:uuid;not null;index"`
	Kind              MovementKind `json:"kind" gorm:"size:20;not null"`
	Quantity          int          `json:"quantity" gorm:"not null"`
	PreviousQuantity  int          `json:"previous_quantity" gorm:"not null"`
	ResultingQuantity int          `json:"resulting_quantity" gorm:"not null"`
	Operator          string       `json:"operator" gorm:"size:100;not null"`
	Reason            string       `json:"reason" gorm:"type:text"`
}

func (StockMovement) TableName() string {
	return "stock_movements"
}
