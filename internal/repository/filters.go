package repository

import (
	"time"

	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetFilter narrows asset listings; empty fields are ignored
type AssetFilter struct {
	LocationNumber string
	Type           string
}

// OccurrenceFilter narrows occurrence listings; zero values are ignored
type OccurrenceFilter struct {
	LocationNumber string
	AssetID        string
	State          models.OccurrenceState
	From           *time.Time
	To             *time.Time
}

// HistoryFilter narrows execution history listings
type HistoryFilter struct {
	LocationNumber string
	AssetID        string
	From           *time.Time
	To             *time.Time
}

// InventoryFilter narrows inventory listings
type InventoryFilter struct {
	AssetType      string
	BelowThreshold bool
	Search         string
}

// SubmissionFilter narrows form submission listings
type SubmissionFilter struct {
	TemplateID     *uuid.UUID
	LocationNumber string
	AssetID        string
}

// MovementFunc mutates a locked inventory item and returns the ledger entry to record
type MovementFunc func(item *models.InventoryItem) (*models.StockMovement, error)

func (f OccurrenceFilter) apply(q *gorm.DB) *gorm.DB {
	if f.LocationNumber != "" {
		q = q.Where("location_number = ?", f.LocationNumber)
	}
	if f.AssetID != "" {
		q = q.Where("asset_id = ?", f.AssetID)
	}
	if f.State != "" {
		q = q.Where("state = ?", f.State)
	}
	if f.From != nil {
		q = q.Where("due_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("due_date <= ?", *f.To)
	}
	return q
}

func (f HistoryFilter) apply(q *gorm.DB) *gorm.DB {
	if f.LocationNumber != "" {
		q = q.Where("location_number = ?", f.LocationNumber)
	}
	if f.AssetID != "" {
		q = q.Where("asset_id = ?", f.AssetID)
	}
	if f.From != nil {
		q = q.Where("executed_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("executed_at <= ?", *f.To)
	}
	return q
}
