package models

import (
	"errors"
	"time"

	"gestman-backend/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidItemReference is returned when an occurrence or history record
// references neither or both of a checklist item and a maintenance type.
var ErrInvalidItemReference = errors.New("exactly one of checklist item or maintenance type must be referenced")

// MaintenanceType is the legacy catalog of periodic jobs per asset type
type MaintenanceType struct {
	BaseModel
	AssetType       string `json:"asset_type" gorm:"size:100;not null;uniqueIndex:idx_maintenance_type_name" validate:"required,max=100"`
	Name            string `json:"name" gorm:"size:200;not null;uniqueIndex:idx_maintenance_type_name" validate:"required,max=200"`
	Description     string `json:"description" gorm:"type:text"`
	FrequencyMonths int    `json:"frequency_months" gorm:"not null" validate:"required,min=1"`
	LeadTimeDays    int    `json:"lead_time_days" gorm:"not null" validate:"min=0"`
	IsActive        bool   `json:"is_active" gorm:"not null;default:true"`
}

func (MaintenanceType) TableName() string {
	return "maintenance_types"
}

// ChecklistItem is a check to perform on every asset of a type
type ChecklistItem struct {
	BaseModel
	AssetType    string `json:"asset_type" gorm:"size:100;not null;index" validate:"required,max=100"`
	Name         string `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Description  string `json:"description" gorm:"type:text"`
	DisplayOrder int    `json:"display_order" gorm:"not null;default:0"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`
}

func (ChecklistItem) TableName() string {
	return "checklist_items"
}

// RefKind tells which catalog an occurrence points to
type RefKind string

const (
	RefChecklistItem   RefKind = "checklist_item"
	RefMaintenanceType RefKind = "maintenance_type"
)

// OccurrenceRef points to either a checklist item or a maintenance type
type OccurrenceRef struct {
	Kind RefKind   `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// ChecklistItemRef references a checklist item
func ChecklistItemRef(id uuid.UUID) OccurrenceRef {
	return OccurrenceRef{Kind: RefChecklistItem, ID: id}
}

// MaintenanceTypeRef references a legacy maintenance type
func MaintenanceTypeRef(id uuid.UUID) OccurrenceRef {
	return OccurrenceRef{Kind: RefMaintenanceType, ID: id}
}

// ItemReference stores an OccurrenceRef as two nullable columns.
// Use Ref and SetRef; the columns are only read directly in SQL filters.
type ItemReference struct {
	ChecklistItemID   *uuid.UUID `json:"-" gorm:"type:uuid;index"`
	MaintenanceTypeID *uuid.UUID `json:"-" gorm:"type:uuid;index"`
}

// Ref returns the tagged reference
func (r ItemReference) Ref() OccurrenceRef {
	if r.ChecklistItemID != nil {
		return ChecklistItemRef(*r.ChecklistItemID)
	}
	if r.MaintenanceTypeID != nil {
		return MaintenanceTypeRef(*r.MaintenanceTypeID)
	}
	return OccurrenceRef{}
}

// SetRef replaces the reference
func (r *ItemReference) SetRef(ref OccurrenceRef) {
	r.ChecklistItemID = nil
	r.MaintenanceTypeID = nil
	id := ref.ID
	switch ref.Kind {
	case RefChecklistItem:
		r.ChecklistItemID = &id
	case RefMaintenanceType:
		r.MaintenanceTypeID = &id
	}
}

func (r ItemReference) validate() error {
	if (r.ChecklistItemID == nil) == (r.MaintenanceTypeID == nil) {
		return ErrInvalidItemReference
	}
	return nil
}

// Occurrence is one scheduled instance of a recurring maintenance job
type Occurrence struct {
	BaseModel
	ItemReference
	LocationNumber  string              `json:"location_number" gorm:"size:50;not null;index:idx_occurrence_group"`
	AssetID         string              `json:"asset_id" gorm:"size:100;not null;index:idx_occurrence_group"`
	AssetType       string              `json:"asset_type" gorm:"size:100;not null"`
	DueDate         time.Time           `json:"due_date" gorm:"type:date;not null;index:idx_occurrence_group"`
	State           OccurrenceState     `json:"state" gorm:"size:20;not null;default:'scheduled';index"`
	LeadTimeDays    int                 `json:"lead_time_days" gorm:"not null"`
	Recurrence      schedule.Recurrence `json:"recurrence" gorm:"size:20;not null"`
	CompletedAt     *time.Time          `json:"completed_at"`
	CompletedBy     string              `json:"completed_by" gorm:"size:100"`
	CompletionNotes string              `json:"completion_notes" gorm:"type:text"`
}

func (Occurrence) TableName() string {
	return "occurrences"
}

// BeforeSave enforces the single-reference invariant
func (o *Occurrence) BeforeSave(tx *gorm.DB) error {
	return o.ItemReference.validate()
}

// IsCompleted reports whether the occurrence has been executed
func (o *Occurrence) IsCompleted() bool {
	return o.State == OccurrenceCompleted
}

// ChecklistResult is the per-check outcome recorded at completion
type ChecklistResult struct {
	BaseModel
	OccurrenceID uuid.UUID `json:"occurrence_id" gorm:"type:uuid;not null;index"`
	Code         string    `json:"code" gorm:"size:100;not null"`
	Outcome      string    `json:"outcome" gorm:"size:50;not null"`
	Notes        string    `json:"notes" gorm:"type:text"`
}

func (ChecklistResult) TableName() string {
	return "checklist_results"
}

// ExecutionRecord is the append-only history of completed occurrences
type ExecutionRecord struct {
	BaseModel
	ItemReference
	OccurrenceID    uuid.UUID `json:"occurrence_id" gorm:"type:uuid;not null;uniqueIndex"`
	LocationNumber  string    `json:"location_number" gorm:"size:50;not null;index"`
	AssetID         string    `json:"asset_id" gorm:"size:100;not null;index"`
	AssetType       string    `json:"asset_type" gorm:"size:100"`
	ItemName        string    `json:"item_name" gorm:"size:200"`
	OriginalDueDate time.Time `json:"original_due_date" gorm:"type:date;not null"`
	ExecutedAt      time.Time `json:"executed_at" gorm:"not null;index"`
	Operator        string    `json:"operator" gorm:"size:100;not null"`
	Outcome         string    `json:"outcome" gorm:"size:50"`
	Notes           string    `json:"notes" gorm:"type:text"`
}

func (ExecutionRecord) TableName() string {
	return "execution_history"
}

// BeforeSave enforces the single-reference invariant
func (e *ExecutionRecord) BeforeSave(tx *gorm.DB) error {
	return e.ItemReference.validate()
}
