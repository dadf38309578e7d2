package testutils

import (
	"fmt"
	"time"

	"gestman-backend/internal/database/models"
	"gestman-backend/internal/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// Create creates a test Location with default values
func (f *LocationFactory) Create() *models.Location {
	return &models.Location{
		Number:      "12",
		Description: "Main workshop",
	}
}

// WithNumber sets a custom number for the location
func (f *LocationFactory) WithNumber(number string) *models.Location {
	l := f.Create()
	l.Number = number
	return l
}

// AssetFactory provides methods to create test Asset data
type AssetFactory struct{}

// Create creates a test Asset with a unique company id
func (f *AssetFactory) Create() *models.Asset {
	id := uuid.New()
	return &models.Asset{
		BaseModel:      models.BaseModel{ID: id},
		CompanyID:      "FR-" + id.String()[:6],
		Type:           "mill",
		LocationNumber: "12",
		Data:           datatypes.JSONMap{models.CompanyIDField: "FR-" + id.String()[:6], "brand": "Haas"},
	}
}

// At places the asset at a location
func (f *AssetFactory) At(locationNumber string) *models.Asset {
	a := f.Create()
	a.LocationNumber = locationNumber
	return a
}

// AssetTypeFactory provides methods to create test AssetType data
type AssetTypeFactory struct{}

// Create creates a test AssetType with a small template
func (f *AssetTypeFactory) Create() *models.AssetType {
	return &models.AssetType{
		Name:        "mill",
		Description: "CNC milling machines",
		FieldsTemplate: datatypes.JSONMap{
			models.CompanyIDField: map[string]interface{}{"type": "text", "required": true},
			"brand":               map[string]interface{}{"type": "text", "required": false},
		},
		FieldsOrder: datatypes.JSONSlice[string]{models.CompanyIDField, "brand"},
		IsActive:    true,
	}
}

// ChecklistItemFactory provides methods to create test ChecklistItem data
type ChecklistItemFactory struct{}

// Create creates a test ChecklistItem
func (f *ChecklistItemFactory) Create() *models.ChecklistItem {
	return &models.ChecklistItem{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		AssetType:    "mill",
		Name:         "Hydraulic oil change",
		Description:  "Replace the hydraulic unit oil",
		DisplayOrder: 1,
		IsActive:     true,
	}
}

// Named creates a checklist item with a custom name and order
func (f *ChecklistItemFactory) Named(name string, order int) *models.ChecklistItem {
	c := f.Create()
	c.Name = name
	c.DisplayOrder = order
	return c
}

// MaintenanceTypeFactory provides methods to create test MaintenanceType data
type MaintenanceTypeFactory struct{}

// Create creates a test MaintenanceType
func (f *MaintenanceTypeFactory) Create() *models.MaintenanceType {
	return &models.MaintenanceType{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AssetType:       "mill",
		Name:            "Spindle calibration",
		Description:     "Calibrate the spindle",
		FrequencyMonths: 6,
		LeadTimeDays:    7,
		IsActive:        true,
	}
}

// OccurrenceFactory provides methods to create test Occurrence data
type OccurrenceFactory struct{}

// Create creates a scheduled occurrence referencing a random checklist item
func (f *OccurrenceFactory) Create() *models.Occurrence {
	o := &models.Occurrence{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		LocationNumber: "12",
		AssetID:        "FR-01",
		AssetType:      "mill",
		DueDate:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		State:          models.OccurrenceScheduled,
		LeadTimeDays:   7,
		Recurrence:     schedule.Monthly,
	}
	o.SetRef(models.ChecklistItemRef(uuid.New()))
	return o
}

// For creates a scheduled occurrence of a checklist item
func (f *OccurrenceFactory) For(item *models.ChecklistItem, due time.Time, rec schedule.Recurrence) *models.Occurrence {
	o := f.Create()
	o.AssetType = item.AssetType
	o.DueDate = due
	o.Recurrence = rec
	o.SetRef(models.ChecklistItemRef(item.ID))
	return o
}

// AlertFactory provides methods to create test Alert data
type AlertFactory struct{}

// Create creates an open non-conformity alert
func (f *AlertFactory) Create() *models.Alert {
	return &models.Alert{
		BaseModel:      models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		Category:       models.AlertCategoryNonConformity,
		Title:          "Alert non_conformita",
		Description:    "Oil leak",
		LocationNumber: "12",
		AssetID:        "FR-01",
		State:          models.AlertOpen,
		Operator:       "mario",
	}
}

// InventoryItemFactory provides methods to create test InventoryItem data
type InventoryItemFactory struct{}

// Create creates an active inventory item with a unique part code
func (f *InventoryItemFactory) Create() *models.InventoryItem {
	id := uuid.New()
	return &models.InventoryItem{
		BaseModel:       models.BaseModel{ID: id},
		AssetType:       "mill",
		PartCode:        fmt.Sprintf("P-%s", id.String()[:8]),
		Manufacturer:    "Bosch",
		Unit:            "pz",
		QuantityOnHand:  5,
		MinimumQuantity: 2,
		UnitPrice:       decimal.RequireFromString("10.50"),
		IsActive:        true,
	}
}

// ChannelFactory provides methods to create test NotificationChannel data
type ChannelFactory struct{}

// Create creates an active channel accepting every category
func (f *ChannelFactory) Create() *models.NotificationChannel {
	return &models.NotificationChannel{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "Workshop",
		ChatID:     "-1001",
		Categories: datatypes.JSONSlice[string]{"scadenze", "non_conformita", "ticket"},
		IsActive:   true,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Location        *LocationFactory
	Asset           *AssetFactory
	AssetType       *AssetTypeFactory
	ChecklistItem   *ChecklistItemFactory
	MaintenanceType *MaintenanceTypeFactory
	Occurrence      *OccurrenceFactory
	Alert           *AlertFactory
	InventoryItem   *InventoryItemFactory
	Channel         *ChannelFactory
}

// NewFactorySet creates a new factory set
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Location:        &LocationFactory{},
		Asset:           &AssetFactory{},
		AssetType:       &AssetTypeFactory{},
		ChecklistItem:   &ChecklistItemFactory{},
		MaintenanceType: &MaintenanceTypeFactory{},
		Occurrence:      &OccurrenceFactory{},
		Alert:           &AlertFactory{},
		InventoryItem:   &InventoryItemFactory{},
		Channel:         &ChannelFactory{},
	}
}
