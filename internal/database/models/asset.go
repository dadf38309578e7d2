package models

import (
	"gorm.io/datatypes"
)

// CompanyIDField is the mandatory first field of every asset-type template
const CompanyIDField = "company_id"

// Asset is a piece of equipment installed at a location
type Asset struct {
	BaseModel
	CompanyID      string            `json:"company_id" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	Type           string            `json:"type" gorm:"size:100;not null;index" validate:"required,max=100"`
	LocationNumber string            `json:"location_number" gorm:"size:50;not null;index" validate:"required,max=50"`
	Data           datatypes.JSONMap `json:"data" gorm:"type:jsonb"`
	TechnicalDoc   string            `json:"technical_doc" gorm:"size:255"`
	PositionX      *int              `json:"position_x"`
	PositionY      *int              `json:"position_y"`
}

func (Asset) TableName() string {
	return "assets"
}

// AssetType describes the dynamic field schema shared by assets of one kind
type AssetType struct {
	BaseModel
	Name           string                      `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	Description    string                      `json:"description" gorm:"type:text"`
	FieldsTemplate datatypes.JSONMap           `json:"fields_template" gorm:"type:jsonb"`
	FieldsOrder    datatypes.JSONSlice[string] `json:"fields_order" gorm:"type:jsonb"`
	IsActive       bool                        `json:"is_active" gorm:"not null;default:true"`
}

func (AssetType) TableName() string {
	return "asset_types"
}
