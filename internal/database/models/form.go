package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FormTemplate is a dynamic maintenance form definition
type FormTemplate struct {
	BaseModel
	Name        string      `json:"name" gorm:"size:200;not null;uniqueIndex" validate:"required,max=200"`
	Description string      `json:"description" gorm:"type:text"`
	AssetType   string      `json:"asset_type" gorm:"size:100;index"`
	IsActive    bool        `json:"is_active" gorm:"not null;default:true"`
	Fields      []FormField `json:"fields,omitempty" gorm:"foreignKey:TemplateID"`
}

func (FormTemplate) TableName() string {
	return "form_templates"
}

// FieldChoice is one option of a select field
type FieldChoice struct {
	Value          string `json:"value"`
	Label          string `json:"label"`
	GeneratesAlert bool   `json:"generates_alert"`
}

// FieldOptions configures a form field
type FieldOptions struct {
	Choices        []FieldChoice `json:"choices,omitempty"`
	GeneratesAlert bool          `json:"generates_alert,omitempty"`
	Placeholder    string        `json:"placeholder,omitempty"`
}

// FormField is one input of a form template
type FormField struct {
	BaseModel
	TemplateID   uuid.UUID                        `json:"template_id" gorm:"type:uuid;not null;uniqueIndex:idx_form_field_key"`
	Key          string                           `json:"key" gorm:"size:100;not null;uniqueIndex:idx_form_field_key" validate:"required,max=100"`
	Label        string                           `json:"label" gorm:"size:200;not null" validate:"required,max=200"`
	Type         FieldType                        `json:"type" gorm:"size:20;not null"`
	Required     bool                             `json:"required"`
	Options      datatypes.JSONType[FieldOptions] `json:"options" gorm:"type:jsonb"`
	DisplayOrder int                              `json:"display_order"`
}

func (FormField) TableName() string {
	return "form_fields"
}

// FormSubmission is a filled-in form for one asset intervention
type FormSubmission struct {
	BaseModel
	TemplateID       uuid.UUID         `json:"template_id" gorm:"type:uuid;not null;index"`
	LocationNumber   string            `json:"location_number" gorm:"size:50;not null;index"`
	AssetID          string            `json:"asset_id" gorm:"size:100;not null;index"`
	Operator         string            `json:"operator" gorm:"size:100;not null"`
	InterventionDate time.Time         `json:"intervention_date" gorm:"type:date;not null"`
	Data             datatypes.JSONMap `json:"data" gorm:"type:jsonb"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}
