package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssetTypeService handles business logic for asset type schemas
type AssetTypeService struct {
	repo      repository.AssetTypeRepositoryInterface
	assets    repository.AssetRepositoryInterface
	validator *validator.Validate
}

// NewAssetTypeService creates a new asset type service
func NewAssetTypeService(repo repository.AssetTypeRepositoryInterface, assets repository.AssetRepositoryInterface, validator *validator.Validate) *AssetTypeService {
	return &AssetTypeService{repo: repo, assets: assets, validator: validator}
}

// Ensure AssetTypeService implements AssetTypeServiceInterface
var _ AssetTypeServiceInterface = (*AssetTypeService)(nil)

// FieldDefinition is one dynamic field of an asset type, in display order
type FieldDefinition struct {
	Name     string   `json:"name" validate:"required,max=100"`
	Type     string   `json:"type,omitempty" validate:"max=20"`
	Label    string   `json:"label,omitempty"`
	Required bool     `json:"required,omitempty"`
	Options  []string `json:"options,omitempty"`
}

// CreateAssetTypeRequest represents the request to create an asset type.
// Fields, when given, defines both the template and the order; otherwise
// FieldsTemplate is used and ordered by name.
type CreateAssetTypeRequest struct {
	Name           string                 `json:"name" validate:"required,max=100"`
	Description    string                 `json:"description,omitempty"`
	FieldsTemplate map[string]interface{} `json:"fields_template,omitempty" swaggertype:"object"`
	Fields         []FieldDefinition      `json:"fields,omitempty" validate:"dive"`
}

// UpdateAssetTypeRequest replaces the description and/or the field schema.
// The name is immutable.
type UpdateAssetTypeRequest struct {
	Description    *string                `json:"description,omitempty"`
	FieldsTemplate map[string]interface{} `json:"fields_template,omitempty" swaggertype:"object"`
	Fields         []FieldDefinition      `json:"fields,omitempty" validate:"dive"`
}

// AssetTypeResponse represents an asset type
type AssetTypeResponse struct {
	ID             uuid.UUID              `json:"id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	FieldsTemplate map[string]interface{} `json:"fields_template" swaggertype:"object"`
	FieldsOrder    []string               `json:"fields_order"`
	IsActive       bool                   `json:"is_active"`
	Reactivated    bool                   `json:"reactivated,omitempty"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
}

// AssetTypeUpdateResponse reports the cascade of removed fields
type AssetTypeUpdateResponse struct {
	AssetType     AssetTypeResponse `json:"asset_type"`
	RemovedFields []string          `json:"removed_fields"`
	AssetsUpdated int64             `json:"assets_updated"`
}

// Create creates an asset type, or reactivates a deactivated one with the same name
func (s *AssetTypeService) Create(req *CreateAssetTypeRequest) (*AssetTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	name := strings.TrimSpace(req.Name)
	template, order := buildFieldSchema(req.FieldsTemplate, req.Fields)

	existing, err := s.repo.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing asset type: %w", err)
	}
	if existing != nil {
		if existing.IsActive {
			return nil, apperrors.ErrAssetTypeExists
		}
		existing.Description = req.Description
		existing.FieldsTemplate = template
		existing.FieldsOrder = order
		existing.IsActive = true
		if err := s.repo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to reactivate asset type: %w", err)
		}
		resp := toAssetTypeResponse(existing)
		resp.Reactivated = true
		return &resp, nil
	}

	assetType := &models.AssetType{
		Name:           name,
		Description:    req.Description,
		FieldsTemplate: template,
		FieldsOrder:    order,
		IsActive:       true,
	}
	if err := s.repo.Create(assetType); err != nil {
		return nil, fmt.Errorf("failed to create asset type: %w", err)
	}
	resp := toAssetTypeResponse(assetType)
	return &resp, nil
}

// GetByID retrieves an asset type
func (s *AssetTypeService) GetByID(id uuid.UUID) (*AssetTypeResponse, error) {
	assetType, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAssetTypeNotFound, "get asset type")
	}
	resp := toAssetTypeResponse(assetType)
	return &resp, nil
}

// List returns the active asset types
func (s *AssetTypeService) List() ([]AssetTypeResponse, error) {
	types, err := s.repo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list asset types: %w", err)
	}
	responses := make([]AssetTypeResponse, 0, len(types))
	for i := range types {
		responses = append(responses, toAssetTypeResponse(&types[i]))
	}
	return responses, nil
}

// Update replaces the schema; fields dropped from it are removed from the data of every asset of the type
func (s *AssetTypeService) Update(id uuid.UUID, req *UpdateAssetTypeRequest) (*AssetTypeUpdateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	if req.Description == nil && req.FieldsTemplate == nil && req.Fields == nil {
		return nil, apperrors.ErrNothingToUpdate
	}

	assetType, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAssetTypeNotFound, "get asset type")
	}

	if req.Description != nil {
		assetType.Description = *req.Description
	}
	var removed []string
	if req.FieldsTemplate != nil || req.Fields != nil {
		template, order := buildFieldSchema(req.FieldsTemplate, req.Fields)
		removed = removedFields(assetType.FieldsTemplate, template)
		assetType.FieldsTemplate = template
		assetType.FieldsOrder = order
	}

	updated, err := s.repo.UpdateWithFieldRemoval(assetType, removed)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAssetTypeNotFound, "update asset type")
	}
	if removed == nil {
		removed = []string{}
	}
	return &AssetTypeUpdateResponse{
		AssetType:     toAssetTypeResponse(assetType),
		RemovedFields: removed,
		AssetsUpdated: updated,
	}, nil
}

// Delete deactivates an asset type no asset uses
func (s *AssetTypeService) Delete(id uuid.UUID) error {
	assetType, err := s.repo.GetByID(id)
	if err != nil {
		return lookupError(err, apperrors.ErrAssetTypeNotFound, "get asset type")
	}
	count, err := s.assets.CountByType(assetType.Name)
	if err != nil {
		return fmt.Errorf("failed to count assets: %w", err)
	}
	if count > 0 {
		return apperrors.ErrAssetTypeInUse
	}
	if err := s.repo.SetActive(id, false); err != nil {
		return lookupError(err, apperrors.ErrAssetTypeNotFound, "delete asset type")
	}
	return nil
}

// buildFieldSchema returns the template and the field order with company_id always first
func buildFieldSchema(template map[string]interface{}, fields []FieldDefinition) (datatypes.JSONMap, datatypes.JSONSlice[string]) {
	out := datatypes.JSONMap{
		models.CompanyIDField: map[string]interface{}{"type": "text", "required": true},
	}
	order := []string{models.CompanyIDField}

	if len(fields) > 0 {
		for _, f := range fields {
			name := strings.TrimSpace(f.Name)
			if name == "" || name == models.CompanyIDField {
				continue
			}
			if _, dup := out[name]; dup {
				continue
			}
			out[name] = fieldConfig(f)
			order = append(order, name)
		}
		return out, order
	}

	names := make([]string, 0, len(template))
	for name := range template {
		if name != models.CompanyIDField && strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		out[name] = template[name]
		order = append(order, name)
	}
	return out, order
}

func fieldConfig(f FieldDefinition) map[string]interface{} {
	cfg := map[string]interface{}{"type": "text", "required": f.Required}
	if f.Type != "" {
		cfg["type"] = f.Type
	}
	if f.Label != "" {
		cfg["label"] = f.Label
	}
	if len(f.Options) > 0 {
		cfg["options"] = f.Options
	}
	return cfg
}

// removedFields lists the fields of previous missing from next, sorted
func removedFields(previous, next datatypes.JSONMap) []string {
	var removed []string
	for name := range previous {
		if name == models.CompanyIDField {
			continue
		}
		if _, ok := next[name]; !ok {
			removed = append(removed, name)
		}
	}
	sort.Strings(removed)
	return removed
}

func toAssetTypeResponse(t *models.AssetType) AssetTypeResponse {
	order := []string(t.FieldsOrder)
	if order == nil {
		order = []string{}
	}
	template := map[string]interface{}(t.FieldsTemplate)
	if template == nil {
		template = map[string]interface{}{}
	}
	return AssetTypeResponse{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		FieldsTemplate: template,
		FieldsOrder:    order,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt.Format(timestampLayout),
		UpdatedAt:      t.UpdatedAt.Format(timestampLayout),
	}
}
