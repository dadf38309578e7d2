package service

import (
	"errors"
	"fmt"
	"strings"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService manages the checklist items and the legacy maintenance catalog
type CatalogService struct {
	checklist   repository.ChecklistItemRepositoryInterface
	maintenance repository.MaintenanceTypeRepositoryInterface
	occurrences repository.OccurrenceRepositoryInterface
	assetTypes  repository.AssetTypeRepositoryInterface
	assets      repository.AssetRepositoryInterface
	validator   *validator.Validate
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	checklist repository.ChecklistItemRepositoryInterface,
	maintenance repository.MaintenanceTypeRepositoryInterface,
	occurrences repository.OccurrenceRepositoryInterface,
	assetTypes repository.AssetTypeRepositoryInterface,
	assets repository.AssetRepositoryInterface,
	validator *validator.Validate,
) *CatalogService {
	return &CatalogService{
		checklist:   checklist,
		maintenance: maintenance,
		occurrences: occurrences,
		assetTypes:  assetTypes,
		assets:      assets,
		validator:   validator,
	}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// CreateMaintenanceTypeRequest represents the request to create a maintenance type
type CreateMaintenanceTypeRequest struct {
	AssetType       string `json:"asset_type" validate:"required,max=100"`
	Name            string `json:"name" validate:"required,max=200"`
	Description     string `json:"description,omitempty"`
	FrequencyMonths int    `json:"frequency_months" validate:"required,min=1,max=120"`
	LeadTimeDays    int    `json:"lead_time_days" validate:"min=0,max=365"`
}

// CreateChecklistItemRequest represents the request to create a checklist item
type CreateChecklistItemRequest struct {
	AssetType   string `json:"asset_type" validate:"required,max=100"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty"`
}

// UpdateChecklistItemRequest represents a partial checklist item update
type UpdateChecklistItemRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,min=0"`
}

// ListMaintenanceTypes lists the catalog, optionally for one asset type
func (s *CatalogService) ListMaintenanceTypes(assetType string) ([]models.MaintenanceType, error) {
	types, err := s.maintenance.List(strings.TrimSpace(assetType))
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance types: %w", err)
	}
	return types, nil
}

// CreateMaintenanceType adds a legacy catalog entry
func (s *CatalogService) CreateMaintenanceType(req *CreateMaintenanceTypeRequest) (*models.MaintenanceType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}

	existing, err := s.maintenance.GetByName(req.AssetType, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing maintenance type: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMaintenanceTypeExists
	}

	mt := &models.MaintenanceType{
		AssetType:       req.AssetType,
		Name:            req.Name,
		Description:     req.Description,
		FrequencyMonths: req.FrequencyMonths,
		LeadTimeDays:    req.LeadTimeDays,
		IsActive:        true,
	}
	if err := s.maintenance.Create(mt); err != nil {
		return nil, fmt.Errorf("failed to create maintenance type: %w", err)
	}
	return mt, nil
}

// DeleteMaintenanceType removes a catalog entry no scheduled occurrence uses
func (s *CatalogService) DeleteMaintenanceType(id uuid.UUID) error {
	if _, err := s.maintenance.GetByID(id); err != nil {
		return lookupError(err, apperrors.ErrMaintenanceTypeNotFound, "get maintenance type")
	}
	inUse, err := s.occurrences.CountScheduledByMaintenanceType(id)
	if err != nil {
		return fmt.Errorf("failed to count occurrences: %w", err)
	}
	if inUse > 0 {
		return apperrors.ErrMaintenanceTypeInUse
	}
	if err := s.maintenance.Delete(id); err != nil {
		return lookupError(err, apperrors.ErrMaintenanceTypeNotFound, "delete maintenance type")
	}
	return nil
}

// ListChecklistItems lists the active checks of an asset type
func (s *CatalogService) ListChecklistItems(assetType string) ([]models.ChecklistItem, error) {
	assetType = strings.TrimSpace(assetType)
	if assetType == "" {
		return nil, apperrors.NewValidationError("asset_type", "asset_type is required")
	}
	items, err := s.checklist.ListActiveByAssetType(assetType)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	return items, nil
}

// CreateChecklistItem appends a check to the asset type checklist
func (s *CatalogService) CreateChecklistItem(req *CreateChecklistItemRequest) (*models.ChecklistItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	if err := s.requireAssetType(req.AssetType); err != nil {
		return nil, err
	}

	order, err := s.checklist.MaxDisplayOrder(req.AssetType)
	if err != nil {
		return nil, fmt.Errorf("failed to read display order: %w", err)
	}

	item := &models.ChecklistItem{
		AssetType:    req.AssetType,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		DisplayOrder: order + 1,
		IsActive:     true,
	}
	if err := s.checklist.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create checklist item: %w", err)
	}
	return item, nil
}

// UpdateChecklistItem changes name, description or order of a check
func (s *CatalogService) UpdateChecklistItem(id uuid.UUID, req *UpdateChecklistItemRequest) (*models.ChecklistItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrNothingToUpdate
	}

	if err := s.checklist.Updates(id, updates); err != nil {
		return nil, lookupError(err, apperrors.ErrChecklistItemNotFound, "update checklist item")
	}
	item, err := s.checklist.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrChecklistItemNotFound, "get checklist item")
	}
	return item, nil
}

// DeleteChecklistItem deactivates a check; scheduled occurrences keep pointing to it
func (s *CatalogService) DeleteChecklistItem(id uuid.UUID) error {
	if err := s.checklist.Deactivate(id); err != nil {
		return lookupError(err, apperrors.ErrChecklistItemNotFound, "delete checklist item")
	}
	return nil
}

// requireAssetType accepts a type declared in the reference schema or used by an asset
func (s *CatalogService) requireAssetType(name string) error {
	t, err := s.assetTypes.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check asset type: %w", err)
	}
	if t != nil && t.IsActive {
		return nil
	}
	count, err := s.assets.CountByType(name)
	if err != nil {
		return fmt.Errorf("failed to count assets: %w", err)
	}
	if count == 0 {
		return apperrors.ErrAssetTypeNotFound
	}
	return nil
}
