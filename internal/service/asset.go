package service

import (
	"errors"
	"fmt"
	"strings"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssetService handles business logic for assets
type AssetService struct {
	repo      repository.AssetRepositoryInterface
	locations repository.LocationRepositoryInterface
	validator *validator.Validate
}

// NewAssetService creates a new asset service
func NewAssetService(repo repository.AssetRepositoryInterface, locations repository.LocationRepositoryInterface, validator *validator.Validate) *AssetService {
	return &AssetService{repo: repo, locations: locations, validator: validator}
}

// Ensure AssetService implements AssetServiceInterface
var _ AssetServiceInterface = (*AssetService)(nil)

// CreateAssetRequest represents the request to create an asset
type CreateAssetRequest struct {
	CompanyID      string                 `json:"company_id" validate:"required,max=100"`
	Type           string                 `json:"type" validate:"required,max=100"`
	LocationNumber string                 `json:"location_number" validate:"required,max=50"`
	Data           map[string]interface{} `json:"data,omitempty" swaggertype:"object"`
	TechnicalDoc   string                 `json:"technical_doc,omitempty" validate:"max=255"`
	PositionX      *int                   `json:"position_x,omitempty"`
	PositionY      *int                   `json:"position_y,omitempty"`
}

// UpdateAssetRequest is a partial update; Data is merged into the stored data
type UpdateAssetRequest struct {
	Type           *string                `json:"type,omitempty" validate:"omitempty,min=1,max=100"`
	LocationNumber *string                `json:"location_number,omitempty" validate:"omitempty,min=1,max=50"`
	Data           map[string]interface{} `json:"data,omitempty" swaggertype:"object"`
	TechnicalDoc   *string                `json:"technical_doc,omitempty" validate:"omitempty,max=255"`
	PositionX      *int                   `json:"position_x,omitempty"`
	PositionY      *int                   `json:"position_y,omitempty"`
}

// Create creates a new asset at an existing location
func (s *AssetService) Create(req *CreateAssetRequest) (*models.Asset, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	companyID := strings.TrimSpace(req.CompanyID)

	if _, err := s.locations.GetByNumber(req.LocationNumber); err != nil {
		return nil, lookupError(err, apperrors.ErrLocationNotFound, "verify location")
	}
	existing, err := s.repo.GetByCompanyID(companyID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing asset: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAssetExists
	}

	data := datatypes.JSONMap{}
	for k, v := range req.Data {
		data[k] = v
	}
	data[models.CompanyIDField] = companyID

	asset := &models.Asset{
		CompanyID:      companyID,
		Type:           strings.TrimSpace(req.Type),
		LocationNumber: req.LocationNumber,
		Data:           data,
		TechnicalDoc:   req.TechnicalDoc,
		PositionX:      req.PositionX,
		PositionY:      req.PositionY,
	}
	if err := s.repo.Create(asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return asset, nil
}

// GetByCompanyID retrieves an asset
func (s *AssetService) GetByCompanyID(companyID string) (*models.Asset, error) {
	asset, err := s.repo.GetByCompanyID(companyID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAssetNotFound, "get asset")
	}
	return asset, nil
}

// List returns assets filtered by location and type
func (s *AssetService) List(locationNumber, assetType string) ([]models.Asset, error) {
	assets, err := s.repo.List(repository.AssetFilter{
		LocationNumber: strings.TrimSpace(locationNumber),
		Type:           strings.TrimSpace(assetType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// Update applies a partial update
func (s *AssetService) Update(companyID string, req *UpdateAssetRequest) (*models.Asset, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	asset, err := s.repo.GetByCompanyID(companyID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAssetNotFound, "get asset")
	}

	changed := false
	if req.Type != nil {
		asset.Type = strings.TrimSpace(*req.Type)
		changed = true
	}
	if req.LocationNumber != nil {
		if _, err := s.locations.GetByNumber(*req.LocationNumber); err != nil {
			return nil, lookupError(err, apperrors.ErrLocationNotFound, "verify location")
		}
		asset.LocationNumber = *req.LocationNumber
		changed = true
	}
	if req.TechnicalDoc != nil {
		asset.TechnicalDoc = *req.TechnicalDoc
		changed = true
	}
	if req.PositionX != nil {
		asset.PositionX = req.PositionX
		changed = true
	}
	if req.PositionY != nil {
		asset.PositionY = req.PositionY
		changed = true
	}
	if len(req.Data) > 0 {
		if asset.Data == nil {
			asset.Data = datatypes.JSONMap{}
		}
		for k, v := range req.Data {
			if k == models.CompanyIDField {
				continue
			}
			asset.Data[k] = v
		}
		changed = true
	}
	if !changed {
		return nil, apperrors.ErrNothingToUpdate
	}

	if err := s.repo.Update(asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}
	return asset, nil
}

// Delete removes an asset
func (s *AssetService) Delete(companyID string) error {
	if err := s.repo.Delete(companyID); err != nil {
		return lookupError(err, apperrors.ErrAssetNotFound, "delete asset")
	}
	return nil
}

// DeleteOrphans removes assets whose location no longer exists
func (s *AssetService) DeleteOrphans() (int64, error) {
	removed, err := s.repo.DeleteOrphans()
	if err != nil {
		return 0, fmt.Errorf("failed to delete orphan assets: %w", err)
	}
	return removed, nil
}
