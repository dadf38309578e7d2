package service

import (
	"errors"
	"fmt"
	"strings"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// LocationService handles business logic for locations
type LocationService struct {
	repo      repository.LocationRepositoryInterface
	validator *validator.Validate
}

// NewLocationService creates a new location service
func NewLocationService(repo repository.LocationRepositoryInterface, validator *validator.Validate) *LocationService {
	return &LocationService{repo: repo, validator: validator}
}

// Ensure LocationService implements LocationServiceInterface
var _ LocationServiceInterface = (*LocationService)(nil)

// CreateLocationRequest represents the request to create a location
type CreateLocationRequest struct {
	Number      string `json:"number" validate:"required,max=50"`
	Description string `json:"description,omitempty"`
}

// UpdateLocationRequest represents the request to update a location
type UpdateLocationRequest struct {
	Description *string `json:"description"`
}

// DeleteLocationResponse reports the cascade of a location delete
type DeleteLocationResponse struct {
	Number        string `json:"number"`
	AssetsRemoved int64  `json:"assets_removed"`
}

// Create creates a new location
func (s *LocationService) Create(req *CreateLocationRequest) (*models.Location, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	number := strings.TrimSpace(req.Number)

	existing, err := s.repo.GetByNumber(number)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing location: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrLocationExists
	}

	location := &models.Location{Number: number, Description: req.Description}
	if err := s.repo.Create(location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

// GetByNumber retrieves a location
func (s *LocationService) GetByNumber(number string) (*models.Location, error) {
	location, err := s.repo.GetByNumber(number)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrLocationNotFound, "get location")
	}
	return location, nil
}

// List returns locations, optionally only those hosting an asset whose id contains assetFilter
func (s *LocationService) List(assetFilter string) ([]models.Location, error) {
	locations, err := s.repo.List(strings.TrimSpace(assetFilter))
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// Update changes the description of a location
func (s *LocationService) Update(number string, req *UpdateLocationRequest) (*models.Location, error) {
	if req.Description == nil {
		return nil, apperrors.ErrNothingToUpdate
	}
	if err := s.repo.UpdateDescription(number, *req.Description); err != nil {
		return nil, lookupError(err, apperrors.ErrLocationNotFound, "update location")
	}
	return s.GetByNumber(number)
}

// Delete removes a location and its assets
func (s *LocationService) Delete(number string) (*DeleteLocationResponse, error) {
	removed, err := s.repo.Delete(number)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrLocationNotFound, "delete location")
	}
	return &DeleteLocationResponse{Number: number, AssetsRemoved: removed}, nil
}
