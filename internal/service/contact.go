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

// ContactService handles the address book
type ContactService struct {
	repo      repository.ContactRepositoryInterface
	validator *validator.Validate
}

// NewContactService creates a new contact service
func NewContactService(repo repository.ContactRepositoryInterface, validator *validator.Validate) *ContactService {
	return &ContactService{repo: repo, validator: validator}
}

// Ensure ContactService implements ContactServiceInterface
var _ ContactServiceInterface = (*ContactService)(nil)

// CreateContactCategoryRequest represents the request to create a contact category
type CreateContactCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty" validate:"max=50"`
	Color       string `json:"color,omitempty" validate:"max=20"`
}

// ContactRequest is used for both create and full update of a contact
type ContactRequest struct {
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	Name       string    `json:"name" validate:"required,max=200"`
	Company    string    `json:"company,omitempty" validate:"max=200"`
	Role       string    `json:"role,omitempty" validate:"max=100"`
	Phone      string    `json:"phone,omitempty" validate:"max=50"`
	Email      string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Address    string    `json:"address,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Priority   int       `json:"priority,omitempty"`
}

// CreateCategory creates a contact category with a unique name
func (s *ContactService) CreateCategory(req *CreateContactCategoryRequest) (*models.ContactCategory, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	name := strings.TrimSpace(req.Name)
	existing, err := s.repo.GetCategoryByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrContactCategoryExists
	}

	category := &models.ContactCategory{
		Name:        name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
	if err := s.repo.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create contact category: %w", err)
	}
	return category, nil
}

// ListCategories returns all categories by name
func (s *ContactService) ListCategories() ([]models.ContactCategory, error) {
	categories, err := s.repo.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list contact categories: %w", err)
	}
	return categories, nil
}

// Create adds a contact to an existing category
func (s *ContactService) Create(req *ContactRequest) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	if _, err := s.repo.GetCategoryByID(req.CategoryID); err != nil {
		return nil, lookupError(err, apperrors.ErrContactCategoryNotFound, "get contact category")
	}

	contact := &models.Contact{IsActive: true}
	applyContactRequest(contact, req)
	if err := s.repo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

// GetByID retrieves an active contact
func (s *ContactService) GetByID(id uuid.UUID) (*models.Contact, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrContactNotFound, "get contact")
	}
	return contact, nil
}

// List returns active contacts, optionally by category and free-text query
func (s *ContactService) List(categoryID *uuid.UUID, query string) ([]models.Contact, error) {
	contacts, err := s.repo.List(categoryID, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// Update replaces the fields of a contact
func (s *ContactService) Update(id uuid.UUID, req *ContactRequest) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	contact, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrContactNotFound, "get contact")
	}
	if req.CategoryID != contact.CategoryID {
		if _, err := s.repo.GetCategoryByID(req.CategoryID); err != nil {
			return nil, lookupError(err, apperrors.ErrContactCategoryNotFound, "get contact category")
		}
	}

	applyContactRequest(contact, req)
	if err := s.repo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

// Delete deactivates a contact
func (s *ContactService) Delete(id uuid.UUID) error {
	if err := s.repo.Deactivate(id); err != nil {
		return lookupError(err, apperrors.ErrContactNotFound, "delete contact")
	}
	return nil
}

func applyContactRequest(c *models.Contact, req *ContactRequest) {
	c.CategoryID = req.CategoryID
	c.Name = strings.TrimSpace(req.Name)
	c.Company = strings.TrimSpace(req.Company)
	c.Role = strings.TrimSpace(req.Role)
	c.Phone = strings.TrimSpace(req.Phone)
	c.Email = strings.TrimSpace(req.Email)
	c.Address = req.Address
	c.Notes = req.Notes
	c.Priority = req.Priority
}
