package repository

import (
	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository handles database operations for the address book
type ContactRepository struct {
	db *gorm.DB
}

// Ensure ContactRepository implements ContactRepositoryInterface
var _ ContactRepositoryInterface = (*ContactRepository)(nil)

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) CreateCategory(category *models.ContactCategory) error {
	return r.db.Create(category).Error
}

func (r *ContactRepository) GetCategoryByID(id uuid.UUID) (*models.ContactCategory, error) {
	var c models.ContactCategory
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContactRepository) GetCategoryByName(name string) (*models.ContactCategory, error) {
	var c models.ContactCategory
	if err := r.db.First(&c, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContactRepository) ListCategories() ([]models.ContactCategory, error) {
	var categories []models.ContactCategory
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *ContactRepository) GetByID(id uuid.UUID) (*models.Contact, error) {
	var c models.Contact
	if err := r.db.First(&c, "id = ? AND is_active = ?", id, true).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns active contacts, by priority then name
func (r *ContactRepository) List(categoryID *uuid.UUID, query string) ([]models.Contact, error) {
	var contacts []models.Contact
	q := r.db.Where("is_active = ?", true)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name ILIKE ? OR company ILIKE ? OR role ILIKE ?", like, like, like)
	}
	if err := q.Order("priority DESC, name ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Deactivate soft-deletes a contact
func (r *ContactRepository) Deactivate(id uuid.UUID) error {
	res := r.db.Model(&models.Contact{}).Where("id = ? AND is_active = ?", id, true).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
