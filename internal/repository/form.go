package repository

import (
	"time"

	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormRepository handles dynamic form templates, fields and submissions
type FormRepository struct {
	db *gorm.DB
}

// Ensure FormRepository implements FormRepositoryInterface
var _ FormRepositoryInterface = (*FormRepository)(nil)

// NewFormRepository creates a new form repository
func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{db: db}
}

func (r *FormRepository) CreateTemplate(template *models.FormTemplate) error {
	return r.db.Create(template).Error
}

// GetTemplate retrieves a template with its fields in display order
func (r *FormRepository) GetTemplate(id uuid.UUID) (*models.FormTemplate, error) {
	var t models.FormTemplate
	err := r.db.Preload("Fields", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *FormRepository) GetTemplateByName(name string) (*models.FormTemplate, error) {
	var t models.FormTemplate
	if err := r.db.First(&t, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *FormRepository) ListTemplates(activeOnly bool) ([]models.FormTemplate, error) {
	var templates []models.FormTemplate
	q := r.db.Model(&models.FormTemplate{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Order("name ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *FormRepository) UpdateTemplate(template *models.FormTemplate) error {
	return r.db.Omit("Fields").Save(template).Error
}

// DeleteTemplate removes a template and its fields; submissions are kept
func (r *FormRepository) DeleteTemplate(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", id).Delete(&models.FormField{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.FormTemplate{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *FormRepository) CreateField(field *models.FormField) error {
	return r.db.Create(field).Error
}

func (r *FormRepository) GetField(id uuid.UUID) (*models.FormField, error) {
	var f models.FormField
	if err := r.db.First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FormRepository) ListFields(templateID uuid.UUID) ([]models.FormField, error) {
	var fields []models.FormField
	if err := r.db.Where("template_id = ?", templateID).Order("display_order ASC").Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *FormRepository) UpdateField(field *models.FormField) error {
	return r.db.Save(field).Error
}

func (r *FormRepository) DeleteField(id uuid.UUID) error {
	res := r.db.Delete(&models.FormField{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FormRepository) CreateSubmission(submission *models.FormSubmission) error {
	return r.db.Create(submission).Error
}

// ListSubmissions returns submissions matching the filter, newest first
func (r *FormRepository) ListSubmissions(filter SubmissionFilter, limit, offset int) ([]models.FormSubmission, int64, error) {
	var submissions []models.FormSubmission
	var total int64

	apply := func(q *gorm.DB) *gorm.DB {
		if filter.TemplateID != nil {
			q = q.Where("template_id = ?", *filter.TemplateID)
		}
		if filter.LocationNumber != "" {
			q = q.Where("location_number = ?", filter.LocationNumber)
		}
		if filter.AssetID != "" {
			q = q.Where("asset_id = ?", filter.AssetID)
		}
		return q
	}

	if err := apply(r.db.Model(&models.FormSubmission{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := apply(r.db.Model(&models.FormSubmission{})).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&submissions).Error
	if err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

func (r *FormRepository) DeleteSubmissionsByIDs(ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.Where("id IN ?", ids).Delete(&models.FormSubmission{})
	return res.RowsAffected, res.Error
}

// DeleteSubmissionsBefore removes submissions created before cutoff
func (r *FormRepository) DeleteSubmissionsBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&models.FormSubmission{})
	return res.RowsAffected, res.Error
}
