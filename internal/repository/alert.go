package repository

import (
	"time"

	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlertRepository handles database operations for alerts
type AlertRepository struct {
	db *gorm.DB
}

// Ensure AlertRepository implements AlertRepositoryInterface
var _ AlertRepositoryInterface = (*AlertRepository)(nil)

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// Create creates a new alert
func (r *AlertRepository) Create(alert *models.Alert) error {
	return r.db.Create(alert).Error
}

// GetByID retrieves an alert by ID
func (r *AlertRepository) GetByID(id uuid.UUID) (*models.Alert, error) {
	var a models.Alert
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListVisible returns open and in-progress alerts plus those closed after closedSince,
// newest first. An empty category lists every category.
func (r *AlertRepository) ListVisible(category string, closedSince time.Time) ([]models.Alert, error) {
	var alerts []models.Alert
	q := r.db.Where("(state <> ? OR closed_at >= ?)", models.AlertClosed, closedSince)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// ListOpenByCategorySince returns open alerts of a category created at or after since
func (r *AlertRepository) ListOpenByCategorySince(category models.AlertCategory, since time.Time) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.Where("category = ? AND state = ? AND created_at >= ?", category, models.AlertOpen, since).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// ListAll returns every alert, newest first
func (r *AlertRepository) ListAll() ([]models.Alert, error) {
	var alerts []models.Alert
	if err := r.db.Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// Update saves an alert
func (r *AlertRepository) Update(alert *models.Alert) error {
	return r.db.Save(alert).Error
}

// Delete removes an alert
func (r *AlertRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Alert{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByIDs removes a set of alerts
func (r *AlertRepository) DeleteByIDs(ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.Where("id IN ?", ids).Delete(&models.Alert{})
	return res.RowsAffected, res.Error
}

// DeleteClosedBefore removes closed alerts created before cutoff
func (r *AlertRepository) DeleteClosedBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("state = ? AND created_at < ?", models.AlertClosed, cutoff).Delete(&models.Alert{})
	return res.RowsAffected, res.Error
}
