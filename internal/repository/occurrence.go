package repository

import (
	"errors"
	"time"

	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OccurrenceRepository handles database operations for scheduled occurrences
type OccurrenceRepository struct {
	db *gorm.DB
}

// Ensure OccurrenceRepository implements OccurrenceRepositoryInterface
var _ OccurrenceRepositoryInterface = (*OccurrenceRepository)(nil)

// NewOccurrenceRepository creates a new occurrence repository
func NewOccurrenceRepository(db *gorm.DB) *OccurrenceRepository {
	return &OccurrenceRepository{db: db}
}

// Create creates a new occurrence
func (r *OccurrenceRepository) Create(occurrence *models.Occurrence) error {
	return r.db.Create(occurrence).Error
}

// GetByID retrieves an occurrence by ID
func (r *OccurrenceRepository) GetByID(id uuid.UUID) (*models.Occurrence, error) {
	var o models.Occurrence
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetForUpdate retrieves an occurrence and locks its row until the transaction ends.
// Only meaningful inside a transaction.
func (r *OccurrenceRepository) GetForUpdate(id uuid.UUID) (*models.Occurrence, error) {
	var o models.Occurrence
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List retrieves occurrences matching the filter with pagination
func (r *OccurrenceRepository) List(filter OccurrenceFilter, limit, offset int) ([]models.Occurrence, int64, error) {
	var occurrences []models.Occurrence
	var total int64

	if err := filter.apply(r.db.Model(&models.Occurrence{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := filter.apply(r.db.Model(&models.Occurrence{})).
		Order("due_date ASC, location_number ASC, asset_id ASC").
		Limit(limit).Offset(offset).
		Find(&occurrences).Error
	if err != nil {
		return nil, 0, err
	}
	return occurrences, total, nil
}

// ListScheduled returns every scheduled occurrence, optionally due on or before dueBefore
func (r *OccurrenceRepository) ListScheduled(dueBefore *time.Time) ([]models.Occurrence, error) {
	var occurrences []models.Occurrence
	q := r.db.Where("state = ?", models.OccurrenceScheduled)
	if dueBefore != nil {
		q = q.Where("due_date <= ?", *dueBefore)
	}
	if err := q.Order("due_date ASC, location_number ASC, asset_id ASC").Find(&occurrences).Error; err != nil {
		return nil, err
	}
	return occurrences, nil
}

// ListGroup returns the scheduled occurrences sharing location, asset and due date
func (r *OccurrenceRepository) ListGroup(locationNumber, assetID string, dueDate time.Time) ([]models.Occurrence, error) {
	var occurrences []models.Occurrence
	err := r.db.Where("location_number = ? AND asset_id = ? AND due_date = ? AND state = ?",
		locationNumber, assetID, dueDate, models.OccurrenceScheduled).
		Order("created_at ASC").
		Find(&occurrences).Error
	if err != nil {
		return nil, err
	}
	return occurrences, nil
}

// LatestScheduledDueDate returns the furthest scheduled due date of an asset, nil if none
func (r *OccurrenceRepository) LatestScheduledDueDate(locationNumber, assetID string) (*time.Time, error) {
	var o models.Occurrence
	err := r.db.Select("due_date").
		Where("location_number = ? AND asset_id = ? AND state = ?", locationNumber, assetID, models.OccurrenceScheduled).
		Order("due_date DESC").
		Take(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o.DueDate, nil
}

// CountScheduledByMaintenanceType counts scheduled occurrences referencing a maintenance type
func (r *OccurrenceRepository) CountScheduledByMaintenanceType(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Occurrence{}).
		Where("maintenance_type_id = ? AND state = ?", id, models.OccurrenceScheduled).
		Count(&count).Error
	return count, err
}

// Update saves an occurrence
func (r *OccurrenceRepository) Update(occurrence *models.Occurrence) error {
	return r.db.Save(occurrence).Error
}

// Delete removes an occurrence regardless of its state
func (r *OccurrenceRepository) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&models.Occurrence{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// DeleteByIDs removes a set of occurrences
func (r *OccurrenceRepository) DeleteByIDs(ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.Where("id IN ?", ids).Delete(&models.Occurrence{})
	return res.RowsAffected, res.Error
}

// DeleteCompletedBefore removes completed occurrences older than cutoff
func (r *OccurrenceRepository) DeleteCompletedBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("state = ? AND completed_at < ?", models.OccurrenceCompleted, cutoff).
		Delete(&models.Occurrence{})
	return res.RowsAffected, res.Error
}
