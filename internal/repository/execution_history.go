package repository

import (
	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExecutionHistoryRepository appends and reads execution records; it never updates them
type ExecutionHistoryRepository struct {
	db *gorm.DB
}

// Ensure ExecutionHistoryRepository implements ExecutionHistoryRepositoryInterface
var _ ExecutionHistoryRepositoryInterface = (*ExecutionHistoryRepository)(nil)

// NewExecutionHistoryRepository creates a new execution history repository
func NewExecutionHistoryRepository(db *gorm.DB) *ExecutionHistoryRepository {
	return &ExecutionHistoryRepository{db: db}
}

// Append inserts a new record
func (r *ExecutionHistoryRepository) Append(record *models.ExecutionRecord) error {
	return r.db.Create(record).Error
}

// List retrieves records matching the filter, newest first
func (r *ExecutionHistoryRepository) List(filter HistoryFilter, limit, offset int) ([]models.ExecutionRecord, int64, error) {
	var records []models.ExecutionRecord
	var total int64

	if err := filter.apply(r.db.Model(&models.ExecutionRecord{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := filter.apply(r.db.Model(&models.ExecutionRecord{})).
		Order("executed_at DESC").
		Limit(limit).Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// CountByOccurrence counts the records of one occurrence
func (r *ExecutionHistoryRepository) CountByOccurrence(occurrenceID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ExecutionRecord{}).Where("occurrence_id = ?", occurrenceID).Count(&count).Error
	return count, err
}

// ChecklistResultRepository handles per-check completion outcomes
type ChecklistResultRepository struct {
	db *gorm.DB
}

// Ensure ChecklistResultRepository implements ChecklistResultRepositoryInterface
var _ ChecklistResultRepositoryInterface = (*ChecklistResultRepository)(nil)

// NewChecklistResultRepository creates a new checklist result repository
func NewChecklistResultRepository(db *gorm.DB) *ChecklistResultRepository {
	return &ChecklistResultRepository{db: db}
}

// CreateBatch inserts results; an empty batch is a no-op
func (r *ChecklistResultRepository) CreateBatch(results []models.ChecklistResult) error {
	if len(results) == 0 {
		return nil
	}
	return r.db.Create(&results).Error
}

// ListByOccurrence returns the results recorded for an occurrence
func (r *ChecklistResultRepository) ListByOccurrence(occurrenceID uuid.UUID) ([]models.ChecklistResult, error) {
	var results []models.ChecklistResult
	if err := r.db.Where("occurrence_id = ?", occurrenceID).Order("code ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
