package repository

import (
	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserNoteRepository stores the personal notes of each user
type UserNoteRepository struct {
	db *gorm.DB
}

var _ UserNoteRepositoryInterface = (*UserNoteRepository)(nil)

// NewUserNoteRepository creates a new user note repository
func NewUserNoteRepository(db *gorm.DB) *UserNoteRepository {
	return &UserNoteRepository{db: db}
}

// GetByUserID returns the note row of a user, gorm.ErrRecordNotFound when none was saved yet
func (r *UserNoteRepository) GetByUserID(userID uuid.UUID) (*models.UserNote, error) {
	var note models.UserNote
	if err := r.db.First(&note, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// Upsert inserts the note or overwrites the text of the existing one
func (r *UserNoteRepository) Upsert(note *models.UserNote) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"notes", "updated_at"}),
	}).Create(note).Error
}

// DeleteByUserID removes the note of a user, if any
func (r *UserNoteRepository) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserNote{}).Error
}
