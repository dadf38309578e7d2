package repository

import (
	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles messaging settings, channels and the delivery log
type NotificationRepository struct {
	db *gorm.DB
}

// Ensure NotificationRepository implements NotificationRepositoryInterface
var _ NotificationRepositoryInterface = (*NotificationRepository)(nil)

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// GetSettings returns the active messaging settings
func (r *NotificationRepository) GetSettings() (*models.MessagingSettings, error) {
	var s models.MessagingSettings
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSettings deactivates the previous settings and stores the new ones
func (r *NotificationRepository) SaveSettings(settings *models.MessagingSettings) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MessagingSettings{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
			return err
		}
		settings.IsActive = true
		return tx.Create(settings).Error
	})
}

// ListChannels returns notification channels ordered by name
func (r *NotificationRepository) ListChannels(activeOnly bool) ([]models.NotificationChannel, error) {
	var channels []models.NotificationChannel
	q := r.db.Model(&models.NotificationChannel{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Order("name ASC").Find(&channels).Error; err != nil {
		return nil, err
	}
	return channels, nil
}

func (r *NotificationRepository) GetChannel(id uuid.UUID) (*models.NotificationChannel, error) {
	var c models.NotificationChannel
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *NotificationRepository) CreateChannel(channel *models.NotificationChannel) error {
	return r.db.Create(channel).Error
}

func (r *NotificationRepository) UpdateChannel(channel *models.NotificationChannel) error {
	return r.db.Save(channel).Error
}

func (r *NotificationRepository) DeleteChannel(id uuid.UUID) error {
	res := r.db.Delete(&models.NotificationChannel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateDeliveryLog records one delivery attempt
func (r *NotificationRepository) CreateDeliveryLog(entry *models.DeliveryLog) error {
	return r.db.Create(entry).Error
}

// ListDeliveryLogs returns the most recent attempts
func (r *NotificationRepository) ListDeliveryLogs(limit int) ([]models.DeliveryLog, error) {
	var logs []models.DeliveryLog
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
