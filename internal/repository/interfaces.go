package repository

import (
	"time"

	"gestman-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByNumber(number string) (*models.Location, error)
	List(assetFilter string) ([]models.Location, error)
	UpdateDescription(number, description string) error
	Delete(number string) (int64, error)
}

// AssetRepositoryInterface defines the interface for asset repository operations
type AssetRepositoryInterface interface {
	Create(asset *models.Asset) error
	GetByCompanyID(companyID string) (*models.Asset, error)
	List(filter AssetFilter) ([]models.Asset, error)
	ListByType(assetType string) ([]models.Asset, error)
	CountByType(assetType string) (int64, error)
	DistinctTypes() ([]string, error)
	Update(asset *models.Asset) error
	Delete(companyID string) error
	DeleteOrphans() (int64, error)
}

// AssetTypeRepositoryInterface defines the interface for asset type repository operations
type AssetTypeRepositoryInterface interface {
	Create(assetType *models.AssetType) error
	GetByID(id uuid.UUID) (*models.AssetType, error)
	GetByName(name string) (*models.AssetType, error)
	ListActive() ([]models.AssetType, error)
	Update(assetType *models.AssetType) error
	UpdateWithFieldRemoval(assetType *models.AssetType, removed []string) (int64, error)
	SetActive(id uuid.UUID, active bool) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// UserNoteRepositoryInterface defines the interface for per-user notes
type UserNoteRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.UserNote, error)
	Upsert(note *models.UserNote) error
	DeleteByUserID(userID uuid.UUID) error
}

// ContactRepositoryInterface defines the interface for address-book operations
type ContactRepositoryInterface interface {
	CreateCategory(category *models.ContactCategory) error
	GetCategoryByID(id uuid.UUID) (*models.ContactCategory, error)
	GetCategoryByName(name string) (*models.ContactCategory, error)
	ListCategories() ([]models.ContactCategory, error)
	Create(contact *models.Contact) error
	GetByID(id uuid.UUID) (*models.Contact, error)
	List(categoryID *uuid.UUID, query string) ([]models.Contact, error)
	Update(contact *models.Contact) error
	Deactivate(id uuid.UUID) error
}

// MaintenanceTypeRepositoryInterface defines the interface for the legacy maintenance catalog
type MaintenanceTypeRepositoryInterface interface {
	Create(maintenanceType *models.MaintenanceType) error
	GetByID(id uuid.UUID) (*models.MaintenanceType, error)
	GetByName(assetType, name string) (*models.MaintenanceType, error)
	List(assetType string) ([]models.MaintenanceType, error)
	GetByIDs(ids []uuid.UUID) ([]models.MaintenanceType, error)
	Delete(id uuid.UUID) error
}

// ChecklistItemRepositoryInterface defines the interface for checklist item operations
type ChecklistItemRepositoryInterface interface {
	Create(item *models.ChecklistItem) error
	GetByID(id uuid.UUID) (*models.ChecklistItem, error)
	GetByIDs(ids []uuid.UUID) ([]models.ChecklistItem, error)
	ListActiveByAssetType(assetType string) ([]models.ChecklistItem, error)
	MaxDisplayOrder(assetType string) (int, error)
	Updates(id uuid.UUID, updates map[string]interface{}) error
	Deactivate(id uuid.UUID) error
}

// OccurrenceRepositoryInterface defines the interface for occurrence operations
type OccurrenceRepositoryInterface interface {
	Create(occurrence *models.Occurrence) error
	GetByID(id uuid.UUID) (*models.Occurrence, error)
	GetForUpdate(id uuid.UUID) (*models.Occurrence, error)
	List(filter OccurrenceFilter, limit, offset int) ([]models.Occurrence, int64, error)
	ListScheduled(dueBefore *time.Time) ([]models.Occurrence, error)
	ListGroup(locationNumber, assetID string, dueDate time.Time) ([]models.Occurrence, error)
	LatestScheduledDueDate(locationNumber, assetID string) (*time.Time, error)
	CountScheduledByMaintenanceType(id uuid.UUID) (int64, error)
	Update(occurrence *models.Occurrence) error
	Delete(id uuid.UUID) (int64, error)
	DeleteByIDs(ids []uuid.UUID) (int64, error)
	DeleteCompletedBefore(cutoff time.Time) (int64, error)
}

// ExecutionHistoryRepositoryInterface is append-only
type ExecutionHistoryRepositoryInterface interface {
	Append(record *models.ExecutionRecord) error
	List(filter HistoryFilter, limit, offset int) ([]models.ExecutionRecord, int64, error)
	CountByOccurrence(occurrenceID uuid.UUID) (int64, error)
}

// ChecklistResultRepositoryInterface defines the interface for checklist result operations
type ChecklistResultRepositoryInterface interface {
	CreateBatch(results []models.ChecklistResult) error
	ListByOccurrence(occurrenceID uuid.UUID) ([]models.ChecklistResult, error)
}

// ScheduleStoreInterface groups the schedule repositories that must change together
type ScheduleStoreInterface interface {
	Occurrences() OccurrenceRepositoryInterface
	History() ExecutionHistoryRepositoryInterface
	Results() ChecklistResultRepositoryInterface
	Transaction(fn func(store ScheduleStoreInterface) error) error
}

// AlertRepositoryInterface defines the interface for alert operations
type AlertRepositoryInterface interface {
	Create(alert *models.Alert) error
	GetByID(id uuid.UUID) (*models.Alert, error)
	ListVisible(category string, closedSince time.Time) ([]models.Alert, error)
	ListOpenByCategorySince(category models.AlertCategory, since time.Time) ([]models.Alert, error)
	ListAll() ([]models.Alert, error)
	Update(alert *models.Alert) error
	Delete(id uuid.UUID) error
	DeleteByIDs(ids []uuid.UUID) (int64, error)
	DeleteClosedBefore(cutoff time.Time) (int64, error)
}

// InventoryRepositoryInterface defines the interface for spare-part stock operations
type InventoryRepositoryInterface interface {
	Create(item *models.InventoryItem, initial *models.StockMovement) error
	GetByID(id uuid.UUID) (*models.InventoryItem, error)
	GetByPartCode(assetType, partCode string) (*models.InventoryItem, error)
	List(filter InventoryFilter) ([]models.InventoryItem, error)
	ListByPartCodes(codes []string) ([]models.InventoryItem, error)
	ListPartCodes() ([]string, error)
	Update(item *models.InventoryItem) error
	ApplyMovement(id uuid.UUID, apply MovementFunc) (*models.InventoryItem, *models.StockMovement, error)
	ListMovements(itemID uuid.UUID) ([]models.StockMovement, error)
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for messaging configuration and delivery log
type NotificationRepositoryInterface interface {
	GetSettings() (*models.MessagingSettings, error)
	SaveSettings(settings *models.MessagingSettings) error
	ListChannels(activeOnly bool) ([]models.NotificationChannel, error)
	GetChannel(id uuid.UUID) (*models.NotificationChannel, error)
	CreateChannel(channel *models.NotificationChannel) error
	UpdateChannel(channel *models.NotificationChannel) error
	DeleteChannel(id uuid.UUID) error
	CreateDeliveryLog(entry *models.DeliveryLog) error
	ListDeliveryLogs(limit int) ([]models.DeliveryLog, error)
}

// FormRepositoryInterface defines the interface for dynamic form operations
type FormRepositoryInterface interface {
	CreateTemplate(template *models.FormTemplate) error
	GetTemplate(id uuid.UUID) (*models.FormTemplate, error)
	GetTemplateByName(name string) (*models.FormTemplate, error)
	ListTemplates(activeOnly bool) ([]models.FormTemplate, error)
	UpdateTemplate(template *models.FormTemplate) error
	DeleteTemplate(id uuid.UUID) error
	CreateField(field *models.FormField) error
	GetField(id uuid.UUID) (*models.FormField, error)
	ListFields(templateID uuid.UUID) ([]models.FormField, error)
	UpdateField(field *models.FormField) error
	DeleteField(id uuid.UUID) error
	CreateSubmission(submission *models.FormSubmission) error
	ListSubmissions(filter SubmissionFilter, limit, offset int) ([]models.FormSubmission, int64, error)
	DeleteSubmissionsByIDs(ids []uuid.UUID) (int64, error)
	DeleteSubmissionsBefore(cutoff time.Time) (int64, error)
}
