package service

import (
	"context"

	"gestman-backend/internal/database/models"
	"gestman-backend/internal/notify"
	"gestman-backend/internal/schedule"
	"gestman-backend/internal/telegram"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MessengerInterface is the outbound chat bot API
type MessengerInterface interface {
	GetMe(ctx context.Context, token string) (*telegram.BotInfo, error)
	SendMessage(ctx context.Context, token, chatID, text string) error
}

// AlertNotifier delivers an alert to every matching channel.
// Delivery failures are logged and reported, never returned as errors.
type AlertNotifier interface {
	FanOut(ctx context.Context, msg notify.Message) *FanOutResult
}

// LocationServiceInterface defines the interface for location service
type LocationServiceInterface interface {
	Create(req *CreateLocationRequest) (*models.Location, error)
	GetByNumber(number string) (*models.Location, error)
	List(assetFilter string) ([]models.Location, error)
	Update(number string, req *UpdateLocationRequest) (*models.Location, error)
	Delete(number string) (*DeleteLocationResponse, error)
}

// AssetServiceInterface defines the interface for asset service
type AssetServiceInterface interface {
	Create(req *CreateAssetRequest) (*models.Asset, error)
	GetByCompanyID(companyID string) (*models.Asset, error)
	List(locationNumber, assetType string) ([]models.Asset, error)
	Update(companyID string, req *UpdateAssetRequest) (*models.Asset, error)
	Delete(companyID string) error
	DeleteOrphans() (int64, error)
}

// AssetTypeServiceInterface defines the interface for asset type service
type AssetTypeServiceInterface interface {
	Create(req *CreateAssetTypeRequest) (*AssetTypeResponse, error)
	GetByID(id uuid.UUID) (*AssetTypeResponse, error)
	List() ([]AssetTypeResponse, error)
	Update(id uuid.UUID, req *UpdateAssetTypeRequest) (*AssetTypeUpdateResponse, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	List(page, pageSize int) (*UserListResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
	GetNotes(idOrUsername string) (*UserNotesResponse, error)
	SaveNotes(idOrUsername string, req *SaveUserNotesRequest) (*UserNotesResponse, error)
}

// ContactServiceInterface defines the interface for the address book
type ContactServiceInterface interface {
	CreateCategory(req *CreateContactCategoryRequest) (*models.ContactCategory, error)
	ListCategories() ([]models.ContactCategory, error)
	Create(req *ContactRequest) (*models.Contact, error)
	GetByID(id uuid.UUID) (*models.Contact, error)
	List(categoryID *uuid.UUID, query string) ([]models.Contact, error)
	Update(id uuid.UUID, req *ContactRequest) (*models.Contact, error)
	Delete(id uuid.UUID) error
}

// CatalogServiceInterface manages checklist items and legacy maintenance types
type CatalogServiceInterface interface {
	ListMaintenanceTypes(assetType string) ([]models.MaintenanceType, error)
	CreateMaintenanceType(req *CreateMaintenanceTypeRequest) (*models.MaintenanceType, error)
	DeleteMaintenanceType(id uuid.UUID) error
	ListChecklistItems(assetType string) ([]models.ChecklistItem, error)
	CreateChecklistItem(req *CreateChecklistItemRequest) (*models.ChecklistItem, error)
	UpdateChecklistItem(id uuid.UUID, req *UpdateChecklistItemRequest) (*models.ChecklistItem, error)
	DeleteChecklistItem(id uuid.UUID) error
}

// ScheduleServiceInterface defines the interface for the recurring schedule engine
type ScheduleServiceInterface interface {
	Schedule(req *ScheduleRequest) (*OccurrenceResponse, error)
	GetOccurrence(id uuid.UUID) (*OccurrenceResponse, error)
	ListOccurrences(query *OccurrenceQuery, page, pageSize int) (*OccurrenceListResponse, error)
	ListGroups(query *OccurrenceQuery) ([]schedule.Group, error)
	OccurrenceForm(id uuid.UUID) (*OccurrenceFormResponse, error)
	GroupForm(locationNumber, assetID, dueDate string) (*GroupFormResponse, error)
	Complete(ctx context.Context, id uuid.UUID, req *CompleteRequest) (*CompletionResponse, error)
	CompleteGroup(ctx context.Context, req *CompleteGroupRequest) (*GroupCompletionResponse, error)
	Upcoming(days int) (*UpcomingResponse, error)
	History(query *HistoryQuery, page, pageSize int) (*HistoryListResponse, error)
	DeleteOccurrence(id uuid.UUID) error
}

// AlertScanServiceInterface defines the interface for the schedule-due alert scan
type AlertScanServiceInterface interface {
	Scan(ctx context.Context) (*ScanResult, error)
}

// AlertServiceInterface defines the interface for alert and ticket handling
type AlertServiceInterface interface {
	Create(ctx context.Context, req *CreateAlertRequest) (*AlertResponse, error)
	GetByID(id uuid.UUID) (*AlertResponse, error)
	List(category string) ([]AlertResponse, error)
	TakeCharge(id uuid.UUID, req *TakeChargeRequest) (*AlertResponse, error)
	Close(id uuid.UUID, req *CloseAlertRequest) (*AlertResponse, error)
	Delete(id uuid.UUID) error
}

// NotificationServiceInterface defines the interface for messaging configuration and delivery
type NotificationServiceInterface interface {
	AlertNotifier
	GetSettings() (*MessagingSettingsResponse, error)
	UpdateSettings(ctx context.Context, req *UpdateMessagingSettingsRequest) (*MessagingSettingsResponse, error)
	ListChannels() ([]models.NotificationChannel, error)
	CreateChannel(req *ChannelRequest) (*models.NotificationChannel, error)
	UpdateChannel(id uuid.UUID, req *ChannelRequest) (*models.NotificationChannel, error)
	DeleteChannel(id uuid.UUID) error
	SendTest(ctx context.Context, req *TestMessageRequest) (*FanOutResult, error)
	ListDeliveryLogs(limit int) ([]models.DeliveryLog, error)
}

// InventoryServiceInterface defines the interface for spare-part stock
type InventoryServiceInterface interface {
	Create(req *CreateInventoryItemRequest) (*InventoryItemResponse, error)
	GetByID(id uuid.UUID) (*InventoryItemResponse, error)
	List(query *InventoryQuery) ([]InventoryItemResponse, error)
	Update(id uuid.UUID, req *UpdateInventoryItemRequest) (*InventoryItemResponse, error)
	ChangeQuantity(id uuid.UUID, req *QuantityChangeRequest) (*QuantityChangeResponse, error)
	ListMovements(id uuid.UUID) ([]models.StockMovement, error)
	Delete(id uuid.UUID) error
	Statistics() (*InventoryStatistics, error)
	ValidatePartCodes(codes []string) (map[string]PartCodeStatus, error)
	ListPartCodes() ([]string, error)
	AssetTypes() ([]string, error)
}

// FormServiceInterface defines the interface for dynamic forms
type FormServiceInterface interface {
	CreateTemplate(req *CreateFormTemplateRequest) (*models.FormTemplate, error)
	GetTemplate(id uuid.UUID) (*models.FormTemplate, error)
	ListTemplates(activeOnly bool) ([]models.FormTemplate, error)
	UpdateTemplate(id uuid.UUID, req *UpdateFormTemplateRequest) (*models.FormTemplate, error)
	DeleteTemplate(id uuid.UUID) error
	AddField(templateID uuid.UUID, req *FormFieldRequest) (*models.FormField, error)
	UpdateField(id uuid.UUID, req *FormFieldRequest) (*models.FormField, error)
	DeleteField(id uuid.UUID) error
	Submit(ctx context.Context, req *SubmitFormRequest) (*SubmissionResponse, error)
	ListSubmissions(query *SubmissionQuery, page, pageSize int) (*SubmissionListResponse, error)
}

// ReportServiceInterface defines the interface for exports and retention
type ReportServiceInterface interface {
	Export(section, format string) (*ExportResult, error)
	BulkDelete(section string, ids []uuid.UUID) (int64, error)
	Cleanup(section string, daysOld int) (int64, error)
}
