package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this asset type"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
	Err     error // underlying validator failure, if any
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation failed: %s", e.Err)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ConflictError reports an operation refused because of dependent data
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrLocationNotFound        = &NotFoundError{Entity: "location"}
	ErrAssetNotFound           = &NotFoundError{Entity: "asset"}
	ErrAssetTypeNotFound       = &NotFoundError{Entity: "asset type"}
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrContactNotFound         = &NotFoundError{Entity: "contact"}
	ErrContactCategoryNotFound = &NotFoundError{Entity: "contact category"}
	ErrOccurrenceNotFound      = &NotFoundError{Entity: "occurrence"}
	ErrChecklistItemNotFound   = &NotFoundError{Entity: "checklist item"}
	ErrMaintenanceTypeNotFound = &NotFoundError{Entity: "maintenance type"}
	ErrAlertNotFound           = &NotFoundError{Entity: "alert"}
	ErrInventoryItemNotFound   = &NotFoundError{Entity: "inventory item"}
	ErrChannelNotFound         = &NotFoundError{Entity: "notification channel"}
	ErrFormTemplateNotFound    = &NotFoundError{Entity: "form template"}
	ErrFormFieldNotFound       = &NotFoundError{Entity: "form field"}
	ErrFormSubmissionNotFound  = &NotFoundError{Entity: "form submission"}
	ErrGroupNotFound           = &NotFoundError{Entity: "maintenance group"}
	// only tickets can be taken in charge; other alerts are reported as missing tickets
	ErrAlertNotTicket = &NotFoundError{Entity: "ticket"}
)

// Already Exists Errors
var (
	ErrLocationExists        = &AlreadyExistsError{Entity: "location", Context: "with this number"}
	ErrAssetExists           = &AlreadyExistsError{Entity: "asset", Context: "with this company id"}
	ErrAssetTypeExists       = &AlreadyExistsError{Entity: "asset type", Context: "with this name"}
	ErrUserExists            = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrContactCategoryExists = &AlreadyExistsError{Entity: "contact category", Context: "with this name"}
	ErrMaintenanceTypeExists = &AlreadyExistsError{Entity: "maintenance type", Context: "for this asset type"}
	ErrInventoryItemExists   = &AlreadyExistsError{Entity: "inventory item", Context: "with this part code for the asset type"}
	ErrFormTemplateExists    = &AlreadyExistsError{Entity: "form template", Context: "with this name"}
	ErrFormFieldExists       = &AlreadyExistsError{Entity: "form field", Context: "with this key in the template"}
)

// Conflict Errors
var (
	ErrAssetTypeInUse       = &ConflictError{Message: "asset type is used by existing assets"}
	ErrMaintenanceTypeInUse = &ConflictError{Message: "maintenance type is referenced by scheduled occurrences"}
	ErrAlertAlreadyClosed   = &ConflictError{Message: "alert is already closed"}
)

// Business Logic Errors
var (
	ErrOccurrenceAlreadyCompleted = errors.New("occurrence is already completed")
	ErrInsufficientStock          = errors.New("insufficient stock for unload")
	ErrNothingToUpdate            = errors.New("no fields to update")
	ErrInvalidRecurrence          = errors.New("invalid recurrence class")
	ErrInvalidDate                = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidStockOperation      = errors.New("invalid stock operation")
	ErrUnsupportedExportFormat    = errors.New("unsupported export format")
	ErrUnknownSection             = errors.New("unknown report section")
	ErrInvalidPaginationParams    = errors.New("invalid pagination parameters")
	ErrMixedGroup                 = errors.New("occurrences must share location, asset and due date")
)

// Configuration Errors
var (
	ErrMessagingNotConfigured = &ConfigurationError{Message: "messaging bot token is not configured"}
	ErrInvalidBotToken        = &ConfigurationError{Message: "messaging bot token was rejected by the provider"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// WrapValidation marks a request validator failure as a ValidationError
func WrapValidation(err error) error {
	return &ValidationError{Message: err.Error(), Err: err}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
