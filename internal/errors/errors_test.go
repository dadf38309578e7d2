package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "occurrence"}
		assert.Equal(t, "occurrence not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "alert"}
		err2 := &NotFoundError{Entity: "alert"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "alert"}
		err2 := &NotFoundError{Entity: "asset"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to complete: %w", ErrOccurrenceNotFound)
		assert.True(t, errors.Is(wrapped, ErrOccurrenceNotFound))
		assert.False(t, errors.Is(wrapped, ErrAlertNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrInventoryItemNotFound))
		assert.False(t, IsNotFound(ErrInsufficientStock))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "asset", Context: "with this company id"}
		assert.Equal(t, "asset already exists with this company id", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "asset"}
		assert.Equal(t, "asset already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrInventoryItemExists))
		assert.False(t, IsAlreadyExists(ErrAssetNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "operator", Message: "is required"}
		assert.Equal(t, "validation error: operator - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := fmt.Errorf("validation failed: %w", NewValidationError("quantity", "must be positive"))
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrAlertNotFound))
	})

	t.Run("WrapValidation keeps the underlying failure", func(t *testing.T) {
		cause := errors.New("Key: 'CompleteRequest.Operator' Error:Field validation for 'Operator' failed on the 'required' tag")
		err := fmt.Errorf("complete: %w", WrapValidation(cause))

		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr))
		assert.True(t, IsValidation(err))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "validation failed: "+cause.Error(), vErr.Error())
	})
}

func TestConflictAndConfigurationErrors(t *testing.T) {
	assert.True(t, IsConflict(fmt.Errorf("delete: %w", ErrAssetTypeInUse)))
	assert.True(t, IsConflict(ErrAlertAlreadyClosed))
	assert.False(t, IsConflict(ErrAssetTypeNotFound))
	assert.True(t, IsConfiguration(ErrMessagingNotConfigured))
	assert.False(t, IsConfiguration(ErrNothingToUpdate))
}

func TestBusinessLogicErrors(t *testing.T) {
	wrapped := fmt.Errorf("failed to change quantity: %w", ErrInsufficientStock)
	assert.True(t, errors.Is(wrapped, ErrInsufficientStock))
	assert.False(t, errors.Is(wrapped, ErrOccurrenceAlreadyCompleted))
	assert.Equal(t, "occurrence is already completed", ErrOccurrenceAlreadyCompleted.Error())
}
