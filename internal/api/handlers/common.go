package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// MessageResponse is returned by operations with no body of their own
type MessageResponse struct {
	Message string `json:"message" example:"deleted"`
}

// CountResponse reports how many records an operation touched
type CountResponse struct {
	Count int64 `json:"count"`
}

var errDatabaseNotConfigured = errors.New("database not configured")

// badRequestErrors are business errors caused by the request content
var badRequestErrors = []error{
	apperrors.ErrNothingToUpdate,
	apperrors.ErrInsufficientStock,
	apperrors.ErrInvalidRecurrence,
	apperrors.ErrInvalidDate,
	apperrors.ErrInvalidStockOperation,
	apperrors.ErrUnsupportedExportFormat,
	apperrors.ErrUnknownSection,
	apperrors.ErrInvalidPaginationParams,
}

// respondError maps service errors to status codes
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrOccurrenceAlreadyCompleted):
		return http.StatusConflict
	case apperrors.IsValidation(err), errors.As(err, &verrs):
		return http.StatusBadRequest
	case apperrors.IsConfiguration(err):
		return http.StatusUnprocessableEntity
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// parseUUIDParam reads a UUID path parameter, answering 400 when malformed
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page and page_size; invalid values fall back to the service defaults
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// intQuery reads an optional integer query parameter
func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return v, true
}
