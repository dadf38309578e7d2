package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/logger"
	"gestman-backend/internal/notify"
	"gestman-backend/internal/repository"
	"gestman-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultClosedVisibilityDays = 30

// AlertService handles business logic for alerts and tickets
type AlertService struct {
	repo                 repository.AlertRepositoryInterface
	occurrences          repository.OccurrenceRepositoryInterface
	assets               repository.AssetRepositoryInterface
	notifier             AlertNotifier
	clock                schedule.Clock
	validator            *validator.Validate
	closedVisibilityDays int
}

// NewAlertService creates a new alert service
func NewAlertService(
	repo repository.AlertRepositoryInterface,
	occurrences repository.OccurrenceRepositoryInterface,
	assets repository.AssetRepositoryInterface,
	notifier AlertNotifier,
	clock schedule.Clock,
	validator *validator.Validate,
	closedVisibilityDays int,
) *AlertService {
	if closedVisibilityDays <= 0 {
		closedVisibilityDays = defaultClosedVisibilityDays
	}
	return &AlertService{
		repo:                 repo,
		occurrences:          occurrences,
		assets:               assets,
		notifier:             notifier,
		clock:                clock,
		validator:            validator,
		closedVisibilityDays: closedVisibilityDays,
	}
}

// Ensure AlertService implements AlertServiceInterface
var _ AlertServiceInterface = (*AlertService)(nil)

// CreateAlertRequest represents the request to create an alert or a ticket.
// Message is accepted as an alias of Description.
type CreateAlertRequest struct {
	Category       models.AlertCategory `json:"category" validate:"required"`
	Title          string               `json:"title,omitempty" validate:"max=255"`
	Description    string               `json:"description,omitempty"`
	Message        string               `json:"message,omitempty"`
	LocationNumber string               `json:"location_number,omitempty" validate:"max=50"`
	AssetID        string               `json:"asset_id,omitempty" validate:"max=100"`
	Operator       string               `json:"operator,omitempty" validate:"max=100"`
	Notes          string               `json:"notes,omitempty"`
}

// TakeChargeRequest assigns a ticket to an operator
type TakeChargeRequest struct {
	Operator string `json:"operator" validate:"required,max=100"`
	Notes    string `json:"notes,omitempty"`
}

// CloseAlertRequest closes an alert
type CloseAlertRequest struct {
	Operator string `json:"operator,omitempty" validate:"max=100"`
	Notes    string `json:"notes,omitempty"`
}

// AlertResponse represents an alert
type AlertResponse struct {
	ID             uuid.UUID            `json:"id"`
	Category       models.AlertCategory `json:"category"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	LocationNumber string               `json:"location_number,omitempty"`
	AssetID        string               `json:"asset_id,omitempty"`
	State          models.AlertState    `json:"state"`
	Notes          string               `json:"notes,omitempty"`
	Operator       string               `json:"operator,omitempty"`
	CreatedAt      string               `json:"created_at"`
	ClosedAt       *string              `json:"closed_at,omitempty"`
	NextDueDate    *string              `json:"next_due_date,omitempty"`
}

// Create stores an alert; tickets get an automatic title and are fanned out
func (s *AlertService) Create(ctx context.Context, req *CreateAlertRequest) (*AlertResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	if !req.Category.IsValid() {
		return nil, apperrors.NewValidationError("category", "category must be one of non_conformita, ticket, scadenza")
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = strings.TrimSpace(req.Message)
	}
	if description == "" {
		return nil, apperrors.NewValidationError("description", "description or message is required")
	}

	title := strings.TrimSpace(req.Title)
	switch {
	case req.Category == models.AlertCategoryTicket:
		title = ticketTitle(req.LocationNumber, req.AssetID)
	case title == "" && req.Category == models.AlertCategoryNonConformity:
		title = "Non-conformity"
	case title == "":
		title = "Schedule due"
	}

	alert := &models.Alert{
		Category:       req.Category,
		Title:          title,
		Description:    description,
		LocationNumber: strings.TrimSpace(req.LocationNumber),
		AssetID:        strings.TrimSpace(req.AssetID),
		State:          models.AlertOpen,
		Notes:          req.Notes,
		Operator:       strings.TrimSpace(req.Operator),
	}
	if err := s.repo.Create(alert); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"alert_id": alert.ID,
		"category": alert.Category,
	}).Info("Alert created")

	if alert.Category == models.AlertCategoryTicket && s.notifier != nil {
		s.notifier.FanOut(ctx, notify.Message{
			Category:       alert.Category,
			Title:          alert.Title,
			Description:    alert.Description,
			LocationNumber: alert.LocationNumber,
			AssetID:        alert.AssetID,
			AssetType:      resolveAssetType(ctx, s.assets, alert.AssetID),
			Operator:       alert.Operator,
			Notes:          alert.Notes,
		})
	}

	resp := toAlertResponse(alert)
	return &resp, nil
}

// GetByID retrieves an alert by ID
func (s *AlertService) GetByID(id uuid.UUID) (*AlertResponse, error) {
	alert, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAlertNotFound, "get alert")
	}
	resp := toAlertResponse(alert)
	return &resp, nil
}

// List returns open and in-progress alerts plus the recently closed ones.
// Schedule-due alerts carry the latest scheduled due date of their asset.
func (s *AlertService) List(category string) ([]AlertResponse, error) {
	category = strings.TrimSpace(category)
	if category != "" && !models.AlertCategory(category).IsValid() {
		return nil, apperrors.NewValidationError("category", "unknown alert category")
	}

	closedSince := s.clock.Now().AddDate(0, 0, -s.closedVisibilityDays)
	alerts, err := s.repo.ListVisible(category, closedSince)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	type target struct{ location, asset string }
	dueDates := make(map[target]*string)

	responses := make([]AlertResponse, 0, len(alerts))
	for i := range alerts {
		resp := toAlertResponse(&alerts[i])
		if alerts[i].Category == models.AlertCategoryScheduleDue && alerts[i].AssetID != "" {
			key := target{alerts[i].LocationNumber, alerts[i].AssetID}
			due, ok := dueDates[key]
			if !ok {
				latest, err := s.occurrences.LatestScheduledDueDate(key.location, key.asset)
				if err != nil {
					return nil, fmt.Errorf("failed to read due date: %w", err)
				}
				if latest != nil {
					d := schedule.FormatDate(*latest)
					due = &d
				}
				dueDates[key] = due
			}
			resp.NextDueDate = due
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// TakeCharge moves an open ticket to in progress
func (s *AlertService) TakeCharge(id uuid.UUID, req *TakeChargeRequest) (*AlertResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	alert, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAlertNotFound, "get alert")
	}
	if alert.Category != models.AlertCategoryTicket || alert.State != models.AlertOpen {
		return nil, apperrors.ErrAlertNotTicket
	}

	alert.State = models.AlertInProgress
	alert.Operator = strings.TrimSpace(req.Operator)
	alert.Notes = appendNote(alert.Notes, req.Notes)
	if err := s.repo.Update(alert); err != nil {
		return nil, fmt.Errorf("failed to update alert: %w", err)
	}
	resp := toAlertResponse(alert)
	return &resp, nil
}

// Close closes an alert of any category
func (s *AlertService) Close(id uuid.UUID, req *CloseAlertRequest) (*AlertResponse, error) {
	if req == nil {
		req = &CloseAlertRequest{}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	alert, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAlertNotFound, "get alert")
	}
	if alert.State == models.AlertClosed {
		return nil, apperrors.ErrAlertAlreadyClosed
	}

	now := s.clock.Now()
	alert.State = models.AlertClosed
	alert.ClosedAt = &now
	if op := strings.TrimSpace(req.Operator); op != "" {
		alert.Operator = op
	}
	alert.Notes = appendNote(alert.Notes, req.Notes)
	if err := s.repo.Update(alert); err != nil {
		return nil, fmt.Errorf("failed to close alert: %w", err)
	}
	resp := toAlertResponse(alert)
	return &resp, nil
}

// Delete removes an alert
func (s *AlertService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return lookupError(err, apperrors.ErrAlertNotFound, "delete alert")
	}
	return nil
}

// ticketTitle builds the automatic title of a ticket
func ticketTitle(location, asset string) string {
	location, asset = strings.TrimSpace(location), strings.TrimSpace(asset)
	switch {
	case asset != "" && location != "":
		return fmt.Sprintf("Ticket for asset %s (location %s)", asset, location)
	case location != "":
		return fmt.Sprintf("Ticket for location %s", location)
	case asset != "":
		return fmt.Sprintf("Ticket for asset %s", asset)
	default:
		return "General ticket"
	}
}

func appendNote(existing, note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return existing
	}
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}

// resolveAssetType looks the asset up in the reference database; unknown assets yield ""
func resolveAssetType(ctx context.Context, assets repository.AssetRepositoryInterface, assetID string) string {
	if assetID == "" || assets == nil {
		return ""
	}
	asset, err := assets.GetByCompanyID(assetID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithContext(ctx).WithError(err).WithField("asset_id", assetID).Warn("Failed to resolve asset type")
		}
		return ""
	}
	return asset.Type
}

func toAlertResponse(a *models.Alert) AlertResponse {
	return AlertResponse{
		ID:             a.ID,
		Category:       a.Category,
		Title:          a.Title,
		Description:    a.Description,
		LocationNumber: a.LocationNumber,
		AssetID:        a.AssetID,
		State:          a.State,
		Notes:          a.Notes,
		Operator:       a.Operator,
		CreatedAt:      a.CreatedAt.Format(timestampLayout),
		ClosedAt:       formatTime(a.ClosedAt),
	}
}
