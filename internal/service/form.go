package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/logger"
	"gestman-backend/internal/notify"
	"gestman-backend/internal/repository"
	"gestman-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Keys of the fields every template starts with; they cannot be deleted.
const (
	FieldKeyInterventionDate = "intervention_date"
	FieldKeyOperator         = "operator"
	// a textarea with this key is copied into the alert notes as-is
	fieldKeyNotes = "notes"
)

const nonConformityFormTitle = "Non-conformity detected (dynamic form)"

// negative checkbox values, compared case-insensitively
var negativeCheckboxValues = map[string]struct{}{
	"no": {}, "negativo": {}, "false": {}, "0": {},
}

// FormService handles dynamic form templates and submissions
type FormService struct {
	repo      repository.FormRepositoryInterface
	alerts    repository.AlertRepositoryInterface
	assets    repository.AssetRepositoryInterface
	notifier  AlertNotifier
	clock     schedule.Clock
	validator *validator.Validate
}

// NewFormService creates a new form service
func NewFormService(
	repo repository.FormRepositoryInterface,
	alerts repository.AlertRepositoryInterface,
	assets repository.AssetRepositoryInterface,
	notifier AlertNotifier,
	clock schedule.Clock,
	validator *validator.Validate,
) *FormService {
	return &FormService{
		repo:      repo,
		alerts:    alerts,
		assets:    assets,
		notifier:  notifier,
		clock:     clock,
		validator: validator,
	}
}

// Ensure FormService implements FormServiceInterface
var _ FormServiceInterface = (*FormService)(nil)

// CreateFormTemplateRequest represents the request to create a form template
type CreateFormTemplateRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty"`
	AssetType   string `json:"asset_type,omitempty" validate:"max=100"`
}

// UpdateFormTemplateRequest is a partial template update
type UpdateFormTemplateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	AssetType   *string `json:"asset_type,omitempty" validate:"omitempty,max=100"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// FormFieldRequest creates or replaces a template field
type FormFieldRequest struct {
	Key          string              `json:"key" validate:"required,max=100"`
	Label        string              `json:"label" validate:"required,max=200"`
	Type         models.FieldType    `json:"type" validate:"required"`
	Required     bool                `json:"required"`
	Options      models.FieldOptions `json:"options"`
	DisplayOrder *int                `json:"display_order,omitempty"`
}

// SubmitFormRequest is one filled-in form
type SubmitFormRequest struct {
	TemplateID       uuid.UUID              `json:"template_id" validate:"required"`
	LocationNumber   string                 `json:"location_number" validate:"required,max=50"`
	AssetID          string                 `json:"asset_id" validate:"required,max=100"`
	Operator         string                 `json:"operator" validate:"required,max=100"`
	InterventionDate string                 `json:"intervention_date" validate:"required"`
	Data             map[string]interface{} `json:"data" swaggertype:"object"`
}

// SubmissionQuery filters submission listings
type SubmissionQuery struct {
	TemplateID     string `form:"template_id"`
	LocationNumber string `form:"location_number"`
	AssetID        string `form:"asset_id"`
}

// ConformityIssue is one field value that signals a non-conformity
type ConformityIssue struct {
	FieldKey string `json:"field_key"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	IsNote   bool   `json:"is_note,omitempty"`
}

// SubmissionResponse reports a stored submission and its conformity outcome
type SubmissionResponse struct {
	Submission      models.FormSubmission `json:"submission"`
	AlertsGenerated int                   `json:"alerts_generated"`
	Issues          []ConformityIssue     `json:"issues"`
	AlertID         *uuid.UUID            `json:"alert_id,omitempty"`
}

// SubmissionListResponse is a page of submissions
type SubmissionListResponse struct {
	Submissions []models.FormSubmission `json:"submissions"`
	Total       int64                   `json:"total"`
	Page        int                     `json:"page"`
	PageSize    int                     `json:"page_size"`
}

// CreateTemplate creates a template with the standard date and operator fields
func (s *FormService) CreateTemplate(req *CreateFormTemplateRequest) (*models.FormTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	name := strings.TrimSpace(req.Name)
	existing, err := s.repo.GetTemplateByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing template: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrFormTemplateExists
	}

	template := &models.FormTemplate{
		Name:        name,
		Description: req.Description,
		AssetType:   strings.TrimSpace(req.AssetType),
		IsActive:    true,
		Fields: []models.FormField{
			{Key: FieldKeyInterventionDate, Label: "Intervention date", Type: models.FieldDate, Required: true, DisplayOrder: 1},
			{Key: FieldKeyOperator, Label: "Operator", Type: models.FieldText, Required: true, DisplayOrder: 2},
		},
	}
	if err := s.repo.CreateTemplate(template); err != nil {
		return nil, fmt.Errorf("failed to create form template: %w", err)
	}
	return template, nil
}

// GetTemplate retrieves a template with its fields
func (s *FormService) GetTemplate(id uuid.UUID) (*models.FormTemplate, error) {
	template, err := s.repo.GetTemplate(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrFormTemplateNotFound, "get form template")
	}
	return template, nil
}

// ListTemplates returns templates, optionally only active ones
func (s *FormService) ListTemplates(activeOnly bool) ([]models.FormTemplate, error) {
	templates, err := s.repo.ListTemplates(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list form templates: %w", err)
	}
	return templates, nil
}

// UpdateTemplate applies a partial update
func (s *FormService) UpdateTemplate(id uuid.UUID, req *UpdateFormTemplateRequest) (*models.FormTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	if req.Name == nil && req.Description == nil && req.AssetType == nil && req.IsActive == nil {
		return nil, apperrors.ErrNothingToUpdate
	}
	template, err := s.repo.GetTemplate(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrFormTemplateNotFound, "get form template")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != template.Name {
			other, err := s.repo.GetTemplateByName(name)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check existing template: %w", err)
			}
			if other != nil {
				return nil, apperrors.ErrFormTemplateExists
			}
		}
		template.Name = name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.AssetType != nil {
		template.AssetType = strings.TrimSpace(*req.AssetType)
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	if err := s.repo.UpdateTemplate(template); err != nil {
		return nil, fmt.Errorf("failed to update form template: %w", err)
	}
	return template, nil
}

// DeleteTemplate removes a template and its fields
func (s *FormService) DeleteTemplate(id uuid.UUID) error {
	if err := s.repo.DeleteTemplate(id); err != nil {
		return lookupError(err, apperrors.ErrFormTemplateNotFound, "delete form template")
	}
	return nil
}

// AddField appends a field to a template
func (s *FormService) AddField(templateID uuid.UUID, req *FormFieldRequest) (*models.FormField, error) {
	if err := s.validateField(req); err != nil {
		return nil, err
	}
	template, err := s.repo.GetTemplate(templateID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrFormTemplateNotFound, "get form template")
	}

	key := strings.TrimSpace(req.Key)
	order := 0
	for _, f := range template.Fields {
		if f.Key == key {
			return nil, apperrors.ErrFormFieldExists
		}
		if f.DisplayOrder > order {
			order = f.DisplayOrder
		}
	}
	order++
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	}

	field := &models.FormField{
		TemplateID:   templateID,
		Key:          key,
		Label:        strings.TrimSpace(req.Label),
		Type:         req.Type,
		Required:     req.Required,
		Options:      datatypes.NewJSONType(req.Options),
		DisplayOrder: order,
	}
	if err := s.repo.CreateField(field); err != nil {
		return nil, fmt.Errorf("failed to create form field: %w", err)
	}
	return field, nil
}

// UpdateField replaces a field definition; the key of a standard field is fixed
func (s *FormService) UpdateField(id uuid.UUID, req *FormFieldRequest) (*models.FormField, error) {
	if err := s.validateField(req); err != nil {
		return nil, err
	}
	field, err := s.repo.GetField(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrFormFieldNotFound, "get form field")
	}

	key := strings.TrimSpace(req.Key)
	if isStandardField(field.Key) && key != field.Key {
		return nil, apperrors.NewValidationError("key", "standard fields cannot be renamed")
	}
	if key != field.Key {
		siblings, err := s.repo.ListFields(field.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("failed to list form fields: %w", err)
		}
		for _, f := range siblings {
			if f.Key == key {
				return nil, apperrors.ErrFormFieldExists
			}
		}
	}

	field.Key = key
	field.Label = strings.TrimSpace(req.Label)
	field.Type = req.Type
	field.Required = req.Required
	field.Options = datatypes.NewJSONType(req.Options)
	if req.DisplayOrder != nil {
		field.DisplayOrder = *req.DisplayOrder
	}
	if err := s.repo.UpdateField(field); err != nil {
		return nil, fmt.Errorf("failed to update form field: %w", err)
	}
	return field, nil
}

// DeleteField removes a field; standard fields are refused
func (s *FormService) DeleteField(id uuid.UUID) error {
	field, err := s.repo.GetField(id)
	if err != nil {
		return lookupError(err, apperrors.ErrFormFieldNotFound, "get form field")
	}
	if isStandardField(field.Key) {
		return apperrors.NewValidationError("key", "standard fields (date/operator) cannot be deleted")
	}
	if err := s.repo.DeleteField(id); err != nil {
		return lookupError(err, apperrors.ErrFormFieldNotFound, "delete form field")
	}
	return nil
}

// Submit stores a submission, then raises one non-conformity alert when
// any field value signals a problem. Alert failures do not undo the submission.
func (s *FormService) Submit(ctx context.Context, req *SubmitFormRequest) (*SubmissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	date, err := schedule.ParseDate(strings.TrimSpace(req.InterventionDate))
	if err != nil {
		return nil, apperrors.NewValidationError("intervention_date", apperrors.ErrInvalidDate.Error())
	}
	template, err := s.repo.GetTemplate(req.TemplateID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrFormTemplateNotFound, "get form template")
	}

	data := datatypes.JSONMap{}
	for k, v := range req.Data {
		data[k] = v
	}
	data[FieldKeyInterventionDate] = schedule.FormatDate(date)
	data[FieldKeyOperator] = strings.TrimSpace(req.Operator)

	for _, f := range template.Fields {
		if f.Required && fieldText(data[f.Key]) == "" {
			return nil, apperrors.NewValidationError(f.Key, fmt.Sprintf("field %s is required", f.Label))
		}
	}

	submission := &models.FormSubmission{
		TemplateID:       template.ID,
		LocationNumber:   strings.TrimSpace(req.LocationNumber),
		AssetID:          strings.TrimSpace(req.AssetID),
		Operator:         strings.TrimSpace(req.Operator),
		InterventionDate: date,
		Data:             data,
	}
	if err := s.repo.CreateSubmission(submission); err != nil {
		return nil, fmt.Errorf("failed to create form submission: %w", err)
	}

	issues := CheckConformity(template.Fields, data)
	resp := &SubmissionResponse{Submission: *submission, Issues: issues}
	if len(issues) > 0 {
		resp.AlertsGenerated = len(issues)
		resp.AlertID = s.raiseFormNonConformity(ctx, submission, issues)
	}
	return resp, nil
}

// ListSubmissions returns a page of submissions, newest first
func (s *FormService) ListSubmissions(query *SubmissionQuery, page, pageSize int) (*SubmissionListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	filter := repository.SubmissionFilter{}
	if query != nil {
		if query.TemplateID != "" {
			id, err := uuid.Parse(query.TemplateID)
			if err != nil {
				return nil, apperrors.NewValidationError("template_id", "invalid template id")
			}
			filter.TemplateID = &id
		}
		filter.LocationNumber = strings.TrimSpace(query.LocationNumber)
		filter.AssetID = strings.TrimSpace(query.AssetID)
	}

	submissions, total, err := s.repo.ListSubmissions(filter, pageSize, offsetOf(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list form submissions: %w", err)
	}
	return &SubmissionListResponse{
		Submissions: submissions,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// CheckConformity returns the issues signalled by the submitted data:
// a selected option flagged generates_alert, a negative checkbox, or a
// filled textarea flagged generates_alert.
func CheckConformity(fields []models.FormField, data map[string]interface{}) []ConformityIssue {
	var issues []ConformityIssue
	for _, f := range fields {
		value := fieldText(data[f.Key])
		if value == "" {
			continue
		}
		opts := f.Options.Data()
		switch f.Type {
		case models.FieldSelect:
			for _, c := range opts.Choices {
				if c.Value == value && c.GeneratesAlert {
					label := c.Label
					if label == "" {
						label = value
					}
					issues = append(issues, ConformityIssue{FieldKey: f.Key, Label: label, Value: value})
					break
				}
			}
		case models.FieldCheckbox:
			if _, negative := negativeCheckboxValues[strings.ToLower(value)]; negative {
				issues = append(issues, ConformityIssue{FieldKey: f.Key, Label: fieldLabel(f), Value: value})
			}
		case models.FieldTextarea:
			if opts.GeneratesAlert {
				issues = append(issues, ConformityIssue{FieldKey: f.Key, Label: fieldLabel(f), Value: value, IsNote: true})
			}
		}
	}
	return issues
}

func (s *FormService) raiseFormNonConformity(ctx context.Context, sub *models.FormSubmission, issues []ConformityIssue) *uuid.UUID {
	log := logger.WithContext(ctx).WithField("submission_id", sub.ID)

	var bullets, labels, noteLines []string
	for _, issue := range issues {
		if issue.IsNote && !strings.EqualFold(issue.FieldKey, fieldKeyNotes) {
			noteLines = append(noteLines, fmt.Sprintf("%s: %s", issue.Label, issue.Value))
			continue
		}
		if issue.IsNote {
			continue
		}
		bullets = append(bullets, "• "+issue.Label)
		labels = append(labels, issue.Label)
	}

	notes := ""
	for k, v := range sub.Data {
		if strings.EqualFold(k, fieldKeyNotes) {
			notes = fieldText(v)
			break
		}
	}
	if len(noteLines) > 0 {
		if notes != "" {
			notes += "\n\n"
		}
		notes += strings.Join(noteLines, "\n")
	}

	alert := &models.Alert{
		Category:       models.AlertCategoryNonConformity,
		Title:          nonConformityFormTitle,
		Description:    fmt.Sprintf("Detected %d non-conformities in the dynamic form:\n%s", len(issues), strings.Join(bullets, "\n")),
		LocationNumber: sub.LocationNumber,
		AssetID:        sub.AssetID,
		State:          models.AlertOpen,
		Notes:          notes,
		Operator:       sub.Operator,
	}
	if err := s.alerts.Create(alert); err != nil {
		log.WithError(err).Error("Failed to store form non-conformity alert")
		return nil
	}
	log.WithField("alert_id", alert.ID).WithField("issues", len(issues)).Info("Form non-conformity raised")

	if s.notifier != nil {
		assetType := resolveAssetType(ctx, s.assets, sub.AssetID)
		s.notifier.FanOut(ctx, notify.Message{
			Category:       alert.Category,
			Title:          fmt.Sprintf("Dynamic form non-conformity %s: %s", strings.ToLower(assetType), sub.AssetID),
			Description:    strings.Join(labels, ", "),
			LocationNumber: sub.LocationNumber,
			AssetID:        sub.AssetID,
			AssetType:      assetType,
			Operator:       sub.Operator,
			Notes:          notes,
		})
	}
	return &alert.ID
}

func (s *FormService) validateField(req *FormFieldRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.WrapValidation(err)
	}
	if !req.Type.IsValid() {
		return apperrors.NewValidationError("type", "unknown field type")
	}
	if req.Type == models.FieldSelect && len(req.Options.Choices) == 0 {
		return apperrors.NewValidationError("options", "select fields need at least one choice")
	}
	return nil
}

func isStandardField(key string) bool {
	return key == FieldKeyInterventionDate || key == FieldKeyOperator
}

func fieldLabel(f models.FormField) string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}

// fieldText renders a submitted JSON value as trimmed text
func fieldText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	case time.Time:
		return schedule.FormatDate(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}
