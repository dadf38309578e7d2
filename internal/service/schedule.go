package service

import (
	"context"
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
)

// ScheduleService handles business logic for recurring maintenance occurrences
type ScheduleService struct {
	store           repository.ScheduleStoreInterface
	checklist       repository.ChecklistItemRepositoryInterface
	maintenance     repository.MaintenanceTypeRepositoryInterface
	items           itemResolver
	alerts          repository.AlertRepositoryInterface
	notifier        AlertNotifier
	clock           schedule.Clock
	validator       *validator.Validate
	defaultLeadDays int
	urgentDays      int
}

// ScheduleSettings holds the tunable defaults of the schedule service
type ScheduleSettings struct {
	DefaultLeadDays int
	UrgentDays      int
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	store repository.ScheduleStoreInterface,
	checklist repository.ChecklistItemRepositoryInterface,
	maintenance repository.MaintenanceTypeRepositoryInterface,
	alerts repository.AlertRepositoryInterface,
	notifier AlertNotifier,
	clock schedule.Clock,
	validator *validator.Validate,
	settings ScheduleSettings,
) *ScheduleService {
	if settings.UrgentDays <= 0 {
		settings.UrgentDays = 7
	}
	if settings.DefaultLeadDays < 0 {
		settings.DefaultLeadDays = 0
	}
	return &ScheduleService{
		store:           store,
		checklist:       checklist,
		maintenance:     maintenance,
		items:           itemResolver{checklist: checklist, maintenanceTypes: maintenance},
		alerts:          alerts,
		notifier:        notifier,
		clock:           clock,
		validator:       validator,
		defaultLeadDays: settings.DefaultLeadDays,
		urgentDays:      settings.UrgentDays,
	}
}

// Ensure ScheduleService implements ScheduleServiceInterface
var _ ScheduleServiceInterface = (*ScheduleService)(nil)

// ScheduleRequest creates the first occurrence of a recurring job on an asset.
// Exactly one of ChecklistItemID and MaintenanceTypeID must be set.
type ScheduleRequest struct {
	ChecklistItemID   *uuid.UUID `json:"checklist_item_id,omitempty"`
	MaintenanceTypeID *uuid.UUID `json:"maintenance_type_id,omitempty"`
	LocationNumber    string     `json:"location_number" validate:"required,max=50"`
	AssetID           string     `json:"asset_id" validate:"required,max=100"`
	AssetType         string     `json:"asset_type,omitempty" validate:"max=100"`
	DueDate           string     `json:"due_date" validate:"required" example:"2025-03-31"`
	Recurrence        string     `json:"recurrence,omitempty" example:"monthly"`
	LeadTimeDays      *int       `json:"lead_time_days,omitempty" validate:"omitempty,min=0,max=365"`
}

// ChecklistOutcome is the result of one check recorded at completion
type ChecklistOutcome struct {
	Code    string `json:"code" validate:"required,max=100"`
	Outcome string `json:"outcome,omitempty" validate:"max=50"`
	Notes   string `json:"notes,omitempty"`
}

// CompleteRequest completes a single occurrence
type CompleteRequest struct {
	Operator string             `json:"operator" validate:"required,max=100"`
	Outcome  string             `json:"outcome,omitempty" validate:"max=50"`
	Notes    string             `json:"notes,omitempty"`
	Results  []ChecklistOutcome `json:"results,omitempty" validate:"dive"`
}

// GroupMemberOutcome overrides the outcome of one member of a completed group
type GroupMemberOutcome struct {
	OccurrenceID uuid.UUID `json:"occurrence_id" validate:"required"`
	Outcome      string    `json:"outcome,omitempty" validate:"max=50"`
	Notes        string    `json:"notes,omitempty"`
}

// CompleteGroupRequest completes co-scheduled occurrences together.
// Members are given either by id or by (location, asset, due date).
type CompleteGroupRequest struct {
	OccurrenceIDs  []uuid.UUID          `json:"occurrence_ids,omitempty"`
	LocationNumber string               `json:"location_number,omitempty"`
	AssetID        string               `json:"asset_id,omitempty"`
	DueDate        string               `json:"due_date,omitempty"`
	Operator       string               `json:"operator" validate:"required,max=100"`
	Notes          string               `json:"notes,omitempty"`
	Items          []GroupMemberOutcome `json:"items,omitempty" validate:"dive"`
}

// OccurrenceQuery narrows occurrence listings
type OccurrenceQuery struct {
	LocationNumber string `form:"location_number"`
	AssetID        string `form:"asset_id"`
	State          string `form:"state"`
	From           string `form:"from"`
	To             string `form:"to"`
}

// HistoryQuery narrows execution history listings
type HistoryQuery struct {
	LocationNumber string `form:"location_number"`
	AssetID        string `form:"asset_id"`
	From           string `form:"from"`
	To             string `form:"to"`
}

// OccurrenceResponse represents an occurrence with its resolved item
type OccurrenceResponse struct {
	ID              uuid.UUID              `json:"id"`
	ItemKind        models.RefKind         `json:"item_kind"`
	ItemID          uuid.UUID              `json:"item_id"`
	ItemName        string                 `json:"item_name"`
	ItemDescription string                 `json:"item_description,omitempty"`
	LocationNumber  string                 `json:"location_number"`
	AssetID         string                 `json:"asset_id"`
	AssetType       string                 `json:"asset_type"`
	DueDate         string                 `json:"due_date"`
	State           models.OccurrenceState `json:"state"`
	LeadTimeDays    int                    `json:"lead_time_days"`
	Recurrence      schedule.Recurrence    `json:"recurrence"`
	CompletedAt     *string                `json:"completed_at,omitempty"`
	CompletedBy     string                 `json:"completed_by,omitempty"`
	CompletionNotes string                 `json:"completion_notes,omitempty"`
	CreatedAt       string                 `json:"created_at"`
}

// OccurrenceListResponse represents a paginated list of occurrences
type OccurrenceListResponse struct {
	Occurrences []OccurrenceResponse `json:"occurrences"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// CompletionResponse is returned after completing one occurrence
type CompletionResponse struct {
	Completed OccurrenceResponse `json:"completed"`
	Next      OccurrenceResponse `json:"next"`
	AlertID   *uuid.UUID         `json:"alert_id,omitempty"`
}

// GroupCompletionResponse is returned after completing a group
type GroupCompletionResponse struct {
	Completed []OccurrenceResponse `json:"completed"`
	Next      []OccurrenceResponse `json:"next"`
	AlertID   *uuid.UUID           `json:"alert_id,omitempty"`
}

// OccurrenceFormResponse is the data needed to fill in a completion form
type OccurrenceFormResponse struct {
	Occurrence OccurrenceResponse     `json:"occurrence"`
	Checklist  []models.ChecklistItem `json:"checklist"`
}

// GroupFormResponse is the completion form of a group
type GroupFormResponse struct {
	Group     schedule.Group         `json:"group"`
	Checklist []models.ChecklistItem `json:"checklist"`
}

// UpcomingOccurrence is an occurrence with its urgency
type UpcomingOccurrence struct {
	OccurrenceResponse
	DaysRemaining  int                     `json:"days_remaining"`
	Overdue        bool                    `json:"overdue"`
	Urgent         bool                    `json:"urgent"`
	Classification schedule.Classification `json:"classification"`
}

// UpcomingResponse lists occurrences due within a horizon
type UpcomingResponse struct {
	Days        int                  `json:"days"`
	Occurrences []UpcomingOccurrence `json:"occurrences"`
	Overdue     int                  `json:"overdue"`
	Urgent      int                  `json:"urgent"`
}

// HistoryListResponse represents a paginated list of execution records
type HistoryListResponse struct {
	Records  []models.ExecutionRecord `json:"records"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// Schedule creates the first occurrence of a recurring job
func (s *ScheduleService) Schedule(req *ScheduleRequest) (*OccurrenceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	if (req.ChecklistItemID == nil) == (req.MaintenanceTypeID == nil) {
		return nil, apperrors.NewValidationError("checklist_item_id", "exactly one of checklist_item_id or maintenance_type_id is required")
	}

	due, err := schedule.ParseDate(strings.TrimSpace(req.DueDate))
	if err != nil {
		return nil, apperrors.NewValidationError("due_date", apperrors.ErrInvalidDate.Error())
	}

	occ := &models.Occurrence{
		LocationNumber: req.LocationNumber,
		AssetID:        req.AssetID,
		AssetType:      req.AssetType,
		DueDate:        due,
		State:          models.OccurrenceScheduled,
		LeadTimeDays:   s.defaultLeadDays,
	}
	var info itemInfo

	if req.ChecklistItemID != nil {
		item, err := s.checklist.GetByID(*req.ChecklistItemID)
		if err != nil {
			return nil, lookupError(err, apperrors.ErrChecklistItemNotFound, "get checklist item")
		}
		if strings.TrimSpace(req.Recurrence) == "" {
			return nil, apperrors.NewValidationError("recurrence", "recurrence is required for checklist items")
		}
		rec, ok := schedule.ParseRecurrence(req.Recurrence)
		if !ok {
			return nil, apperrors.NewValidationError("recurrence", apperrors.ErrInvalidRecurrence.Error())
		}
		occ.SetRef(models.ChecklistItemRef(item.ID))
		occ.Recurrence = rec
		if occ.AssetType == "" {
			occ.AssetType = item.AssetType
		}
		info = itemInfo{Name: item.Name, Description: item.Description}
	} else {
		mt, err := s.maintenance.GetByID(*req.MaintenanceTypeID)
		if err != nil {
			return nil, lookupError(err, apperrors.ErrMaintenanceTypeNotFound, "get maintenance type")
		}
		rec, ok := schedule.RecurrenceForMonths(mt.FrequencyMonths)
		if !ok {
			logger.New().WithFields(map[string]interface{}{
				"maintenance_type": mt.Name,
				"frequency_months": mt.FrequencyMonths,
			}).Warn("No recurrence class for catalog frequency, using monthly")
		}
		if strings.TrimSpace(req.Recurrence) != "" {
			if rec, ok = schedule.ParseRecurrence(req.Recurrence); !ok {
				return nil, apperrors.NewValidationError("recurrence", apperrors.ErrInvalidRecurrence.Error())
			}
		}
		occ.SetRef(models.MaintenanceTypeRef(mt.ID))
		occ.Recurrence = rec
		occ.LeadTimeDays = mt.LeadTimeDays
		if occ.AssetType == "" {
			occ.AssetType = mt.AssetType
		}
		info = itemInfo{Name: mt.Name, Description: mt.Description}
	}

	if req.LeadTimeDays != nil {
		occ.LeadTimeDays = *req.LeadTimeDays
	}

	if err := s.store.Occurrences().Create(occ); err != nil {
		return nil, fmt.Errorf("failed to create occurrence: %w", err)
	}

	resp := toOccurrenceResponse(occ, info)
	return &resp, nil
}

// GetOccurrence retrieves an occurrence by ID
func (s *ScheduleService) GetOccurrence(id uuid.UUID) (*OccurrenceResponse, error) {
	occ, err := s.store.Occurrences().GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrOccurrenceNotFound, "get occurrence")
	}
	info, err := s.items.resolveOne(occ)
	if err != nil {
		return nil, err
	}
	resp := toOccurrenceResponse(occ, info)
	return &resp, nil
}

// ListOccurrences lists occurrences with pagination
func (s *ScheduleService) ListOccurrences(query *OccurrenceQuery, page, pageSize int) (*OccurrenceListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	filter, err := s.occurrenceFilter(query)
	if err != nil {
		return nil, err
	}

	occs, total, err := s.store.Occurrences().List(filter, pageSize, offsetOf(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}
	responses, err := s.toResponses(occs)
	if err != nil {
		return nil, err
	}

	return &OccurrenceListResponse{
		Occurrences: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// ListGroups returns scheduled occurrences grouped by location, asset and due date
func (s *ScheduleService) ListGroups(query *OccurrenceQuery) ([]schedule.Group, error) {
	if query == nil {
		query = &OccurrenceQuery{}
	}
	to, err := parseOptionalDate("to", query.To)
	if err != nil {
		return nil, err
	}
	occs, err := s.store.Occurrences().ListScheduled(to)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled occurrences: %w", err)
	}

	filtered := occs[:0]
	for _, o := range occs {
		if query.LocationNumber != "" && o.LocationNumber != query.LocationNumber {
			continue
		}
		if query.AssetID != "" && o.AssetID != query.AssetID {
			continue
		}
		filtered = append(filtered, o)
	}

	items, err := s.scheduleItems(filtered)
	if err != nil {
		return nil, err
	}
	return schedule.GroupItems(items, schedule.Today(s.clock)), nil
}

// OccurrenceForm returns an occurrence with the checklist of its asset type
func (s *ScheduleService) OccurrenceForm(id uuid.UUID) (*OccurrenceFormResponse, error) {
	occ, err := s.GetOccurrence(id)
	if err != nil {
		return nil, err
	}
	checklist, err := s.checklist.ListActiveByAssetType(occ.AssetType)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist: %w", err)
	}
	return &OccurrenceFormResponse{Occurrence: *occ, Checklist: checklist}, nil
}

// GroupForm returns a group with the checklist of its asset type
func (s *ScheduleService) GroupForm(locationNumber, assetID, dueDate string) (*GroupFormResponse, error) {
	due, err := schedule.ParseDate(strings.TrimSpace(dueDate))
	if err != nil {
		return nil, apperrors.NewValidationError("due_date", apperrors.ErrInvalidDate.Error())
	}
	occs, err := s.store.Occurrences().ListGroup(locationNumber, assetID, due)
	if err != nil {
		return nil, fmt.Errorf("failed to list group: %w", err)
	}
	if len(occs) == 0 {
		return nil, apperrors.ErrGroupNotFound
	}

	items, err := s.scheduleItems(occs)
	if err != nil {
		return nil, err
	}
	groups := schedule.GroupItems(items, schedule.Today(s.clock))
	checklist, err := s.checklist.ListActiveByAssetType(groups[0].AssetType)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist: %w", err)
	}
	return &GroupFormResponse{Group: groups[0], Checklist: checklist}, nil
}

// completion carries what is written when an occurrence is completed
type completion struct {
	operator string
	outcome  string
	notes    string
	results  []ChecklistOutcome
	at       time.Time

	// sameGroupAs, when set, must share location, asset and due date with the completed occurrence
	sameGroupAs *models.Occurrence
}

// Complete marks a scheduled occurrence as done, records it in the history
// and schedules its successor, all in one transaction. Non-empty notes raise
// a non-conformity alert once the transaction has committed.
func (s *ScheduleService) Complete(ctx context.Context, id uuid.UUID, req *CompleteRequest) (*CompletionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	if err := requireOperator(req.Operator); err != nil {
		return nil, err
	}

	c := completion{
		operator: strings.TrimSpace(req.Operator),
		outcome:  req.Outcome,
		notes:    strings.TrimSpace(req.Notes),
		results:  req.Results,
		at:       s.clock.Now(),
	}

	var done, next *models.Occurrence
	var info itemInfo
	err := s.store.Transaction(func(tx repository.ScheduleStoreInterface) error {
		var err error
		done, next, info, err = s.completeLocked(tx, id, c)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"occurrence_id": done.ID,
		"next_id":       next.ID,
		"next_due":      schedule.FormatDate(next.DueDate),
	}).Info("Occurrence completed")

	resp := &CompletionResponse{
		Completed: toOccurrenceResponse(done, info),
		Next:      toOccurrenceResponse(next, info),
	}
	if c.notes != "" {
		resp.AlertID = s.raiseCompletionNonConformity(ctx, done, c)
	}
	return resp, nil
}

// CompleteGroup completes every member of a group in one transaction.
// Each member gets its own history record and successor.
func (s *ScheduleService) CompleteGroup(ctx context.Context, req *CompleteGroupRequest) (*GroupCompletionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.WrapValidation(err)
	}
	if err := requireOperator(req.Operator); err != nil {
		return nil, err
	}

	ids, err := s.groupMembers(req)
	if err != nil {
		return nil, err
	}

	overrides := make(map[uuid.UUID]GroupMemberOutcome, len(req.Items))
	for _, it := range req.Items {
		overrides[it.OccurrenceID] = it
	}

	at := s.clock.Now()
	operator := strings.TrimSpace(req.Operator)
	notes := strings.TrimSpace(req.Notes)
	resp := &GroupCompletionResponse{}
	var first *models.Occurrence
	var memberNotes []string

	err = s.store.Transaction(func(tx repository.ScheduleStoreInterface) error {
		resp.Completed = resp.Completed[:0]
		resp.Next = resp.Next[:0]
		first = nil
		memberNotes = memberNotes[:0]
		for _, id := range ids {
			c := completion{operator: operator, notes: notes, at: at, sameGroupAs: first}
			own := ""
			if o, ok := overrides[id]; ok {
				c.outcome = o.Outcome
				if own = strings.TrimSpace(o.Notes); own != "" {
					c.notes = own
				}
				c.results = []ChecklistOutcome{{Code: id.String(), Outcome: o.Outcome, Notes: o.Notes}}
			}
			done, next, info, err := s.completeLocked(tx, id, c)
			if err != nil {
				return err
			}
			if first == nil {
				first = done
			}
			if own != "" {
				memberNotes = append(memberNotes, fmt.Sprintf("%s: %s", info.Name, own))
			}
			resp.Completed = append(resp.Completed, toOccurrenceResponse(done, info))
			resp.Next = append(resp.Next, toOccurrenceResponse(next, info))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"completed": len(resp.Completed),
		"asset_id":  first.AssetID,
	}).Info("Occurrence group completed")

	// one alert per group, group notes first, then each member's own notes
	alertNotes := memberNotes
	if notes != "" {
		alertNotes = append([]string{notes}, memberNotes...)
	}
	if len(alertNotes) > 0 {
		resp.AlertID = s.raiseCompletionNonConformity(ctx, first, completion{
			operator: operator,
			notes:    strings.Join(alertNotes, "\n"),
			at:       at,
		})
	}
	return resp, nil
}

func (s *ScheduleService) groupMembers(req *CompleteGroupRequest) ([]uuid.UUID, error) {
	if len(req.OccurrenceIDs) > 0 {
		seen := make(map[uuid.UUID]bool, len(req.OccurrenceIDs))
		ids := make([]uuid.UUID, 0, len(req.OccurrenceIDs))
		for _, id := range req.OccurrenceIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		return ids, nil
	}

	if req.LocationNumber == "" || req.AssetID == "" || req.DueDate == "" {
		return nil, apperrors.NewValidationError("occurrence_ids", "occurrence_ids or location_number, asset_id and due_date are required")
	}
	due, err := schedule.ParseDate(strings.TrimSpace(req.DueDate))
	if err != nil {
		return nil, apperrors.NewValidationError("due_date", apperrors.ErrInvalidDate.Error())
	}
	occs, err := s.store.Occurrences().ListGroup(req.LocationNumber, req.AssetID, due)
	if err != nil {
		return nil, fmt.Errorf("failed to list group: %w", err)
	}
	if len(occs) == 0 {
		return nil, apperrors.ErrGroupNotFound
	}
	ids := make([]uuid.UUID, len(occs))
	for i, o := range occs {
		ids[i] = o.ID
	}
	return ids, nil
}

// completeLocked must run inside store.Transaction
func (s *ScheduleService) completeLocked(store repository.ScheduleStoreInterface, id uuid.UUID, c completion) (*models.Occurrence, *models.Occurrence, itemInfo, error) {
	occ, err := store.Occurrences().GetForUpdate(id)
	if err != nil {
		return nil, nil, itemInfo{}, lookupError(err, apperrors.ErrOccurrenceNotFound, "load occurrence")
	}
	if occ.IsCompleted() {
		return nil, nil, itemInfo{}, apperrors.ErrOccurrenceAlreadyCompleted
	}
	if g := c.sameGroupAs; g != nil &&
		(g.LocationNumber != occ.LocationNumber || g.AssetID != occ.AssetID || !g.DueDate.Equal(occ.DueDate)) {
		return nil, nil, itemInfo{}, apperrors.NewValidationError("occurrence_ids", apperrors.ErrMixedGroup.Error())
	}

	info, err := s.items.resolveOne(occ)
	if err != nil {
		return nil, nil, itemInfo{}, err
	}

	at := c.at
	occ.State = models.OccurrenceCompleted
	occ.CompletedAt = &at
	occ.CompletedBy = c.operator
	occ.CompletionNotes = c.notes
	if err := store.Occurrences().Update(occ); err != nil {
		return nil, nil, itemInfo{}, fmt.Errorf("failed to update occurrence: %w", err)
	}

	if len(c.results) > 0 {
		results := make([]models.ChecklistResult, 0, len(c.results))
		for _, r := range c.results {
			outcome := r.Outcome
			if outcome == "" {
				outcome = models.DefaultOutcome
			}
			results = append(results, models.ChecklistResult{
				OccurrenceID: occ.ID,
				Code:         r.Code,
				Outcome:      outcome,
				Notes:        r.Notes,
			})
		}
		if err := store.Results().CreateBatch(results); err != nil {
			return nil, nil, itemInfo{}, fmt.Errorf("failed to save checklist results: %w", err)
		}
	}

	outcome := c.outcome
	if outcome == "" {
		outcome = models.DefaultOutcome
	}
	record := &models.ExecutionRecord{
		ItemReference:   occ.ItemReference,
		OccurrenceID:    occ.ID,
		LocationNumber:  occ.LocationNumber,
		AssetID:         occ.AssetID,
		AssetType:       occ.AssetType,
		ItemName:        info.Name,
		OriginalDueDate: occ.DueDate,
		ExecutedAt:      at,
		Operator:        c.operator,
		Outcome:         outcome,
		Notes:           c.notes,
	}
	if err := store.History().Append(record); err != nil {
		return nil, nil, itemInfo{}, fmt.Errorf("failed to append history: %w", err)
	}

	next := &models.Occurrence{
		ItemReference:  occ.ItemReference,
		LocationNumber: occ.LocationNumber,
		AssetID:        occ.AssetID,
		AssetType:      occ.AssetType,
		DueDate:        schedule.NextDueDate(occ.DueDate, occ.Recurrence),
		State:          models.OccurrenceScheduled,
		LeadTimeDays:   occ.LeadTimeDays,
		Recurrence:     occ.Recurrence.OrDefault(),
	}
	if err := store.Occurrences().Create(next); err != nil {
		return nil, nil, itemInfo{}, fmt.Errorf("failed to schedule next occurrence: %w", err)
	}

	return occ, next, info, nil
}

// raiseCompletionNonConformity stores and fans out a non-conformity for
// notes left at completion. Failures are logged: the completion is committed.
func (s *ScheduleService) raiseCompletionNonConformity(ctx context.Context, occ *models.Occurrence, c completion) *uuid.UUID {
	log := logger.WithContext(ctx).WithField("occurrence_id", occ.ID)

	alert := &models.Alert{
		Category:       models.AlertCategoryNonConformity,
		Title:          fmt.Sprintf("Maintenance notes: %s", occ.AssetID),
		Description:    fmt.Sprintf("Scheduled maintenance %s", occ.AssetType),
		LocationNumber: occ.LocationNumber,
		AssetID:        occ.AssetID,
		State:          models.AlertOpen,
		Notes:          c.notes,
		Operator:       c.operator,
	}
	if err := s.alerts.Create(alert); err != nil {
		log.WithError(err).Error("Failed to create non-conformity for completion notes")
		return nil
	}

	if s.notifier != nil {
		s.notifier.FanOut(ctx, notify.Message{
			Category:       alert.Category,
			Title:          alert.Title,
			Description:    alert.Description,
			LocationNumber: alert.LocationNumber,
			AssetID:        alert.AssetID,
			AssetType:      occ.AssetType,
			Operator:       alert.Operator,
			Notes:          alert.Notes,
		})
	}
	id := alert.ID
	return &id
}

// Upcoming lists scheduled occurrences due within days, overdue ones included
func (s *ScheduleService) Upcoming(days int) (*UpcomingResponse, error) {
	if days < 0 {
		return nil, apperrors.NewValidationError("days", "days must not be negative")
	}
	today := schedule.Today(s.clock)
	horizon := today.AddDate(0, 0, days)

	occs, err := s.store.Occurrences().ListScheduled(&horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled occurrences: %w", err)
	}
	infos, err := s.items.resolve(occs)
	if err != nil {
		return nil, err
	}

	resp := &UpcomingResponse{Days: days, Occurrences: make([]UpcomingOccurrence, 0, len(occs))}
	for i := range occs {
		o := &occs[i]
		remaining := schedule.DaysBetween(today, o.DueDate)
		u := UpcomingOccurrence{
			OccurrenceResponse: toOccurrenceResponse(o, infoFor(infos, o)),
			DaysRemaining:      remaining,
			Overdue:            remaining < 0,
			Urgent:             remaining >= 0 && remaining <= s.urgentDays,
			Classification:     schedule.Classify(remaining, o.LeadTimeDays),
		}
		if u.Overdue {
			resp.Overdue++
		}
		if u.Urgent {
			resp.Urgent++
		}
		resp.Occurrences = append(resp.Occurrences, u)
	}
	return resp, nil
}

// History lists execution records, newest first
func (s *ScheduleService) History(query *HistoryQuery, page, pageSize int) (*HistoryListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	if query == nil {
		query = &HistoryQuery{}
	}
	from, err := parseOptionalDate("from", query.From)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate("to", query.To)
	if err != nil {
		return nil, err
	}
	if to != nil {
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &end
	}

	filter := repository.HistoryFilter{
		LocationNumber: query.LocationNumber,
		AssetID:        query.AssetID,
		From:           from,
		To:             to,
	}
	records, total, err := s.store.History().List(filter, pageSize, offsetOf(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return &HistoryListResponse{Records: records, Total: total, Page: page, PageSize: pageSize}, nil
}

// DeleteOccurrence removes a single occurrence; its history is kept
func (s *ScheduleService) DeleteOccurrence(id uuid.UUID) error {
	removed, err := s.store.Occurrences().Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete occurrence: %w", err)
	}
	if removed == 0 {
		return apperrors.ErrOccurrenceNotFound
	}
	return nil
}

func (s *ScheduleService) occurrenceFilter(query *OccurrenceQuery) (repository.OccurrenceFilter, error) {
	if query == nil {
		return repository.OccurrenceFilter{}, nil
	}
	state := models.OccurrenceState(query.State)
	if state != "" && !state.IsValid() {
		return repository.OccurrenceFilter{}, apperrors.NewValidationError("state", "state must be scheduled or completed")
	}
	from, err := parseOptionalDate("from", query.From)
	if err != nil {
		return repository.OccurrenceFilter{}, err
	}
	to, err := parseOptionalDate("to", query.To)
	if err != nil {
		return repository.OccurrenceFilter{}, err
	}
	return repository.OccurrenceFilter{
		LocationNumber: query.LocationNumber,
		AssetID:        query.AssetID,
		State:          state,
		From:           from,
		To:             to,
	}, nil
}

func (s *ScheduleService) scheduleItems(occs []models.Occurrence) ([]schedule.Item, error) {
	infos, err := s.items.resolve(occs)
	if err != nil {
		return nil, err
	}
	items := make([]schedule.Item, 0, len(occs))
	for i := range occs {
		items = append(items, toScheduleItem(&occs[i], infoFor(infos, &occs[i])))
	}
	return items, nil
}

func (s *ScheduleService) toResponses(occs []models.Occurrence) ([]OccurrenceResponse, error) {
	infos, err := s.items.resolve(occs)
	if err != nil {
		return nil, err
	}
	responses := make([]OccurrenceResponse, 0, len(occs))
	for i := range occs {
		responses = append(responses, toOccurrenceResponse(&occs[i], infoFor(infos, &occs[i])))
	}
	return responses, nil
}

func toOccurrenceResponse(o *models.Occurrence, info itemInfo) OccurrenceResponse {
	ref := o.Ref()
	return OccurrenceResponse{
		ID:              o.ID,
		ItemKind:        ref.Kind,
		ItemID:          ref.ID,
		ItemName:        info.Name,
		ItemDescription: info.Description,
		LocationNumber:  o.LocationNumber,
		AssetID:         o.AssetID,
		AssetType:       o.AssetType,
		DueDate:         schedule.FormatDate(o.DueDate),
		State:           o.State,
		LeadTimeDays:    o.LeadTimeDays,
		Recurrence:      o.Recurrence,
		CompletedAt:     formatTime(o.CompletedAt),
		CompletedBy:     o.CompletedBy,
		CompletionNotes: o.CompletionNotes,
		CreatedAt:       o.CreatedAt.Format(timestampLayout),
	}
}
