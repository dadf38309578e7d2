package service

import (
	"fmt"
	"sort"
	"strings"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/export"
	"gestman-backend/internal/repository"
	"gestman-backend/internal/schedule"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"github.com/xuri/excelize/v2"
)

// Report sections
const (
	SectionAlerts      = "alerts"
	SectionOccurrences = "occurrences"
	SectionHistory     = "history"
	SectionInventory   = "inventory"
	SectionSubmissions = "submissions"
)

const (
	ExportFormatXLSX     = "xlsx"
	defaultRetentionDays = 365
	fileTimestampLayout  = "20060102_150405"
	exportUnlimited      = -1
	exportDateTimeLayout = "02/01/2006 15:04"
)

// ReportService exports sections as workbooks and applies retention
type ReportService struct {
	alerts      repository.AlertRepositoryInterface
	occurrences repository.OccurrenceRepositoryInterface
	history     repository.ExecutionHistoryRepositoryInterface
	inventory   repository.InventoryRepositoryInterface
	forms       repository.FormRepositoryInterface
	items       itemResolver
	clock       schedule.Clock
	retention   int
}

// ReportRepositories bundles the repositories a report can read from
type ReportRepositories struct {
	Alerts           repository.AlertRepositoryInterface
	Occurrences      repository.OccurrenceRepositoryInterface
	History          repository.ExecutionHistoryRepositoryInterface
	Inventory        repository.InventoryRepositoryInterface
	Forms            repository.FormRepositoryInterface
	Checklist        repository.ChecklistItemRepositoryInterface
	MaintenanceTypes repository.MaintenanceTypeRepositoryInterface
}

// NewReportService creates a new report service
func NewReportService(repos ReportRepositories, clock schedule.Clock, retentionDays int) *ReportService {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &ReportService{
		alerts:      repos.Alerts,
		occurrences: repos.Occurrences,
		history:     repos.History,
		inventory:   repos.Inventory,
		forms:       repos.Forms,
		items:       itemResolver{checklist: repos.Checklist, maintenanceTypes: repos.MaintenanceTypes},
		clock:       clock,
		retention:   retentionDays,
	}
}

// Ensure ReportService implements ReportServiceInterface
var _ ReportServiceInterface = (*ReportService)(nil)

// ExportResult is a rendered workbook; the caller closes File
type ExportResult struct {
	FileName string
	File     *excelize.File
}

// Export renders one section; only xlsx is supported
func (s *ReportService) Export(section, format string) (*ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatXLSX
	}
	if format != ExportFormatXLSX {
		return nil, apperrors.ErrUnsupportedExportFormat
	}

	var (
		f   *excelize.File
		err error
	)
	switch section {
	case SectionAlerts:
		f, err = s.exportAlerts()
	case SectionOccurrences:
		f, err = s.exportOccurrences()
	case SectionHistory:
		f, err = s.exportHistory()
	case SectionInventory:
		f, err = s.exportInventory()
	case SectionSubmissions:
		f, err = s.exportSubmissions()
	default:
		return nil, apperrors.ErrUnknownSection
	}
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("%s_%s.%s", section, s.clock.Now().Format(fileTimestampLayout), format),
		File:     f,
	}, nil
}

// BulkDelete removes records of a section by id
func (s *ReportService) BulkDelete(section string, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, apperrors.NewValidationError("ids", "at least one id is required")
	}
	var (
		deleted int64
		err     error
	)
	switch section {
	case SectionAlerts:
		deleted, err = s.alerts.DeleteByIDs(ids)
	case SectionOccurrences:
		deleted, err = s.occurrences.DeleteByIDs(ids)
	case SectionSubmissions:
		deleted, err = s.forms.DeleteSubmissionsByIDs(ids)
	default:
		return 0, apperrors.ErrUnknownSection
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", section, err)
	}
	return deleted, nil
}

// Cleanup removes records older than daysOld days: closed alerts,
// completed occurrences and form submissions.
func (s *ReportService) Cleanup(section string, daysOld int) (int64, error) {
	if daysOld <= 0 {
		daysOld = s.retention
	}
	cutoff := now.With(s.clock.Now()).BeginningOfDay().AddDate(0, 0, -daysOld)

	var (
		deleted int64
		err     error
	)
	switch section {
	case SectionAlerts:
		deleted, err = s.alerts.DeleteClosedBefore(cutoff)
	case SectionOccurrences:
		deleted, err = s.occurrences.DeleteCompletedBefore(cutoff)
	case SectionSubmissions:
		deleted, err = s.forms.DeleteSubmissionsBefore(cutoff)
	default:
		return 0, apperrors.ErrUnknownSection
	}
	if err != nil {
		return 0, fmt.Errorf("failed to clean up %s: %w", section, err)
	}
	return deleted, nil
}

func (s *ReportService) exportAlerts() (*excelize.File, error) {
	alerts, err := s.alerts.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return export.Workbook("Alerts", []export.Column[models.Alert]{
		{Header: "Created", Width: 18, Value: func(a models.Alert) interface{} { return a.CreatedAt.Format(exportDateTimeLayout) }},
		{Header: "Category", Width: 16, Value: func(a models.Alert) interface{} { return string(a.Category) }},
		{Header: "Title", Width: 40, Value: func(a models.Alert) interface{} { return a.Title }},
		{Header: "Description", Width: 50, Value: func(a models.Alert) interface{} { return a.Description }},
		{Header: "Location", Value: func(a models.Alert) interface{} { return a.LocationNumber }},
		{Header: "Asset", Value: func(a models.Alert) interface{} { return a.AssetID }},
		{Header: "State", Width: 12, Value: func(a models.Alert) interface{} { return string(a.State) }},
		{Header: "Operator", Value: func(a models.Alert) interface{} { return a.Operator }},
		{Header: "Notes", Width: 50, Value: func(a models.Alert) interface{} { return a.Notes }},
		{Header: "Closed", Value: func(a models.Alert) interface{} {
			if a.ClosedAt == nil {
				return ""
			}
			return a.ClosedAt.Format(exportDateTimeLayout)
		}},
	}, alerts)
}

func (s *ReportService) exportOccurrences() (*excelize.File, error) {
	occs, _, err := s.occurrences.List(repository.OccurrenceFilter{}, exportUnlimited, exportUnlimited)
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}
	infos, err := s.items.resolve(occs)
	if err != nil {
		return nil, err
	}
	return export.Workbook("Occurrences", []export.Column[models.Occurrence]{
		{Header: "Due date", Width: 12, Value: func(o models.Occurrence) interface{} { return schedule.FormatDate(o.DueDate) }},
		{Header: "Location", Value: func(o models.Occurrence) interface{} { return o.LocationNumber }},
		{Header: "Asset", Value: func(o models.Occurrence) interface{} { return o.AssetID }},
		{Header: "Asset type", Value: func(o models.Occurrence) interface{} { return o.AssetType }},
		{Header: "Item", Width: 40, Value: func(o models.Occurrence) interface{} { return infoFor(infos, &o).Name }},
		{Header: "Recurrence", Width: 14, Value: func(o models.Occurrence) interface{} { return string(o.Recurrence) }},
		{Header: "Lead days", Width: 10, Value: func(o models.Occurrence) interface{} { return o.LeadTimeDays }},
		{Header: "State", Width: 12, Value: func(o models.Occurrence) interface{} { return string(o.State) }},
		{Header: "Completed by", Value: func(o models.Occurrence) interface{} { return o.CompletedBy }},
		{Header: "Completed", Value: func(o models.Occurrence) interface{} {
			if o.CompletedAt == nil {
				return ""
			}
			return o.CompletedAt.Format(exportDateTimeLayout)
		}},
	}, occs)
}

func (s *ReportService) exportHistory() (*excelize.File, error) {
	records, _, err := s.history.List(repository.HistoryFilter{}, exportUnlimited, exportUnlimited)
	if err != nil {
		return nil, fmt.Errorf("failed to list execution history: %w", err)
	}
	return export.Workbook("History", []export.Column[models.ExecutionRecord]{
		{Header: "Executed", Value: func(r models.ExecutionRecord) interface{} { return r.ExecutedAt.Format(exportDateTimeLayout) }},
		{Header: "Due date", Width: 12, Value: func(r models.ExecutionRecord) interface{} { return schedule.FormatDate(r.OriginalDueDate) }},
		{Header: "Location", Value: func(r models.ExecutionRecord) interface{} { return r.LocationNumber }},
		{Header: "Asset", Value: func(r models.ExecutionRecord) interface{} { return r.AssetID }},
		{Header: "Asset type", Value: func(r models.ExecutionRecord) interface{} { return r.AssetType }},
		{Header: "Item", Width: 40, Value: func(r models.ExecutionRecord) interface{} { return r.ItemName }},
		{Header: "Operator", Value: func(r models.ExecutionRecord) interface{} { return r.Operator }},
		{Header: "Outcome", Width: 12, Value: func(r models.ExecutionRecord) interface{} { return r.Outcome }},
		{Header: "Notes", Width: 50, Value: func(r models.ExecutionRecord) interface{} { return r.Notes }},
	}, records)
}

func (s *ReportService) exportInventory() (*excelize.File, error) {
	items, err := s.inventory.List(repository.InventoryFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return export.Workbook("Inventory", []export.Column[models.InventoryItem]{
		{Header: "Asset type", Value: func(i models.InventoryItem) interface{} { return i.AssetType }},
		{Header: "Part code", Value: func(i models.InventoryItem) interface{} { return i.PartCode }},
		{Header: "Manufacturer", Value: func(i models.InventoryItem) interface{} { return i.Manufacturer }},
		{Header: "Model", Value: func(i models.InventoryItem) interface{} { return i.Model }},
		{Header: "Supplier", Value: func(i models.InventoryItem) interface{} { return i.Supplier }},
		{Header: "Unit", Width: 8, Value: func(i models.InventoryItem) interface{} { return i.Unit }},
		{Header: "On hand", Width: 10, Value: func(i models.InventoryItem) interface{} { return i.QuantityOnHand }},
		{Header: "Minimum", Width: 10, Value: func(i models.InventoryItem) interface{} { return i.MinimumQuantity }},
		{Header: "Unit price", Width: 12, Value: func(i models.InventoryItem) interface{} { return i.UnitPrice.InexactFloat64() }},
		{Header: "Stock value", Width: 12, Value: func(i models.InventoryItem) interface{} { return i.StockValue().Round(2).InexactFloat64() }},
		{Header: "Below threshold", Width: 16, Value: func(i models.InventoryItem) interface{} { return i.BelowThreshold() }},
	}, items)
}

func (s *ReportService) exportSubmissions() (*excelize.File, error) {
	subs, _, err := s.forms.ListSubmissions(repository.SubmissionFilter{}, exportUnlimited, exportUnlimited)
	if err != nil {
		return nil, fmt.Errorf("failed to list form submissions: %w", err)
	}
	return export.Workbook("Submissions", []export.Column[models.FormSubmission]{
		{Header: "Created", Value: func(f models.FormSubmission) interface{} { return f.CreatedAt.Format(exportDateTimeLayout) }},
		{Header: "Intervention date", Value: func(f models.FormSubmission) interface{} { return schedule.FormatDate(f.InterventionDate) }},
		{Header: "Template", Width: 38, Value: func(f models.FormSubmission) interface{} { return f.TemplateID.String() }},
		{Header: "Location", Value: func(f models.FormSubmission) interface{} { return f.LocationNumber }},
		{Header: "Asset", Value: func(f models.FormSubmission) interface{} { return f.AssetID }},
		{Header: "Operator", Value: func(f models.FormSubmission) interface{} { return f.Operator }},
		{Header: "Data", Width: 60, Value: func(f models.FormSubmission) interface{} { return submissionSummary(f) }},
	}, subs)
}

// submissionSummary flattens submitted data as "key: value" lines in key order
func submissionSummary(f models.FormSubmission) string {
	keys := make([]string, 0, len(f.Data))
	for k := range f.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, fieldText(f.Data[k])))
	}
	return strings.Join(lines, "\n")
}
