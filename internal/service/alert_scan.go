package service

import (
	"context"
	"fmt"
	"strings"

	"gestman-backend/internal/database/models"
	"gestman-backend/internal/logger"
	"gestman-backend/internal/notify"
	"gestman-backend/internal/repository"
	"gestman-backend/internal/schedule"

	"github.com/google/uuid"
)

// scanOperator is recorded on alerts raised by the scan
const scanOperator = "system"

// AlertScanService raises schedule-due alerts for scheduled occurrences
// that are overdue, due today or within their lead time.
type AlertScanService struct {
	occurrences repository.OccurrenceRepositoryInterface
	items       itemResolver
	alerts      repository.AlertRepositoryInterface
	notifier    AlertNotifier
	clock       schedule.Clock
	dedup       schedule.DedupPolicy
}

// NewAlertScanService creates a new alert scan service
func NewAlertScanService(
	occurrences repository.OccurrenceRepositoryInterface,
	checklist repository.ChecklistItemRepositoryInterface,
	maintenance repository.MaintenanceTypeRepositoryInterface,
	alerts repository.AlertRepositoryInterface,
	notifier AlertNotifier,
	dedup schedule.DedupPolicy,
) *AlertScanService {
	return &AlertScanService{
		occurrences: occurrences,
		items:       itemResolver{checklist: checklist, maintenanceTypes: maintenance},
		alerts:      alerts,
		notifier:    notifier,
		clock:       dedup.Clock,
		dedup:       dedup,
	}
}

// Ensure AlertScanService implements AlertScanServiceInterface
var _ AlertScanServiceInterface = (*AlertScanService)(nil)

// ScanResult summarizes one scan
type ScanResult struct {
	Evaluated int         `json:"evaluated"`
	Created   int         `json:"alerts_created"`
	Skipped   int         `json:"skipped_duplicates"`
	AlertIDs  []uuid.UUID `json:"alert_ids"`
}

// Scan evaluates every scheduled occurrence and raises at most one alert per
// item inside the dedup window. An alert lists all checks of its group, so
// the other members of an alerted group are suppressed in the same run.
func (s *AlertScanService) Scan(ctx context.Context) (*ScanResult, error) {
	log := logger.WithContext(ctx)
	today := schedule.Today(s.clock)

	occs, err := s.occurrences.ListScheduled(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled occurrences: %w", err)
	}
	infos, err := s.items.resolve(occs)
	if err != nil {
		return nil, err
	}

	items := make([]schedule.Item, 0, len(occs))
	for i := range occs {
		info, ok := infos[occs[i].Ref()]
		if !ok {
			log.WithField("occurrence_id", occs[i].ID).Warn("Skipping occurrence with unresolvable item")
			continue
		}
		items = append(items, toScheduleItem(&occs[i], info))
	}
	groups := make(map[schedule.GroupKey]schedule.Group)
	for _, g := range schedule.GroupItems(items, today) {
		groups[schedule.GroupKey{LocationNumber: g.LocationNumber, AssetID: g.AssetID, DueDate: g.DueDate}] = g
	}

	existing, err := s.alerts.ListOpenByCategorySince(models.AlertCategoryScheduleDue, s.dedup.Since())
	if err != nil {
		return nil, fmt.Errorf("failed to list recent alerts: %w", err)
	}
	recent := make([]schedule.AlertRecord, 0, len(existing))
	for _, a := range existing {
		recent = append(recent, alertRecord(&a))
	}

	result := &ScanResult{AlertIDs: []uuid.UUID{}}
	for _, it := range items {
		result.Evaluated++
		days := schedule.DaysBetween(today, it.DueDate)
		class := schedule.Classify(days, it.LeadTimeDays)
		if !class.Alerting() {
			continue
		}

		candidate := schedule.Candidate{LocationNumber: it.LocationNumber, AssetID: it.AssetID, ItemName: it.Name}
		if s.dedup.IsDuplicate(candidate, recent) {
			result.Skipped++
			continue
		}

		group := groups[it.Key()]
		alert := &models.Alert{
			Category:       models.AlertCategoryScheduleDue,
			Title:          fmt.Sprintf("Maintenance %s scheduled", it.AssetType),
			Description:    fmt.Sprintf("Scheduled maintenance %s", it.AssetType),
			LocationNumber: it.LocationNumber,
			AssetID:        it.AssetID,
			State:          models.AlertOpen,
			Notes:          groupNotes(group, it),
			Operator:       scanOperator,
		}
		if err := s.alerts.Create(alert); err != nil {
			return result, fmt.Errorf("failed to create schedule alert: %w", err)
		}
		record := alertRecord(alert)
		record.CreatedAt = s.clock.Now()
		recent = append(recent, record)
		result.Created++
		result.AlertIDs = append(result.AlertIDs, alert.ID)

		if s.notifier != nil {
			remaining := days
			s.notifier.FanOut(ctx, notify.Message{
				Category:       alert.Category,
				Title:          alert.Title,
				Description:    alert.Description,
				LocationNumber: it.LocationNumber,
				AssetID:        it.AssetID,
				AssetType:      it.AssetType,
				Operator:       scanOperator,
				Notes:          fmt.Sprintf("Due: %s - Recurrence: %s", it.DueDate.Format(schedule.DisplayLayout), it.Recurrence),
				Operation:      operationLabel(group, it),
				DaysRemaining:  &remaining,
				Classification: string(class),
			})
		}
	}

	log.WithFields(map[string]interface{}{
		"evaluated": result.Evaluated,
		"created":   result.Created,
		"skipped":   result.Skipped,
	}).Info("Alert scan finished")
	return result, nil
}

func alertRecord(a *models.Alert) schedule.AlertRecord {
	return schedule.AlertRecord{
		LocationNumber: a.LocationNumber,
		AssetID:        a.AssetID,
		Title:          a.Title,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
	}
}

// groupNotes lists every check of the group so later members are deduplicated
func groupNotes(group schedule.Group, it schedule.Item) string {
	members := group.Items
	if len(members) == 0 {
		members = []schedule.Item{it}
	}
	parts := make([]string, 0, len(members))
	for _, m := range members {
		part := m.Name
		if m.Description != "" {
			part += "\n" + m.Description
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "\n\n")
}

func operationLabel(group schedule.Group, it schedule.Item) string {
	if len(group.Items) > 1 {
		return group.Name
	}
	return it.Name
}
