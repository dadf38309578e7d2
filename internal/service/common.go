package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gestman-backend/internal/database/models"
	apperrors "gestman-backend/internal/errors"
	"gestman-backend/internal/repository"
	"gestman-backend/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	timestampLayout = time.RFC3339
)

// unknownItemName is shown when the catalog entry of an occurrence is gone
const unknownItemName = "Unknown item"

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

func offsetOf(page, pageSize int) int {
	return (page - 1) * pageSize
}

// lookupError maps a missing record to the given sentinel
func lookupError(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// parseOptionalDate parses an optional YYYY-MM-DD query value
func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := schedule.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return nil, apperrors.NewValidationError(field, apperrors.ErrInvalidDate.Error())
	}
	return &d, nil
}

func requireOperator(operator string) error {
	if strings.TrimSpace(operator) == "" {
		return apperrors.NewValidationError("operator", "operator is required")
	}
	return nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timestampLayout)
	return &s
}

// itemInfo is the display part of a catalog entry
type itemInfo struct {
	Name        string
	Description string
}

// itemResolver joins occurrences with both catalogs in two batched queries
type itemResolver struct {
	checklist        repository.ChecklistItemRepositoryInterface
	maintenanceTypes repository.MaintenanceTypeRepositoryInterface
}

func (r itemResolver) resolve(occurrences []models.Occurrence) (map[models.OccurrenceRef]itemInfo, error) {
	var checklistIDs, typeIDs []uuid.UUID
	seen := make(map[models.OccurrenceRef]bool)
	for _, o := range occurrences {
		ref := o.Ref()
		if seen[ref] {
			continue
		}
		seen[ref] = true
		switch ref.Kind {
		case models.RefChecklistItem:
			checklistIDs = append(checklistIDs, ref.ID)
		case models.RefMaintenanceType:
			typeIDs = append(typeIDs, ref.ID)
		}
	}

	out := make(map[models.OccurrenceRef]itemInfo, len(seen))
	if len(checklistIDs) > 0 {
		items, err := r.checklist.GetByIDs(checklistIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load checklist items: %w", err)
		}
		for _, it := range items {
			out[models.ChecklistItemRef(it.ID)] = itemInfo{Name: it.Name, Description: it.Description}
		}
	}
	if len(typeIDs) > 0 {
		types, err := r.maintenanceTypes.GetByIDs(typeIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load maintenance types: %w", err)
		}
		for _, mt := range types {
			out[models.MaintenanceTypeRef(mt.ID)] = itemInfo{Name: mt.Name, Description: mt.Description}
		}
	}
	return out, nil
}

func (r itemResolver) resolveOne(o *models.Occurrence) (itemInfo, error) {
	infos, err := r.resolve([]models.Occurrence{*o})
	if err != nil {
		return itemInfo{}, err
	}
	return infoFor(infos, o), nil
}

func infoFor(infos map[models.OccurrenceRef]itemInfo, o *models.Occurrence) itemInfo {
	if info, ok := infos[o.Ref()]; ok {
		return info
	}
	return itemInfo{Name: unknownItemName}
}

func toScheduleItem(o *models.Occurrence, info itemInfo) schedule.Item {
	return schedule.Item{
		OccurrenceID:   o.ID,
		LocationNumber: o.LocationNumber,
		AssetID:        o.AssetID,
		AssetType:      o.AssetType,
		DueDate:        o.DueDate,
		Name:           info.Name,
		Description:    info.Description,
		LeadTimeDays:   o.LeadTimeDays,
		Recurrence:     o.Recurrence,
	}
}
