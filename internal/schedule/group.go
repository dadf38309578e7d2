package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxListedChecks = 3

// Item is a scheduled occurrence with its resolved display name
type Item struct {
	OccurrenceID   uuid.UUID  `json:"occurrence_id"`
	LocationNumber string     `json:"location_number"`
	AssetID        string     `json:"asset_id"`
	AssetType      string     `json:"asset_type"`
	DueDate        time.Time  `json:"due_date"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	LeadTimeDays   int        `json:"lead_time_days"`
	Recurrence     Recurrence `json:"recurrence"`
}

// GroupKey identifies co-scheduled occurrences
type GroupKey struct {
	LocationNumber string
	AssetID        string
	DueDate        time.Time
}

// Group is a set of occurrences sharing location, asset and due date
type Group struct {
	LocationNumber string         `json:"location_number"`
	AssetID        string         `json:"asset_id"`
	AssetType      string         `json:"asset_type"`
	DueDate        time.Time      `json:"due_date"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	DaysRemaining  int            `json:"days_remaining"`
	LeadTimeDays   int            `json:"lead_time_days"`
	Classification Classification `json:"classification"`
	Items          []Item         `json:"items"`
}

// Key returns the grouping key of the item
func (i Item) Key() GroupKey {
	return GroupKey{LocationNumber: i.LocationNumber, AssetID: i.AssetID, DueDate: DateOf(i.DueDate)}
}

// GroupItems groups items by (location, asset, due date) ordered by due date.
// The group lead time is the largest member lead time.
func GroupItems(items []Item, today time.Time) []Group {
	index := make(map[GroupKey]int)
	var groups []Group
	for _, it := range items {
		k := it.Key()
		i, ok := index[k]
		if !ok {
			groups = append(groups, Group{
				LocationNumber: k.LocationNumber,
				AssetID:        k.AssetID,
				AssetType:      it.AssetType,
				DueDate:        k.DueDate,
				LeadTimeDays:   it.LeadTimeDays,
			})
			i = len(groups) - 1
			index[k] = i
		}
		g := &groups[i]
		g.Items = append(g.Items, it)
		if it.LeadTimeDays > g.LeadTimeDays {
			g.LeadTimeDays = it.LeadTimeDays
		}
	}

	for i := range groups {
		g := &groups[i]
		g.Name, g.Description = GroupName(g.AssetType, g.Items)
		g.DaysRemaining = DaysBetween(today, g.DueDate)
		g.Classification = Classify(g.DaysRemaining, g.LeadTimeDays)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		ga, gb := groups[a], groups[b]
		if !ga.DueDate.Equal(gb.DueDate) {
			return ga.DueDate.Before(gb.DueDate)
		}
		if ga.LocationNumber != gb.LocationNumber {
			return ga.LocationNumber < gb.LocationNumber
		}
		return ga.AssetID < gb.AssetID
	})
	return groups
}

// GroupName synthesizes the display name and description of a group.
func GroupName(assetType string, items []Item) (string, string) {
	if len(items) == 1 {
		return items[0].Name, items[0].Description
	}

	names := make([]string, 0, maxListedChecks)
	for i, it := range items {
		if i == maxListedChecks {
			break
		}
		names = append(names, it.Name)
	}
	desc := "Checks: " + strings.Join(names, ", ")
	if extra := len(items) - maxListedChecks; extra > 0 {
		desc += fmt.Sprintf(" (+%d more)", extra)
	}
	return fmt.Sprintf("Maintenance %s (%d items)", assetType, len(items)), desc
}
