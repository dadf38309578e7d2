package schedule

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupItems(t *testing.T) {
	today := date(t, "2025-06-10")
	due := date(t, "2025-06-12")

	items := []Item{
		{OccurrenceID: uuid.New(), LocationNumber: "12", AssetID: "FR-01", AssetType: "mill", DueDate: due, Name: "Oil change", LeadTimeDays: 1, Recurrence: Annual},
		{OccurrenceID: uuid.New(), LocationNumber: "3", AssetID: "SC-09", AssetType: "shelving", DueDate: date(t, "2025-06-11"), Name: "Structural inspection", Description: "Check uprights", LeadTimeDays: 7},
		{OccurrenceID: uuid.New(), LocationNumber: "12", AssetID: "FR-01", AssetType: "mill", DueDate: due, Name: "Filter swap", LeadTimeDays: 5, Recurrence: Semiannual},
	}

	groups := GroupItems(items, today)
	require.Len(t, groups, 2)

	first := groups[0]
	assert.Equal(t, "SC-09", first.AssetID)
	assert.Equal(t, "Structural inspection", first.Name)
	assert.Equal(t, "Check uprights", first.Description)
	assert.Equal(t, 1, first.DaysRemaining)
	assert.Equal(t, Upcoming, first.Classification)

	second := groups[1]
	assert.Equal(t, "FR-01", second.AssetID)
	assert.Len(t, second.Items, 2)
	assert.Equal(t, "Maintenance mill (2 items)", second.Name)
	assert.Equal(t, "Checks: Oil change, Filter swap", second.Description)
	assert.Equal(t, 5, second.LeadTimeDays)
	assert.Equal(t, 2, second.DaysRemaining)
	assert.Equal(t, Upcoming, second.Classification)
}

func TestGroupNameTruncatesChecks(t *testing.T) {
	items := []Item{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}}

	name, desc := GroupName("shelving", items)

	assert.Equal(t, "Maintenance shelving (5 items)", name)
	assert.Equal(t, "Checks: a, b, c (+2 more)", desc)
}

func TestGroupItemsEmpty(t *testing.T) {
	assert.Empty(t, GroupItems(nil, date(t, "2025-01-01")))
}
