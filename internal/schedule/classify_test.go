package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		days int
		lead int
		want Classification
	}{
		{"overdue", -1, 7, Overdue},
		{"long overdue with zero lead", -30, 0, Overdue},
		{"due today", 0, 7, DueToday},
		{"due today with zero lead", 0, 0, DueToday},
		{"exactly lead days", 7, 7, Upcoming},
		{"one day inside lead", 1, 7, Upcoming},
		{"one past lead", 8, 7, NotDue},
		{"zero lead tomorrow", 1, 0, NotDue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.days, tt.lead)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != NotDue, got.Alerting())
		})
	}
}

func TestDaysBetween(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Skip("tzdata not available")
	}
	late := time.Date(2025, 3, 29, 23, 30, 0, 0, rome)

	assert.Equal(t, 0, DaysBetween(late, time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2, DaysBetween(late, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, DaysBetween(late, time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC)))
}
