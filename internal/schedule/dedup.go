package schedule

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// DefaultDedupWindow is the rolling window used besides the calendar day
const DefaultDedupWindow = 2 * time.Hour

// AlertRecord is the part of an open schedule-due alert relevant to dedup
type AlertRecord struct {
	LocationNumber string
	AssetID        string
	Title          string
	Notes          string
	CreatedAt      time.Time
}

// Candidate is an occurrence about to raise a schedule-due alert
type Candidate struct {
	LocationNumber string
	AssetID        string
	ItemName       string
}

// DedupPolicy suppresses repeated schedule-due alerts for the same item.
// An alert suppresses a candidate when it was created on the current calendar
// day or within Window, for the same location and asset, and mentions the item.
type DedupPolicy struct {
	Clock  Clock
	Window time.Duration
}

// NewDedupPolicy builds a policy, falling back to the default window
func NewDedupPolicy(clock Clock, window time.Duration) DedupPolicy {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	return DedupPolicy{Clock: clock, Window: window}
}

// Since returns the oldest creation time that can still suppress a candidate
func (p DedupPolicy) Since() time.Time {
	current := p.Clock.Now()
	startOfDay := now.With(current).BeginningOfDay()
	windowStart := current.Add(-p.Window)
	if windowStart.Before(startOfDay) {
		return windowStart
	}
	return startOfDay
}

// IsDuplicate reports whether one of recent already covers the candidate
func (p DedupPolicy) IsDuplicate(c Candidate, recent []AlertRecord) bool {
	since := p.Since()
	name := strings.ToLower(strings.TrimSpace(c.ItemName))
	for _, a := range recent {
		if a.LocationNumber != c.LocationNumber || a.AssetID != c.AssetID {
			continue
		}
		if a.CreatedAt.Before(since) {
			continue
		}
		if name == "" ||
			strings.Contains(strings.ToLower(a.Title), name) ||
			strings.Contains(strings.ToLower(a.Notes), name) {
			return true
		}
	}
	return false
}
