package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDedupPolicy(t *testing.T) {
	current := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	policy := NewDedupPolicy(FixedClock{T: current}, 2*time.Hour)
	candidate := Candidate{LocationNumber: "12", AssetID: "FR-01", ItemName: "Oil change"}

	t.Run("no recent alerts", func(t *testing.T) {
		assert.False(t, policy.IsDuplicate(candidate, nil))
	})

	t.Run("same item earlier today in notes", func(t *testing.T) {
		recent := []AlertRecord{{LocationNumber: "12", AssetID: "FR-01", Title: "Maintenance mill scheduled",
			Notes: "oil change\nHydraulic unit", CreatedAt: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)}}
		assert.True(t, policy.IsDuplicate(candidate, recent))
	})

	t.Run("different asset", func(t *testing.T) {
		recent := []AlertRecord{{LocationNumber: "12", AssetID: "FR-02", Notes: "Oil change", CreatedAt: current}}
		assert.False(t, policy.IsDuplicate(candidate, recent))
	})

	t.Run("different item", func(t *testing.T) {
		recent := []AlertRecord{{LocationNumber: "12", AssetID: "FR-01", Notes: "Filter swap", CreatedAt: current}}
		assert.False(t, policy.IsDuplicate(candidate, recent))
	})

	t.Run("yesterday is stale", func(t *testing.T) {
		recent := []AlertRecord{{LocationNumber: "12", AssetID: "FR-01", Notes: "Oil change",
			CreatedAt: time.Date(2025, 6, 9, 20, 0, 0, 0, time.UTC)}}
		assert.False(t, policy.IsDuplicate(candidate, recent))
	})
}

func TestDedupPolicyWindowCrossesMidnight(t *testing.T) {
	current := time.Date(2025, 6, 10, 0, 30, 0, 0, time.UTC)
	policy := NewDedupPolicy(FixedClock{T: current}, 0)

	assert.Equal(t, time.Date(2025, 6, 9, 22, 30, 0, 0, time.UTC), policy.Since())

	recent := []AlertRecord{{LocationNumber: "1", AssetID: "A", Title: "Oil change",
		CreatedAt: time.Date(2025, 6, 9, 23, 45, 0, 0, time.UTC)}}
	assert.True(t, policy.IsDuplicate(Candidate{LocationNumber: "1", AssetID: "A", ItemName: "Oil change"}, recent))

	// after the window a new day starts fresh
	later := NewDedupPolicy(FixedClock{T: time.Date(2025, 6, 10, 2, 0, 0, 0, time.UTC)}, 2*time.Hour)
	assert.False(t, later.IsDuplicate(Candidate{LocationNumber: "1", AssetID: "A", ItemName: "Oil change"}, recent))
}
