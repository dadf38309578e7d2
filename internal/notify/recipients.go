package notify

import (
	"strings"

	"gestman-backend/internal/database/models"
)

// Target describes the alert being fanned out, as seen by channel filters
type Target struct {
	Category       models.AlertCategory
	LocationNumber string
	AssetID        string
	AssetType      string
	Title          string
	Description    string
}

// AcceptsCategory reports whether the channel subscribed to the category.
// Schedule-due alerts match any label containing "scaden" (scadenza, scadenze).
func AcceptsCategory(ch models.NotificationChannel, category models.AlertCategory) bool {
	needle := strings.ToLower(string(category))
	if category == models.AlertCategoryScheduleDue {
		needle = "scaden"
	}
	for _, label := range ch.Categories {
		if strings.Contains(strings.ToLower(label), needle) {
			return true
		}
	}
	return false
}

// Accepts applies category, location and asset-type filters of one channel
func Accepts(ch models.NotificationChannel, t Target, matcher AssetTypeMatcher) bool {
	if !ch.IsActive || !AcceptsCategory(ch, t.Category) {
		return false
	}

	if len(ch.LocationFilter) > 0 && t.LocationNumber != "" {
		if !containsTrimmed(ch.LocationFilter, t.LocationNumber) {
			return false
		}
	}

	if len(ch.AssetTypeFilter) > 0 && t.AssetID != "" {
		if !matchesAssetType(ch.AssetTypeFilter, t, matcher) {
			return false
		}
	}
	return true
}

// Recipients returns the channels that should receive the alert
func Recipients(channels []models.NotificationChannel, t Target, matcher AssetTypeMatcher) []models.NotificationChannel {
	if matcher == nil {
		matcher = ItalianPluralMatcher{}
	}
	var out []models.NotificationChannel
	for _, ch := range channels {
		if Accepts(ch, t, matcher) {
			out = append(out, ch)
		}
	}
	return out
}

func matchesAssetType(allowed []string, t Target, matcher AssetTypeMatcher) bool {
	if t.AssetType != "" {
		for _, a := range allowed {
			if a == t.AssetType || matcher.Match(a, t.AssetType) {
				return true
			}
		}
		return false
	}

	// asset type unknown: look for the filter entry in the alert text
	title := strings.ToLower(t.Title)
	desc := strings.ToLower(t.Description)
	for _, a := range allowed {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if strings.Contains(title, a) || strings.Contains(desc, a) {
			return true
		}
	}
	return false
}

func containsTrimmed(values []string, v string) bool {
	for _, x := range values {
		if strings.TrimSpace(x) == v {
			return true
		}
	}
	return false
}
