package notify

import "strings"

// AssetTypeMatcher decides whether a channel filter entry covers an asset type
type AssetTypeMatcher interface {
	Match(allowed, assetType string) bool
}

// ExactMatcher compares case-insensitively
type ExactMatcher struct{}

func (ExactMatcher) Match(allowed, assetType string) bool {
	return strings.EqualFold(strings.TrimSpace(allowed), strings.TrimSpace(assetType))
}

// ItalianPluralMatcher also accepts singular/plural pairs of regular Italian
// nouns: fresa/frese, torno/torni.
type ItalianPluralMatcher struct{}

func (ItalianPluralMatcher) Match(allowed, assetType string) bool {
	a := strings.ToLower(strings.TrimSpace(allowed))
	t := strings.ToLower(strings.TrimSpace(assetType))
	if a == "" || t == "" {
		return false
	}
	if a == t {
		return true
	}
	switch {
	case strings.HasSuffix(a, "se") && t == a[:len(a)-1]+"a":
		return true
	case strings.HasSuffix(t, "a") && a == t[:len(t)-1]+"e":
		return true
	case strings.HasSuffix(a, "i") && t == a[:len(a)-1]+"o":
		return true
	case strings.HasSuffix(t, "o") && a == t[:len(t)-1]+"i":
		return true
	}
	return false
}

// AliasMatcher maps filter entries to explicit sets of asset types.
// Entries without aliases fall back to Fallback.
type AliasMatcher struct {
	Aliases  map[string][]string
	Fallback AssetTypeMatcher
}

func (m AliasMatcher) Match(allowed, assetType string) bool {
	for _, alias := range m.Aliases[strings.ToLower(strings.TrimSpace(allowed))] {
		if strings.EqualFold(alias, strings.TrimSpace(assetType)) {
			return true
		}
	}
	if m.Fallback != nil {
		return m.Fallback.Match(allowed, assetType)
	}
	return false
}
