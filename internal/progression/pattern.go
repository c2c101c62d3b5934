package progression

import "strings"

// MatchesPattern reports whether a bare item id matches an eligibility pattern.
// "*" matches everything, a trailing "*" is a prefix match, and anything else
// must match exactly.
func MatchesPattern(itemID, pattern string) bool {
	if pattern == Wildcard {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, Wildcard); ok {
		return strings.HasPrefix(itemID, prefix)
	}
	return itemID == pattern
}

// MatchesAny reports whether itemID matches at least one pattern
func MatchesAny(itemID string, patterns []string) bool {
	for _, p := range patterns {
		if MatchesPattern(itemID, p) {
			return true
		}
	}
	return false
}

// IsExcluded reports whether a bare item id is on the exclusion list
func (a AllowedItems) IsExcluded(itemID string) bool {
	return MatchesAny(itemID, a.Exclusions)
}

// IsWeapon reports whether a bare item id is an eligible weapon
func (a AllowedItems) IsWeapon(itemID string) bool {
	return !a.IsExcluded(itemID) && MatchesAny(itemID, a.Weapons)
}

// IsArmor reports whether a bare item id is an eligible armor piece
func (a AllowedItems) IsArmor(itemID string) bool {
	return !a.IsExcluded(itemID) && MatchesAny(itemID, a.Armor)
}
