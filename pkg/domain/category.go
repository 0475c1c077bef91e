package domain

import (
	"fmt"
	"strings"
)

// Category classifies incident text for fixture lookup.
type Category string

const (
	CategoryFire    Category = "fire"
	CategorySlip    Category = "slip"
	CategoryGeneric Category = "generic"
)

// Classify maps free incident text to a category by case-insensitive
// substring match. Anything that is neither a fire nor a slip incident
// falls back to the generic category.
func Classify(incident string) Category {
	lower := strings.ToLower(incident)
	switch {
	case strings.Contains(lower, "fire"):
		return CategoryFire
	case strings.Contains(lower, "slip"):
		return CategorySlip
	default:
		return CategoryGeneric
	}
}

// FixtureKey builds the catalog lookup key for a category/level pair,
// e.g. "fire-2".
func FixtureKey(cat Category, level int) string {
	return fmt.Sprintf("%s-%d", cat, level)
}
