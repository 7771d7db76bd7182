// Package categorize suggests an expense category from free text using fixed
// substring tables.
package categorize

import (
	"slices"
	"strings"
)

// Suggest lowercases description and vendor, joins them with a space and
// returns the category of the first vendor rule, then the first keyword rule,
// containing a pattern. It reports false when nothing matches.
func Suggest(description, vendor string) (string, bool) {
	text := strings.ToLower(description + " " + vendor)
	if category, ok := match(VendorRules, text); ok {
		return category, true
	}
	return match(KeywordRules, text)
}

func match(rules []Rule, text string) (string, bool) {
	for _, rule := range rules {
		for _, pattern := range rule.Patterns {
			if strings.Contains(text, pattern) {
				return rule.Category, true
			}
		}
	}
	return "", false
}

// Known reports whether category is one of Categories.
func Known(category string) bool {
	return slices.Contains(Categories, category)
}
