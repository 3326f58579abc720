package query

import "sort"

// fallbackIcon is used for any category outside the known set.
const fallbackIcon = "fas fa-receipt"

// categoryIcons maps the known category names to icon identifiers.
var categoryIcons = map[string]string{
	"Food":           "fas fa-utensils",
	"Entertainment":  "fas fa-film",
	"Transportation": "fas fa-car",
	"Education":      "fas fa-graduation-cap",
	"Housing":        "fas fa-home",
	"Income":         "fas fa-money-check-alt",
	"Other":          "fas fa-receipt",
}

// CategoryIcon returns the icon identifier for a category name.
// Categories are free text, so anything unrecognized falls back to the
// generic receipt icon.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return fallbackIcon
}

// KnownCategories returns the category names with a dedicated icon, in
// sorted order.
func KnownCategories() []string {
	names := make([]string, 0, len(categoryIcons))
	for name := range categoryIcons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
