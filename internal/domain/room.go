package domain

import "strings"

type Category string

const (
	CategoryStandard Category = "Standard"
	CategoryDeluxe   Category = "Deluxe"
	CategorySuite    Category = "Suite"

	// CategoryAll is the wildcard accepted by list filters.
	CategoryAll Category = "All"
)

// Matches reports whether c satisfies the filter. Comparison is
// case-insensitive; the All wildcard matches every category.
func (c Category) Matches(filter Category) bool {
	if strings.EqualFold(string(filter), string(CategoryAll)) {
		return true
	}
	return c.Is(filter)
}

// Is reports whether c names the same category, case-insensitively.
// Unlike Matches it gives the All wildcard no special meaning, so "All"
// only ever names itself.
func (c Category) Is(other Category) bool {
	return strings.EqualFold(string(c), string(other))
}

type Room struct {
	Number    int
	Category  Category
	Available bool
}
