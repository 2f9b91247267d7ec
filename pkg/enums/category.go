package enums

import "fmt"

// Category groups catalog artworks for gallery filtering.
type Category string

const (
	CategoryNature        Category = "nature"
	CategoryCustom        Category = "custom"
	CategoryPortrait      Category = "portrait"
	CategoryInspirational Category = "inspirational"
	CategoryFun           Category = "fun"
)

var validCategories = []Category{
	CategoryNature,
	CategoryCustom,
	CategoryPortrait,
	CategoryInspirational,
	CategoryFun,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}
