package types

import "fmt"

// Category represents the urgency class of a knowledge item
type Category string

const (
	CategoryEmergency    Category = "emergency"
	CategoryNonEmergency Category = "non_emergency"
)

// AllCategories returns all valid categories
func AllCategories() []Category {
	return []Category{
		CategoryEmergency,
		CategoryNonEmergency,
	}
}

// IsValid checks if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryEmergency,
		CategoryNonEmergency:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	category := Category(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return category, nil
}
