package domain

import "strings"

// The closed set of categories an exercise may belong to.
const (
	CategoryStrength    = "Strength"
	CategoryCardio      = "Cardio"
	CategoryMobility    = "Mobility"
	CategoryFlexibility = "Flexibility"
)

// AllowedCategories lists every valid exercise category, in display order.
var AllowedCategories = []string{
	CategoryStrength,
	CategoryCardio,
	CategoryMobility,
	CategoryFlexibility,
}

// Exercise is a single exercise definition in the library.
type Exercise struct {
	ID              int64
	Name            string
	Category        string
	EquipmentNeeded bool
}

// NewExercise validates and builds an Exercise. The name is stored trimmed
// of surrounding whitespace; name uniqueness is left to the storage layer.
func NewExercise(name, category string, equipmentNeeded bool) (*Exercise, error) {
	name = strings.TrimSpace(name)
	if len(name) < 3 {
		return nil, ErrNameTooShort
	}
	if !IsAllowedCategory(category) {
		return nil, ErrInvalidCategory
	}
	return &Exercise{
		Name:            name,
		Category:        category,
		EquipmentNeeded: equipmentNeeded,
	}, nil
}

// IsAllowedCategory reports whether category is in the closed set.
// Matching is exact, including case.
func IsAllowedCategory(category string) bool {
	for _, c := range AllowedCategories {
		if category == c {
			return true
		}
	}
	return false
}
