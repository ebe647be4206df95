package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExerciseTrimsName(t *testing.T) {
	e, err := NewExercise("  Push Up  ", CategoryStrength, false)
	require.NoError(t, err)
	assert.Equal(t, "Push Up", e.Name)
	assert.Equal(t, CategoryStrength, e.Category)
	assert.False(t, e.EquipmentNeeded)
}

func TestNewExerciseNameTooShort(t *testing.T) {
	cases := []string{"", "ab", "  ab  ", "   "}
	for _, name := range cases {
		_, err := NewExercise(name, CategoryStrength, false)
		assert.ErrorIs(t, err, ErrNameTooShort, "name %q", name)
	}
}

func TestNewExerciseCategoryClosedSet(t *testing.T) {
	for _, category := range AllowedCategories {
		_, err := NewExercise("Push Up", category, true)
		assert.NoError(t, err, "category %q", category)
	}

	for _, category := range []string{"", "strength", "Yoga", "STRENGTH"} {
		_, err := NewExercise("Push Up", category, false)
		assert.ErrorIs(t, err, ErrInvalidCategory, "category %q", category)
	}
}
