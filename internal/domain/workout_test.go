package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkout(t *testing.T) {
	date := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)

	w, err := NewWorkout(date, 45, nil)
	require.NoError(t, err)
	assert.Equal(t, date, w.Date)
	assert.Equal(t, 45, w.DurationMinutes)
	assert.Nil(t, w.Notes)

	notes := "Morning strength training"
	w, err = NewWorkout(date, 45, &notes)
	require.NoError(t, err)
	require.NotNil(t, w.Notes)
	assert.Equal(t, notes, *w.Notes)
}

func TestNewWorkoutDurationMustBePositive(t *testing.T) {
	date := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	for _, duration := range []int{0, -1, -45} {
		_, err := NewWorkout(date, duration, nil)
		assert.ErrorIs(t, err, ErrDurationNotPositive, "duration %d", duration)
	}
}

func TestNewWorkoutDateRequired(t *testing.T) {
	_, err := NewWorkout(time.Time{}, 45, nil)
	assert.ErrorIs(t, err, ErrDateRequired)
}
