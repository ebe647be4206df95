package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestNewWorkoutExerciseRequiresOneEffortField(t *testing.T) {
	cases := []struct {
		name                 string
		reps, sets, duration *int
	}{
		{"all absent", nil, nil, nil},
		{"all zero", intp(0), intp(0), intp(0)},
		{"mixed zero and absent", intp(0), nil, intp(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWorkoutExercise(1, 2, tc.reps, tc.sets, tc.duration)
			assert.ErrorIs(t, err, ErrNoEffortProvided)
		})
	}
}

func TestNewWorkoutExerciseOneFieldSuffices(t *testing.T) {
	cases := []struct {
		name                 string
		reps, sets, duration *int
	}{
		{"reps only", intp(15), nil, nil},
		{"sets only", nil, intp(3), nil},
		{"duration only", nil, nil, intp(1200)},
		{"zero reps with positive sets", intp(0), intp(3), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			we, err := NewWorkoutExercise(1, 2, tc.reps, tc.sets, tc.duration)
			require.NoError(t, err)
			assert.Equal(t, int64(1), we.WorkoutID)
			assert.Equal(t, int64(2), we.ExerciseID)
		})
	}
}

func TestNewWorkoutExerciseRejectsNegatives(t *testing.T) {
	_, err := NewWorkoutExercise(1, 2, intp(-1), nil, nil)
	assert.ErrorIs(t, err, ErrNegativeReps)

	_, err = NewWorkoutExercise(1, 2, nil, intp(-3), nil)
	assert.ErrorIs(t, err, ErrNegativeSets)

	_, err = NewWorkoutExercise(1, 2, intp(15), nil, intp(-10))
	assert.ErrorIs(t, err, ErrNegativeDurationSeconds)
}
