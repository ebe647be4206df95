package domain

import "time"

// Workout is a single workout session on a calendar date.
type Workout struct {
	ID              int64
	Date            time.Time
	DurationMinutes int
	Notes           *string
}

// NewWorkout validates and builds a Workout. The duration rule is also
// declared as a CHECK constraint on the workouts table, so callers that
// bypass this constructor are still rejected by the storage layer.
func NewWorkout(date time.Time, durationMinutes int, notes *string) (*Workout, error) {
	if date.IsZero() {
		return nil, ErrDateRequired
	}
	if durationMinutes <= 0 {
		return nil, ErrDurationNotPositive
	}
	return &Workout{
		Date:            date,
		DurationMinutes: durationMinutes,
		Notes:           notes,
	}, nil
}
