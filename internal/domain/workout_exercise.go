package domain

// WorkoutExercise links an Exercise to a Workout and carries the set/rep/
// duration detail for that pairing. The (WorkoutID, ExerciseID) pair is
// unique per the storage schema.
type WorkoutExercise struct {
	ID              int64
	WorkoutID       int64
	ExerciseID      int64
	Reps            *int
	Sets            *int
	DurationSeconds *int
}

// NewWorkoutExercise validates and builds an association. Each of reps, sets
// and duration_seconds must be absent or non-negative, and at least one of
// them must be present with a non-zero value. A zero counts for the per-field
// range rule but not for the presence rule.
func NewWorkoutExercise(workoutID, exerciseID int64, reps, sets, durationSeconds *int) (*WorkoutExercise, error) {
	if reps != nil && *reps < 0 {
		return nil, ErrNegativeReps
	}
	if sets != nil && *sets < 0 {
		return nil, ErrNegativeSets
	}
	if durationSeconds != nil && *durationSeconds < 0 {
		return nil, ErrNegativeDurationSeconds
	}
	if !EffortProvided(reps) && !EffortProvided(sets) && !EffortProvided(durationSeconds) {
		return nil, ErrNoEffortProvided
	}
	return &WorkoutExercise{
		WorkoutID:       workoutID,
		ExerciseID:      exerciseID,
		Reps:            reps,
		Sets:            sets,
		DurationSeconds: durationSeconds,
	}, nil
}

// EffortProvided reports whether v counts toward the at-least-one rule:
// present and non-zero.
func EffortProvided(v *int) bool {
	return v != nil && *v != 0
}
