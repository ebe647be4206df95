package repository

import (
	"context"

	"github.com/tcarbonell24/workout-tracker-api/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("constraint conflict")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutExerciseDetail pairs an association row with its exercise, as
// produced by the join backing the workout detail view.
type WorkoutExerciseDetail struct {
	domain.WorkoutExercise
	Exercise domain.Exercise
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	Delete(ctx context.Context, id int64) error
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
	// ListByExerciseID returns the workouts an exercise appears in,
	// resolved through the association table.
	ListByExerciseID(ctx context.Context, exerciseID int64) ([]domain.Workout, error)
	Delete(ctx context.Context, id int64) error
}

// WorkoutExerciseRepository defines the interface for interacting with the
// workout/exercise association data. Associations have no update and no
// direct delete; rows are removed only when a parent is deleted.
type WorkoutExerciseRepository interface {
	Create(ctx context.Context, we *domain.WorkoutExercise) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkoutExercise, error)
	ListDetailsByWorkoutID(ctx context.Context, workoutID int64) ([]WorkoutExerciseDetail, error)
}
