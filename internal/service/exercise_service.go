package service

import (
	"context"
	"errors"

	"github.com/tcarbonell24/workout-tracker-api/internal/domain"
	"github.com/tcarbonell24/workout-tracker-api/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
)

// ExerciseService exposes the exercise operations.
type ExerciseService interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	// GetExercise returns the exercise plus the workouts it appears in,
	// for the detail view's reduced {id, date} projection.
	GetExercise(ctx context.Context, id int64) (*domain.Exercise, []domain.Workout, error)
	CreateExercise(ctx context.Context, name, category string, equipmentNeeded bool) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, id int64) error
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	workoutRepo  repository.WorkoutRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, workoutRepo repository.WorkoutRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		workoutRepo:  workoutRepo,
	}
}

func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

func (s *exerciseService) GetExercise(ctx context.Context, id int64) (*domain.Exercise, []domain.Workout, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrExerciseNotFound
		}
		return nil, nil, err
	}
	workouts, err := s.workoutRepo.ListByExerciseID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return exercise, workouts, nil
}

// CreateExercise validates through the domain constructor and commits the
// row. Validation and constraint failures pass through unwrapped so the API
// layer can classify them.
func (s *exerciseService) CreateExercise(ctx context.Context, name, category string, equipmentNeeded bool) (*domain.Exercise, error) {
	exercise, err := domain.NewExercise(name, category, equipmentNeeded)
	if err != nil {
		return nil, err
	}
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) DeleteExercise(ctx context.Context, id int64) error {
	if err := s.exerciseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
