package service

import (
	"context"
	"errors"
	"time"

	"github.com/tcarbonell24/workout-tracker-api/internal/domain"
	"github.com/tcarbonell24/workout-tracker-api/internal/repository"
)

// AssociationResult carries a created association together with its parents,
// for the nested create response.
type AssociationResult struct {
	WorkoutExercise *domain.WorkoutExercise
	Workout         *domain.Workout
	Exercise        *domain.Exercise
}

// WorkoutService exposes the workout and association operations.
type WorkoutService interface {
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	// GetWorkout returns the workout plus its association rows, each
	// joined with its exercise.
	GetWorkout(ctx context.Context, id int64) (*domain.Workout, []repository.WorkoutExerciseDetail, error)
	CreateWorkout(ctx context.Context, date time.Time, durationMinutes int, notes *string) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id int64) error
	// AddExerciseToWorkout resolves both parents before any payload
	// validation. payloadErr carries a request-shape failure whose report
	// must wait until both parents have resolved; pass nil when the
	// payload decoded cleanly.
	AddExerciseToWorkout(ctx context.Context, workoutID, exerciseID int64, reps, sets, durationSeconds *int, payloadErr error) (*AssociationResult, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	weRepo       repository.WorkoutExerciseRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	weRepo repository.WorkoutExerciseRepository,
) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		weRepo:       weRepo,
	}
}

func (s *workoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.List(ctx)
}

func (s *workoutService) GetWorkout(ctx context.Context, id int64) (*domain.Workout, []repository.WorkoutExerciseDetail, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrWorkoutNotFound
		}
		return nil, nil, err
	}
	details, err := s.weRepo.ListDetailsByWorkoutID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return workout, details, nil
}

func (s *workoutService) CreateWorkout(ctx context.Context, date time.Time, durationMinutes int, notes *string) (*domain.Workout, error) {
	workout, err := domain.NewWorkout(date, durationMinutes, notes)
	if err != nil {
		return nil, err
	}
	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, id int64) error {
	if err := s.workoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

// AddExerciseToWorkout resolves both parents before any payload validation,
// so a missing parent is reported as not-found even when the payload is also
// invalid. The repository re-checks both parents inside the insert
// transaction.
func (s *workoutService) AddExerciseToWorkout(ctx context.Context, workoutID, exerciseID int64, reps, sets, durationSeconds *int, payloadErr error) (*AssociationResult, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	if payloadErr != nil {
		return nil, payloadErr
	}

	we, err := domain.NewWorkoutExercise(workoutID, exerciseID, reps, sets, durationSeconds)
	if err != nil {
		return nil, err
	}
	if _, err := s.weRepo.Create(ctx, we); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Parent vanished between the check and the insert.
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return &AssociationResult{WorkoutExercise: we, Workout: workout, Exercise: exercise}, nil
}
