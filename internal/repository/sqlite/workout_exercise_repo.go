package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tcarbonell24/workout-tracker-api/internal/domain"
	"github.com/tcarbonell24/workout-tracker-api/internal/repository"
)

// sqliteWorkoutExerciseRepository implements repository.WorkoutExerciseRepository.
type sqliteWorkoutExerciseRepository struct {
	db *sql.DB
}

// NewWorkoutExerciseRepository creates an association repository backed by SQLite.
func NewWorkoutExerciseRepository(db *sql.DB) repository.WorkoutExerciseRepository {
	return &sqliteWorkoutExerciseRepository{db: db}
}

// Create verifies both parents and inserts the association in one
// transaction. A duplicate (workout_id, exercise_id) pair trips the UNIQUE
// constraint and surfaces as ErrConflict.
func (r *sqliteWorkoutExerciseRepository) Create(ctx context.Context, we *domain.WorkoutExercise) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create workout exercise: %w", err)
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM workouts WHERE id = ?`, we.WorkoutID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("workout %d: %w", we.WorkoutID, repository.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("check workout %d: %w", we.WorkoutID, err)
	}
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM exercises WHERE id = ?`, we.ExerciseID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("exercise %d: %w", we.ExerciseID, repository.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("check exercise %d: %w", we.ExerciseID, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO workout_exercises(workout_id, exercise_id, reps, sets, duration_seconds) VALUES(?, ?, ?, ?, ?)`,
		we.WorkoutID, we.ExerciseID, we.Reps, we.Sets, we.DurationSeconds,
	)
	if err != nil {
		return 0, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve workout exercise id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create workout exercise: %w", err)
	}
	we.ID = id
	return id, nil
}

// GetByID retrieves an association row by its ID.
func (r *sqliteWorkoutExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.WorkoutExercise, error) {
	var we domain.WorkoutExercise
	err := r.db.QueryRowContext(ctx,
		`SELECT id, workout_id, exercise_id, reps, sets, duration_seconds FROM workout_exercises WHERE id = ?`, id,
	).Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.Reps, &we.Sets, &we.DurationSeconds)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get workout exercise %d: %w", id, err)
	}
	return &we, nil
}

// ListDetailsByWorkoutID returns a workout's association rows joined with
// their exercises, for the workout detail view.
func (r *sqliteWorkoutExerciseRepository) ListDetailsByWorkoutID(ctx context.Context, workoutID int64) ([]repository.WorkoutExerciseDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT we.id, we.workout_id, we.exercise_id, we.reps, we.sets, we.duration_seconds,
       e.id, e.name, e.category, e.equipment_needed
FROM workout_exercises we
JOIN exercises e ON e.id = we.exercise_id
WHERE we.workout_id = ?
ORDER BY we.id`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises for workout %d: %w", workoutID, err)
	}
	defer rows.Close()

	details := make([]repository.WorkoutExerciseDetail, 0)
	for rows.Next() {
		var d repository.WorkoutExerciseDetail
		if err := rows.Scan(
			&d.ID, &d.WorkoutID, &d.ExerciseID, &d.Reps, &d.Sets, &d.DurationSeconds,
			&d.Exercise.ID, &d.Exercise.Name, &d.Exercise.Category, &d.Exercise.EquipmentNeeded,
		); err != nil {
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout exercises: %w", err)
	}
	return details, nil
}
