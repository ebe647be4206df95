package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tcarbonell24/workout-tracker-api/internal/domain"
	"github.com/tcarbonell24/workout-tracker-api/internal/repository"
)

// Dates are stored as ISO calendar dates, no time component.
const dateLayout = "2006-01-02"

// sqliteWorkoutRepository implements repository.WorkoutRepository.
type sqliteWorkoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository creates a Workout repository backed by SQLite.
func NewWorkoutRepository(db *sql.DB) repository.WorkoutRepository {
	return &sqliteWorkoutRepository{db: db}
}

// Create inserts a new workout inside a transaction. The duration check
// constraint backstops the domain rule for writes that bypass it.
func (r *sqliteWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create workout: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO workouts(date, duration_minutes, notes) VALUES(?, ?, ?)`,
		workout.Date.Format(dateLayout), workout.DurationMinutes, workout.Notes,
	)
	if err != nil {
		return 0, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve workout id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create workout: %w", err)
	}
	workout.ID = id
	return id, nil
}

// GetByID retrieves a workout by its ID.
func (r *sqliteWorkoutRepository) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	var w domain.Workout
	var date string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, date, duration_minutes, notes FROM workouts WHERE id = ?`, id,
	).Scan(&w.ID, &date, &w.DurationMinutes, &w.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get workout %d: %w", id, err)
	}
	w.Date, err = time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parse workout date %q: %w", date, err)
	}
	return &w, nil
}

// List retrieves all workouts in storage order, no embedded associations.
func (r *sqliteWorkoutRepository) List(ctx context.Context) ([]domain.Workout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, duration_minutes, notes FROM workouts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()
	return scanWorkouts(rows)
}

// ListByExerciseID returns the workouts an exercise appears in, joined
// through the association table.
func (r *sqliteWorkoutRepository) ListByExerciseID(ctx context.Context, exerciseID int64) ([]domain.Workout, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT w.id, w.date, w.duration_minutes, w.notes
FROM workouts w
JOIN workout_exercises we ON we.workout_id = w.id
WHERE we.exercise_id = ?
ORDER BY w.id`, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("list workouts for exercise %d: %w", exerciseID, err)
	}
	defer rows.Close()
	return scanWorkouts(rows)
}

// Delete removes a workout and, via cascade, its association rows.
func (r *sqliteWorkoutRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete workout: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for delete: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete workout: %w", err)
	}
	return nil
}

func scanWorkouts(rows *sql.Rows) ([]domain.Workout, error) {
	workouts := make([]domain.Workout, 0)
	for rows.Next() {
		var w domain.Workout
		var date string
		if err := rows.Scan(&w.ID, &date, &w.DurationMinutes, &w.Notes); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse workout date %q: %w", date, err)
		}
		w.Date = parsed
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return workouts, nil
}
