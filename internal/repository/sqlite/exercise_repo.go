package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tcarbonell24/workout-tracker-api/internal/domain"
	"github.com/tcarbonell24/workout-tracker-api/internal/repository"
)

// sqliteExerciseRepository implements repository.ExerciseRepository.
type sqliteExerciseRepository struct {
	db *sql.DB
}

// NewExerciseRepository creates an Exercise repository backed by SQLite.
func NewExerciseRepository(db *sql.DB) repository.ExerciseRepository {
	return &sqliteExerciseRepository{db: db}
}

// Create inserts a new exercise inside a transaction. A duplicate name is
// rejected by the UNIQUE constraint and surfaces as ErrConflict.
func (r *sqliteExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create exercise: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO exercises(name, category, equipment_needed) VALUES(?, ?, ?)`,
		exercise.Name, exercise.Category, exercise.EquipmentNeeded,
	)
	if err != nil {
		return 0, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve exercise id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create exercise: %w", err)
	}
	exercise.ID = id
	return id, nil
}

// GetByID retrieves an exercise by its ID.
func (r *sqliteExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	var e domain.Exercise
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, category, equipment_needed FROM exercises WHERE id = ?`, id,
	).Scan(&e.ID, &e.Name, &e.Category, &e.EquipmentNeeded)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get exercise %d: %w", id, err)
	}
	return &e, nil
}

// List retrieves all exercises in storage order.
func (r *sqliteExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, category, equipment_needed FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]domain.Exercise, 0)
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.EquipmentNeeded); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}
	return exercises, nil
}

// Delete removes an exercise. Association rows referencing it are removed by
// the ON DELETE CASCADE clause within the same transaction.
func (r *sqliteExerciseRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete exercise: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
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
		return fmt.Errorf("commit delete exercise: %w", err)
	}
	return nil
}
