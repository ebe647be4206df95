package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcarbonell24/workout-tracker-api/internal/domain"
	"github.com/tcarbonell24/workout-tracker-api/internal/repository"
	"github.com/tcarbonell24/workout-tracker-api/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.db")
	db, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.ApplyMigrations(db))
	return db
}

func intp(v int) *int { return &v }

func mustExercise(t *testing.T, name, category string, equipment bool) *domain.Exercise {
	t.Helper()
	e, err := domain.NewExercise(name, category, equipment)
	require.NoError(t, err)
	return e
}

func mustWorkout(t *testing.T, day int, duration int) *domain.Workout {
	t.Helper()
	w, err := domain.NewWorkout(time.Date(2025, 11, day, 0, 0, 0, 0, time.UTC), duration, nil)
	require.NoError(t, err)
	return w
}

func TestExerciseCreateGetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewExerciseRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, mustExercise(t, "Push Up", domain.CategoryStrength, false))
	require.NoError(t, err)
	require.NotZero(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Push Up", got.Name)
	assert.Equal(t, domain.CategoryStrength, got.Category)
	assert.False(t, got.EquipmentNeeded)
}

func TestExerciseGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewExerciseRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExerciseDuplicateNameConflicts(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewExerciseRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, mustExercise(t, "Push Up", domain.CategoryStrength, false))
	require.NoError(t, err)

	_, err = repo.Create(ctx, mustExercise(t, "Push Up", domain.CategoryCardio, true))
	assert.ErrorIs(t, err, repository.ErrConflict)

	// The failed insert must not leave a partial row behind.
	exercises, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, exercises, 1)
}

func TestExerciseListStorageOrder(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewExerciseRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Squat", "Plank", "Running"} {
		_, err := repo.Create(ctx, mustExercise(t, name, domain.CategoryStrength, false))
		require.NoError(t, err)
	}

	exercises, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, exercises, 3)
	assert.Equal(t, "Squat", exercises[0].Name)
	assert.Equal(t, "Plank", exercises[1].Name)
	assert.Equal(t, "Running", exercises[2].Name)
}

func TestExerciseDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewExerciseRepository(db)

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkoutCreateGetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewWorkoutRepository(db)
	ctx := context.Background()

	notes := "Morning strength training"
	w, err := domain.NewWorkout(time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC), 45, &notes)
	require.NoError(t, err)

	id, err := repo.Create(ctx, w)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2025-11-22", got.Date.Format("2006-01-02"))
	assert.Equal(t, 45, got.DurationMinutes)
	require.NotNil(t, got.Notes)
	assert.Equal(t, notes, *got.Notes)
}

func TestWorkoutNotesNullable(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewWorkoutRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, mustWorkout(t, 22, 45))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Notes)
}

func TestWorkoutDurationCheckConstraintBackstop(t *testing.T) {
	// A raw insert that skips the domain constructor must still be
	// rejected by the CHECK constraint.
	db := newTestDB(t)

	_, err := db.Exec(`INSERT INTO workouts(date, duration_minutes) VALUES('2025-11-22', 0)`)
	require.Error(t, err)

	repo := sqlite.NewWorkoutRepository(db)
	workouts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

func TestWorkoutExerciseRangeCheckConstraintBackstop(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	exerciseID, err := sqlite.NewExerciseRepository(db).Create(ctx, mustExercise(t, "Push Up", domain.CategoryStrength, false))
	require.NoError(t, err)
	workoutID, err := sqlite.NewWorkoutRepository(db).Create(ctx, mustWorkout(t, 22, 45))
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO workout_exercises(workout_id, exercise_id, reps) VALUES(?, ?, -1)`, workoutID, exerciseID)
	require.Error(t, err)
}

func TestWorkoutExerciseCreateRequiresParents(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	weRepo := sqlite.NewWorkoutExerciseRepository(db)

	we, err := domain.NewWorkoutExercise(999, 998, intp(15), nil, nil)
	require.NoError(t, err)

	_, err = weRepo.Create(ctx, we)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkoutExerciseDuplicatePairConflicts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	exerciseID, err := sqlite.NewExerciseRepository(db).Create(ctx, mustExercise(t, "Push Up", domain.CategoryStrength, false))
	require.NoError(t, err)
	workoutID, err := sqlite.NewWorkoutRepository(db).Create(ctx, mustWorkout(t, 22, 45))
	require.NoError(t, err)

	weRepo := sqlite.NewWorkoutExerciseRepository(db)

	first, err := domain.NewWorkoutExercise(workoutID, exerciseID, intp(15), intp(3), nil)
	require.NoError(t, err)
	_, err = weRepo.Create(ctx, first)
	require.NoError(t, err)

	// Same pair with different detail still conflicts.
	second, err := domain.NewWorkoutExercise(workoutID, exerciseID, intp(20), intp(5), nil)
	require.NoError(t, err)
	_, err = weRepo.Create(ctx, second)
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestDeleteWorkoutCascadesAssociations(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	exerciseRepo := sqlite.NewExerciseRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)
	weRepo := sqlite.NewWorkoutExerciseRepository(db)

	exerciseID, err := exerciseRepo.Create(ctx, mustExercise(t, "Push Up", domain.CategoryStrength, false))
	require.NoError(t, err)
	workoutID, err := workoutRepo.Create(ctx, mustWorkout(t, 22, 45))
	require.NoError(t, err)

	we, err := domain.NewWorkoutExercise(workoutID, exerciseID, intp(15), intp(3), nil)
	require.NoError(t, err)
	weID, err := weRepo.Create(ctx, we)
	require.NoError(t, err)

	require.NoError(t, workoutRepo.Delete(ctx, workoutID))

	_, err = weRepo.GetByID(ctx, weID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteExerciseCascadesAssociations(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	exerciseRepo := sqlite.NewExerciseRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)
	weRepo := sqlite.NewWorkoutExerciseRepository(db)

	exerciseID, err := exerciseRepo.Create(ctx, mustExercise(t, "Push Up", domain.CategoryStrength, false))
	require.NoError(t, err)
	workoutID, err := workoutRepo.Create(ctx, mustWorkout(t, 22, 45))
	require.NoError(t, err)

	we, err := domain.NewWorkoutExercise(workoutID, exerciseID, nil, nil, intp(600))
	require.NoError(t, err)
	weID, err := weRepo.Create(ctx, we)
	require.NoError(t, err)

	require.NoError(t, exerciseRepo.Delete(ctx, exerciseID))

	_, err = weRepo.GetByID(ctx, weID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// The workout itself survives, with no associations left.
	details, err := weRepo.ListDetailsByWorkoutID(ctx, workoutID)
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestListByExerciseIDAndDetailsJoin(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	exerciseRepo := sqlite.NewExerciseRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)
	weRepo := sqlite.NewWorkoutExerciseRepository(db)

	exerciseID, err := exerciseRepo.Create(ctx, mustExercise(t, "Push Up", domain.CategoryStrength, false))
	require.NoError(t, err)
	otherID, err := exerciseRepo.Create(ctx, mustExercise(t, "Squat", domain.CategoryStrength, false))
	require.NoError(t, err)
	workoutID, err := workoutRepo.Create(ctx, mustWorkout(t, 22, 45))
	require.NoError(t, err)

	for _, eid := range []int64{exerciseID, otherID} {
		we, err := domain.NewWorkoutExercise(workoutID, eid, intp(15), intp(3), nil)
		require.NoError(t, err)
		_, err = weRepo.Create(ctx, we)
		require.NoError(t, err)
	}

	workouts, err := workoutRepo.ListByExerciseID(ctx, exerciseID)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, workoutID, workouts[0].ID)

	details, err := weRepo.ListDetailsByWorkoutID(ctx, workoutID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "Push Up", details[0].Exercise.Name)
	assert.Equal(t, "Squat", details[1].Exercise.Name)
	require.NotNil(t, details[0].Reps)
	assert.Equal(t, 15, *details[0].Reps)
	assert.Nil(t, details[0].DurationSeconds)
}

func TestForeignKeysEnforcedOnEveryConnection(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Cycle the pool so the next statement runs on a fresh connection.
	// The pragma travels in the DSN, so it must still be in effect.
	db.SetMaxIdleConns(0)
	db.SetMaxIdleConns(2)

	_, err := db.ExecContext(ctx,
		`INSERT INTO workout_exercises (workout_id, exercise_id, reps) VALUES (999, 998, 5)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY")
}
