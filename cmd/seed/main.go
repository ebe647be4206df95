// Command seed resets the database and loads a small demo dataset, then
// prints per-table row counts.
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/tcarbonell24/workout-tracker-api/internal/config"
	"github.com/tcarbonell24/workout-tracker-api/internal/domain"
	"github.com/tcarbonell24/workout-tracker-api/internal/repository/sqlite"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("FATAL: Could not open database: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(db); err != nil {
		log.Fatalf("FATAL: Could not apply migrations: %v", err)
	}

	ctx := context.Background()

	// Clear existing data. Associations go first so the parent deletes
	// need no cascade work.
	for _, table := range []string{"workout_exercises", "workouts", "exercises"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("FATAL: Could not clear %s: %v", table, err)
		}
	}

	exerciseRepo := sqlite.NewExerciseRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)
	weRepo := sqlite.NewWorkoutExerciseRepository(db)

	type exerciseSeed struct {
		name      string
		category  string
		equipment bool
	}
	exerciseSeeds := []exerciseSeed{
		{"Push Up", domain.CategoryStrength, false},
		{"Squat", domain.CategoryStrength, false},
		{"Plank", domain.CategoryStrength, false},
		{"Running", domain.CategoryCardio, false},
		{"Dumbbell Curl", domain.CategoryStrength, true},
	}
	exerciseIDs := make([]int64, 0, len(exerciseSeeds))
	for _, s := range exerciseSeeds {
		e, err := domain.NewExercise(s.name, s.category, s.equipment)
		if err != nil {
			log.Fatalf("FATAL: Invalid seed exercise %q: %v", s.name, err)
		}
		id, err := exerciseRepo.Create(ctx, e)
		if err != nil {
			log.Fatalf("FATAL: Could not seed exercise %q: %v", s.name, err)
		}
		exerciseIDs = append(exerciseIDs, id)
	}

	strengthNotes := "Morning strength training"
	cardioNotes := "Quick cardio session"
	type workoutSeed struct {
		date     time.Time
		duration int
		notes    *string
	}
	workoutSeeds := []workoutSeed{
		{time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC), 45, &strengthNotes},
		{time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC), 30, &cardioNotes},
	}
	workoutIDs := make([]int64, 0, len(workoutSeeds))
	for _, s := range workoutSeeds {
		w, err := domain.NewWorkout(s.date, s.duration, s.notes)
		if err != nil {
			log.Fatalf("FATAL: Invalid seed workout: %v", err)
		}
		id, err := workoutRepo.Create(ctx, w)
		if err != nil {
			log.Fatalf("FATAL: Could not seed workout: %v", err)
		}
		workoutIDs = append(workoutIDs, id)
	}

	reps15, sets3 := 15, 3
	reps20 := 20
	running20min := 1200
	associations := []*domain.WorkoutExercise{
		mustAssociation(workoutIDs[0], exerciseIDs[0], &reps15, &sets3, nil),
		mustAssociation(workoutIDs[0], exerciseIDs[1], &reps20, &sets3, nil),
		mustAssociation(workoutIDs[1], exerciseIDs[3], nil, nil, &running20min),
	}
	for _, we := range associations {
		if _, err := weRepo.Create(ctx, we); err != nil {
			log.Fatalf("FATAL: Could not seed association: %v", err)
		}
	}

	log.Println("Database seeded successfully!")
	for _, table := range []string{"exercises", "workouts", "workout_exercises"} {
		log.Printf("  %s: %d rows", table, countRows(ctx, db, table))
	}
}

func mustAssociation(workoutID, exerciseID int64, reps, sets, durationSeconds *int) *domain.WorkoutExercise {
	we, err := domain.NewWorkoutExercise(workoutID, exerciseID, reps, sets, durationSeconds)
	if err != nil {
		log.Fatalf("FATAL: Invalid seed association: %v", err)
	}
	return we
}

func countRows(ctx context.Context, db *sql.DB, table string) int {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+table).Scan(&n); err != nil {
		log.Fatalf("FATAL: Could not count %s: %v", table, err)
	}
	return n
}
