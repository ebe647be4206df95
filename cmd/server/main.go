package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tcarbonell24/workout-tracker-api/internal/api"
	"github.com/tcarbonell24/workout-tracker-api/internal/config"
	"github.com/tcarbonell24/workout-tracker-api/internal/repository/sqlite"
	"github.com/tcarbonell24/workout-tracker-api/internal/service"
)

func main() {
	log.Println("Starting Workout Tracker API...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database ---
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("FATAL: Could not open database: %v", err)
	}
	defer func() {
		log.Println("Closing database...")
		if err := db.Close(); err != nil {
			log.Printf("ERROR: Failed to close database: %v", err)
		}
	}()
	if err := sqlite.ApplyMigrations(db); err != nil {
		log.Fatalf("FATAL: Could not apply migrations: %v", err)
	}
	log.Println("Database ready.")

	// --- Initialize Repositories ---
	exerciseRepo := sqlite.NewExerciseRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)
	workoutExerciseRepo := sqlite.NewWorkoutExerciseRepository(db)

	// --- Initialize Services ---
	exerciseService := service.NewExerciseService(exerciseRepo, workoutRepo)
	workoutService := service.NewWorkoutService(workoutRepo, exerciseRepo, workoutExerciseRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(router, exerciseService, workoutService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
